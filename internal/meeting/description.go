package meeting

import "strings"

const (
	canceledBanner  = "** MEETING CANCELED **"
	streamingBanner = "**Streamed live on AKL.tv**"
)

// BuildDescription composes the human-readable summary for a record: an
// optional cancellation banner, a "Bills:" block with per-bill short titles
// and details, and any general highlight items, joined with " | ".
func BuildDescription(rec Record) string {
	var parts []string

	if rec.MeetingCanceled {
		parts = append(parts, canceledBanner)
	}

	groups, general := ExtractBillDetails(rec.MeetingSlices)

	if len(groups) > 0 {
		billTexts := make([]string, 0, len(groups))
		for _, g := range groups {
			text := g.Bill
			if g.ShortTitle != "" {
				text += " " + g.ShortTitle
			}
			if len(g.Details) > 0 {
				text += " " + strings.Join(g.Details, " ")
			}
			billTexts = append(billTexts, text)
		}
		parts = append(parts, "Bills: "+strings.Join(billTexts, ", "))
	}

	if len(general) > 0 {
		parts = append(parts, strings.Join(general, " | "))
	}

	return strings.Join(parts, " | ")
}

// CSVDescription is BuildDescription with streaming-service annotations
// removed; CSV consumers have no use for the broadcast banner.
func CSVDescription(rec Record) string {
	return stripStreamingBanner(BuildDescription(rec))
}

// stripStreamingBanner removes the streaming annotation and collapses the
// separator artifacts that removal leaves behind. Applying it twice yields
// the same string as applying it once.
func stripStreamingBanner(description string) string {
	description = strings.ReplaceAll(description, streamingBanner, "")
	description = strings.ReplaceAll(description, " |  | ", " | ")
	description = strings.TrimSpace(description)
	for strings.Contains(description, " | |") {
		description = strings.ReplaceAll(description, " | |", " |")
	}
	description = strings.TrimSuffix(description, " | ")
	return description
}
