package export

import (
	"io"
	"time"

	"gavel/internal/meeting"
)

// DefaultCategory is applied to rows whose selection carries no category.
const DefaultCategory = "Gavel Alaska"

// Selection is the operator's export choice set: which meetings to include
// (keyed by stable identifier), the encoder and category for each, and the
// runtime settings shared by every row of one export.
type Selection struct {
	// Encoders maps stable meeting identifiers to encoder IDs. Key presence
	// is the inclusion filter; an empty value exports the row with a blank
	// encoder column.
	Encoders map[string]string

	// Categories maps stable meeting identifiers to category strings.
	// Missing entries default to DefaultCategory.
	Categories map[string]string

	// Runtime is the estimated runtime (HH:MM) shared by all rows.
	Runtime string

	// LiveToBreak is shared by all rows.
	LiveToBreak bool
}

// WriteInvintus serializes meetings in the Invintus broadcast dialect. A
// meeting produces a row only when it is a real event, its date and time
// jointly parse, and its stable identifier is present in the selection's
// encoder map. Meetings failing any of those checks are dropped silently.
func WriteInvintus(w io.Writer, records []meeting.Record, sel Selection) error {
	header := []string{
		"title", "customID", "startDateTime", "description",
		"encoder", "category", "location", "estRuntime", "liveToBreak",
	}
	if err := writeRow(w, header); err != nil {
		return err
	}

	liveToBreak := "FALSE"
	if sel.LiveToBreak {
		liveToBreak = "TRUE"
	}

	for _, rec := range records {
		if meeting.ShouldSkip(rec) {
			continue
		}
		if rec.MeetingDate == "" || rec.MeetingTime == "" {
			continue
		}
		start, err := time.Parse(jointLayout, rec.MeetingDate+" "+rec.MeetingTime)
		if err != nil {
			continue
		}

		id := meeting.StableID(rec)
		encoder, selected := sel.Encoders[id]
		if !selected {
			continue
		}

		category := sel.Categories[id]
		if category == "" {
			category = DefaultCategory
		}

		row := []string{
			meeting.BuildTitle(rec),
			id,
			start.Format(jointLayout),
			meeting.CSVDescription(rec),
			encoder,
			category,
			rec.Location,
			sel.Runtime,
			liveToBreak,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}
