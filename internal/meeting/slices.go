package meeting

import "strings"

const canceledMarker = "MEETING CANCELED"

// ExtractBillDetails groups a meeting's ordered slices into per-bill detail
// groups plus the residual general highlights that belong to no bill.
//
// Grouping is a single left-to-right pass that relies on slices for the same
// bill being contiguous in source order. A bill whose cursor flushes with zero
// accumulated details is dropped entirely; its number appears in neither
// output. That drop is intentional and matches the upstream data's behavior.
func ExtractBillDetails(slices []Slice) ([]BillDetailGroup, []string) {
	var groups []BillDetailGroup

	currentBill := ""
	var currentDetails []string
	var currentSeen map[string]struct{}

	// Highlights already attributed to a bill must not reappear as
	// general items.
	usedDetails := make(map[string]struct{})

	flush := func() {
		if currentBill != "" && len(currentDetails) > 0 {
			groups = append(groups, BillDetailGroup{
				Bill:       currentBill,
				ShortTitle: shortTitleFor(slices, currentBill),
				Details:    currentDetails,
			})
		}
	}

	for _, s := range slices {
		if s.BillRoot == "" && s.SliceHighliteText == "" {
			continue
		}

		if s.BillRoot != "" && s.BillRoot != currentBill {
			flush()
			currentBill = s.BillRoot
			currentDetails = nil
			currentSeen = make(map[string]struct{})
		}

		// Only slices carrying the cursor's bill identifier contribute
		// details; billess slices fall through to the general pass. The
		// bill number restated as its own highlight is noise.
		if s.BillRoot == "" || s.SliceHighliteText == "" || s.BillRoot == s.SliceHighliteText {
			continue
		}
		if isCanceledHighlight(s.SliceHighliteText) {
			continue
		}
		if _, dup := currentSeen[s.SliceHighliteText]; dup {
			continue
		}
		currentSeen[s.SliceHighliteText] = struct{}{}
		usedDetails[s.SliceHighliteText] = struct{}{}
		currentDetails = append(currentDetails, s.SliceHighliteText)
	}
	flush()

	var general []string
	seen := make(map[string]struct{})
	for _, s := range slices {
		if s.BillRoot != "" || s.SliceHighliteText == "" || isCanceledHighlight(s.SliceHighliteText) {
			continue
		}
		if _, used := usedDetails[s.SliceHighliteText]; used {
			continue
		}
		if _, dup := seen[s.SliceHighliteText]; dup {
			continue
		}
		seen[s.SliceHighliteText] = struct{}{}
		general = append(general, s.SliceHighliteText)
	}

	return groups, general
}

// Bills returns the bill identifiers that produced a detail group, in source
// order. Bills with no associated highlights are absent, mirroring
// ExtractBillDetails.
func Bills(rec Record) []string {
	groups, _ := ExtractBillDetails(rec.MeetingSlices)
	if len(groups) == 0 {
		return nil
	}
	bills := make([]string, len(groups))
	for i, g := range groups {
		bills[i] = g.Bill
	}
	return bills
}

func shortTitleFor(slices []Slice, bill string) string {
	for _, s := range slices {
		if s.BillRoot == bill && s.ShortTitle != "" {
			return s.ShortTitle
		}
	}
	return ""
}

func isCanceledHighlight(text string) bool {
	return strings.Contains(strings.ToUpper(text), canceledMarker)
}
