package meeting

// Slice is one agenda-item fragment within a meeting. A slice may be tagged
// with a bill identifier, carry free-text highlight copy, or both. A slice
// with neither carries no information and is ignored everywhere.
type Slice struct {
	BillRoot          string `json:"BillRoot"`
	SliceHighliteText string `json:"SliceHighliteText"`
	ShortTitle        string `json:"ShortTitle"`
}

// Record is a single meeting as returned by the BASIS API. It is read-only to
// this package; normalization derives new values and never mutates the record.
type Record struct {
	Chamber         string  `json:"Chamber"`
	MeetingTitle    string  `json:"MeetingTitle"`
	SponsorType     string  `json:"SponsorType"`
	MeetingSponsor  string  `json:"MeetingSponsor"`
	MeetingDate     string  `json:"MeetingDate"`
	MeetingTime     string  `json:"MeetingTime"`
	Location        string  `json:"Location"`
	MeetingCanceled bool    `json:"MeetingCanceled"`
	MeetingSlices   []Slice `json:"MeetingSlices"`
}

// BillDetailGroup collects the highlight fragments attributed to one bill
// within a single meeting, in source order. ShortTitle is the first non-empty
// short title any slice carried for that bill, or empty.
type BillDetailGroup struct {
	Bill       string
	ShortTitle string
	Details    []string
}
