package meeting

import "strings"

// ShouldSkip reports whether a record is a "no meeting scheduled" placeholder
// rather than a real event. Every export and view path filters with this
// before producing output.
func ShouldSkip(rec Record) bool {
	for _, s := range rec.MeetingSlices {
		if strings.ToLower(strings.TrimSpace(s.SliceHighliteText)) == "no meeting scheduled" {
			return true
		}
	}
	return false
}

// Status returns the display status for a record.
func Status(rec Record) string {
	if rec.MeetingCanceled {
		return "CANCELED"
	}
	return "Active"
}
