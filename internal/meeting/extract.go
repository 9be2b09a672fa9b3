package meeting

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// UnknownID is the sentinel identifier for records missing a date or time.
	UnknownID = "unknown"

	queryDateLayout = "01/02/2006"
	shortDateLayout = "01/02/06"
	longDateLayout  = "Monday January 02, 2006"
	clockLayout     = "15:04:05"
	clock12Layout   = "03:04 PM"
)

// ChamberName maps a BASIS chamber code to its display name. Unknown codes
// yield an empty string rather than an error.
func ChamberName(code string) string {
	switch code {
	case "S":
		return "Senate"
	case "H":
		return "House"
	}
	return ""
}

// BuildTitle derives the display title for a record. Standing committees,
// special committees, and finance subcommittees get a chamber-qualified form
// when the chamber is known; everything else is the raw title in title case.
func BuildTitle(rec Record) string {
	title := rec.MeetingTitle
	if title == "" {
		return ""
	}

	chamber := ChamberName(rec.Chamber)
	// cases.Caser carries internal transform state and is not safe for
	// concurrent use, so each call gets its own.
	committee := cases.Title(language.Und).String(title)

	if chamber != "" {
		switch rec.SponsorType {
		case "Standing Committee":
			return fmt.Sprintf("%s %s Committee", chamber, committee)
		case "Special Committee":
			return fmt.Sprintf("%s %s Special Committee", chamber, committee)
		case "Finance SubCommittee":
			return fmt.Sprintf("%s Finance: %s Subcommittee", chamber, committee)
		}
	}

	return committee
}

// StableID derives the deterministic identifier used to correlate a meeting
// between the view and export paths. The layout is a direct concatenation of
// chamber code, sponsor code, date with dashes stripped, and time with colons
// stripped; downstream consumers depend on that exact character stripping.
func StableID(rec Record) string {
	if rec.MeetingDate == "" || rec.MeetingTime == "" {
		return UnknownID
	}
	return rec.Chamber + rec.MeetingSponsor +
		strings.ReplaceAll(rec.MeetingDate, "-", "") +
		strings.ReplaceAll(rec.MeetingTime, ":", "")
}

// FormatShortDate reformats an MM/DD/YYYY date as MM/DD/YY. Unparseable input
// is returned unchanged.
func FormatShortDate(date string) string {
	parsed, err := time.Parse(queryDateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(shortDateLayout)
}

// FormatDateWithDay reformats an MM/DD/YYYY date with its weekday name, for
// example "Tuesday April 22, 2025". Unparseable input is returned unchanged.
func FormatDateWithDay(date string) string {
	parsed, err := time.Parse(queryDateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(longDateLayout)
}

// FormatTime reformats a 24-hour HH:MM:SS time of day as 12-hour with an
// AM/PM marker. Unparseable input is returned unchanged.
func FormatTime(clock string) string {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return clock
	}
	return parsed.Format(clock12Layout)
}
