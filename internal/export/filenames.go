package export

import (
	"fmt"
	"strings"
)

// GenericFilename returns the download filename for a generic export. Query
// dates keep their MM/DD/YYYY layout with slashes replaced by dashes. A range
// collapses to the single-date form when start and end match.
func GenericFilename(start, end string) string {
	if end == "" || end == start {
		return fmt.Sprintf("meetings_%s.csv", dashed(start))
	}
	return fmt.Sprintf("meetings_%s_to_%s.csv", dashed(start), dashed(end))
}

// InvintusFilename returns the download filename for a broadcast export.
func InvintusFilename(start, end string) string {
	if end == "" || end == start {
		return fmt.Sprintf("invintus_meetings_%s.csv", dashed(start))
	}
	return fmt.Sprintf("invintus_meetings_%s_to_%s.csv", dashed(start), dashed(end))
}

func dashed(date string) string {
	return strings.ReplaceAll(date, "/", "-")
}
