package export

import (
	"io"
	"strings"
	"time"

	"gavel/internal/meeting"
)

const (
	jointLayout       = "2006-01-02 15:04:05"
	genericTimeLayout = "2006-01-02 03:04 PM"
)

// DatedRecord pairs a meeting with the query date it was fetched for. Date is
// only emitted when the export carries a date column (range exports).
type DatedRecord struct {
	Date   string
	Record meeting.Record
}

// WriteGeneric serializes meetings in the generic CSV dialect. Placeholder
// meetings are skipped. When includeDate is set a leading date column carries
// each record's query date.
func WriteGeneric(w io.Writer, records []DatedRecord, includeDate bool) error {
	header := []string{"title", "status", "location", "time", "bills", "description"}
	if includeDate {
		header = append([]string{"date"}, header...)
	}
	if err := writeRow(w, header); err != nil {
		return err
	}

	for _, dr := range records {
		rec := dr.Record
		if meeting.ShouldSkip(rec) {
			continue
		}

		row := []string{
			meeting.BuildTitle(rec),
			meeting.Status(rec),
			location(rec, "No Location"),
			genericTime(rec),
			strings.Join(meeting.Bills(rec), ", "),
			meeting.CSVDescription(rec),
		}
		if includeDate {
			row = append([]string{dr.Date}, row...)
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// genericTime formats the record's date and time as one value. When the pair
// parses jointly it is rendered as "YYYY-MM-DD HH:MM AM/PM"; when both are
// present but jointly unparseable the raw concatenation is emitted; when
// either is missing the value is empty.
func genericTime(rec meeting.Record) string {
	if rec.MeetingDate == "" || rec.MeetingTime == "" {
		return ""
	}
	joint := rec.MeetingDate + " " + rec.MeetingTime
	parsed, err := time.Parse(jointLayout, joint)
	if err != nil {
		return joint
	}
	return parsed.Format(genericTimeLayout)
}

func location(rec meeting.Record, fallback string) string {
	if rec.Location == "" {
		return fallback
	}
	return rec.Location
}
