package export

import (
	"strings"
	"testing"

	"gavel/internal/meeting"
)

func invintusRecord() meeting.Record {
	return meeting.Record{
		Chamber:        "S",
		SponsorType:    "Standing Committee",
		MeetingTitle:   "finance",
		MeetingSponsor: "FIN",
		MeetingDate:    "2025-04-22",
		MeetingTime:    "13:30:00",
		Location:       "Butrovich 205",
		MeetingSlices: []meeting.Slice{
			{BillRoot: "HB1", SliceHighliteText: "Public testimony"},
		},
	}
}

func invintusLines(t *testing.T, records []meeting.Record, sel Selection) []string {
	t.Helper()
	var buf strings.Builder
	if err := WriteInvintus(&buf, records, sel); err != nil {
		t.Fatalf("WriteInvintus returned error: %v", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestWriteInvintusHeader(t *testing.T) {
	lines := invintusLines(t, nil, Selection{})
	want := `"title","customID","startDateTime","description","encoder","category","location","estRuntime","liveToBreak"`
	if lines[0] != want {
		t.Errorf("header = %s, want %s", lines[0], want)
	}
}

func TestWriteInvintusRow(t *testing.T) {
	rec := invintusRecord()
	id := meeting.StableID(rec)
	sel := Selection{
		Encoders:    map[string]string{id: "hm4mevet"},
		Categories:  map[string]string{id: "Gavel Alaska, Senate Finance Committee"},
		Runtime:     "01:30",
		LiveToBreak: true,
	}

	lines := invintusLines(t, []meeting.Record{rec}, sel)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := `"Senate Finance Committee","SFIN20250422133000","2025-04-22 13:30:00","Bills: HB1 Public testimony","hm4mevet","Gavel Alaska, Senate Finance Committee","Butrovich 205","01:30","TRUE"`
	if lines[1] != want {
		t.Errorf("row = %s\nwant  %s", lines[1], want)
	}
}

func TestWriteInvintusUnselectedDropped(t *testing.T) {
	rec := invintusRecord()
	sel := Selection{Encoders: map[string]string{"someOtherID": "hm4mevet"}, Runtime: "01:00"}

	lines := invintusLines(t, []meeting.Record{rec}, sel)
	if len(lines) != 1 {
		t.Fatalf("unselected meeting produced rows: %v", lines[1:])
	}
}

func TestWriteInvintusBlankEncoderKeptWhenSelected(t *testing.T) {
	rec := invintusRecord()
	id := meeting.StableID(rec)
	sel := Selection{Encoders: map[string]string{id: ""}, Runtime: "01:00"}

	lines := invintusLines(t, []meeting.Record{rec}, sel)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], `"","Gavel Alaska"`) {
		t.Errorf("row should carry blank encoder and default category: %s", lines[1])
	}
}

func TestWriteInvintusUnparseableDateTimeDropped(t *testing.T) {
	rec := invintusRecord()
	rec.MeetingTime = "half past one"
	id := meeting.StableID(rec)
	sel := Selection{Encoders: map[string]string{id: "hm4mevet"}}

	lines := invintusLines(t, []meeting.Record{rec}, sel)
	if len(lines) != 1 {
		t.Fatalf("unparseable date/time produced rows: %v", lines[1:])
	}
}

func TestWriteInvintusMissingDateDropped(t *testing.T) {
	rec := invintusRecord()
	rec.MeetingDate = ""

	lines := invintusLines(t, []meeting.Record{rec}, Selection{Encoders: map[string]string{"unknown": "x"}})
	if len(lines) != 1 {
		t.Fatalf("meeting without date produced rows: %v", lines[1:])
	}
}

func TestWriteInvintusSkipsPlaceholders(t *testing.T) {
	rec := invintusRecord()
	rec.MeetingSlices = append(rec.MeetingSlices, meeting.Slice{SliceHighliteText: "no meeting scheduled"})
	id := meeting.StableID(rec)

	lines := invintusLines(t, []meeting.Record{rec}, Selection{Encoders: map[string]string{id: "x"}})
	if len(lines) != 1 {
		t.Fatalf("placeholder meeting produced rows: %v", lines[1:])
	}
}

func TestWriteInvintusLiveToBreakFalse(t *testing.T) {
	rec := invintusRecord()
	id := meeting.StableID(rec)

	lines := invintusLines(t, []meeting.Record{rec}, Selection{Encoders: map[string]string{id: "x"}})
	if !strings.HasSuffix(lines[1], `"FALSE"`) {
		t.Errorf("row should end with FALSE: %s", lines[1])
	}
}
