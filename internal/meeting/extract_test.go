package meeting

import (
	"sync"
	"testing"
)

func TestChamberName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"S", "Senate"},
		{"H", "House"},
		{"", ""},
		{"X", ""},
		{"s", ""},
	}

	for _, tt := range tests {
		if got := ChamberName(tt.code); got != tt.want {
			t.Errorf("ChamberName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBuildTitle(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "standing committee",
			rec:  Record{Chamber: "S", SponsorType: "Standing Committee", MeetingTitle: "finance"},
			want: "Senate Finance Committee",
		},
		{
			name: "special committee",
			rec:  Record{Chamber: "H", SponsorType: "Special Committee", MeetingTitle: "arctic policy"},
			want: "House Arctic Policy Special Committee",
		},
		{
			name: "finance subcommittee",
			rec:  Record{Chamber: "H", SponsorType: "Finance SubCommittee", MeetingTitle: "transportation"},
			want: "House Finance: Transportation Subcommittee",
		},
		{
			name: "unrecognized sponsor type falls through",
			rec:  Record{Chamber: "S", SponsorType: "Joint Committee", MeetingTitle: "joint armed services"},
			want: "Joint Armed Services",
		},
		{
			name: "standing committee without chamber",
			rec:  Record{SponsorType: "Standing Committee", MeetingTitle: "rules"},
			want: "Rules",
		},
		{
			name: "uppercase source title",
			rec:  Record{Chamber: "S", SponsorType: "Standing Committee", MeetingTitle: "FINANCE"},
			want: "Senate Finance Committee",
		},
		{
			name: "empty title",
			rec:  Record{Chamber: "S", SponsorType: "Standing Committee"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildTitle(tt.rec); got != tt.want {
				t.Errorf("BuildTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

// BuildTitle is called from concurrent HTTP handlers; it must not share
// mutable casing state between calls.
func TestBuildTitleConcurrent(t *testing.T) {
	rec := Record{Chamber: "S", SponsorType: "Standing Committee", MeetingTitle: "health and social services"}
	const want = "Senate Health And Social Services Committee"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := BuildTitle(rec); got != want {
					t.Errorf("BuildTitle() = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestStableID(t *testing.T) {
	rec := Record{
		Chamber:        "S",
		MeetingSponsor: "FIN",
		MeetingDate:    "2025-04-22",
		MeetingTime:    "13:30:00",
	}
	want := "SFIN20250422133000"
	if got := StableID(rec); got != want {
		t.Errorf("StableID() = %q, want %q", got, want)
	}

	// Pure: the same record always yields the same identifier.
	if first, second := StableID(rec), StableID(rec); first != second {
		t.Errorf("StableID() not deterministic: %q then %q", first, second)
	}
}

func TestStableIDMissingFields(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"no date", Record{Chamber: "S", MeetingTime: "13:30:00"}},
		{"no time", Record{Chamber: "S", MeetingDate: "2025-04-22"}},
		{"neither", Record{Chamber: "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StableID(tt.rec); got != UnknownID {
				t.Errorf("StableID() = %q, want %q", got, UnknownID)
			}
		})
	}
}

func TestStableIDSeparatorStripping(t *testing.T) {
	dashed := Record{Chamber: "H", MeetingSponsor: "RLS", MeetingDate: "2025-04-22", MeetingTime: "09:00:00"}
	stripped := Record{Chamber: "H", MeetingSponsor: "RLS", MeetingDate: "20250422", MeetingTime: "090000"}

	if StableID(dashed) != StableID(stripped) {
		t.Errorf("identifiers differ for equivalent stripped forms: %q vs %q", StableID(dashed), StableID(stripped))
	}

	other := Record{Chamber: "H", MeetingSponsor: "RLS", MeetingDate: "20250423", MeetingTime: "090000"}
	if StableID(dashed) == StableID(other) {
		t.Error("identifiers collide for different stripped forms")
	}
}

func TestFormatShortDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"04/22/2025", "04/22/25"},
		{"12/01/1999", "12/01/99"},
		{"2025-04-22", "2025-04-22"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatShortDate(tt.in); got != tt.want {
			t.Errorf("FormatShortDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateWithDay(t *testing.T) {
	if got, want := FormatDateWithDay("04/22/2025"), "Tuesday April 22, 2025"; got != want {
		t.Errorf("FormatDateWithDay() = %q, want %q", got, want)
	}
	if got := FormatDateWithDay("garbage"); got != "garbage" {
		t.Errorf("FormatDateWithDay(garbage) = %q, want passthrough", got)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"13:30:00", "01:30 PM"},
		{"09:05:00", "09:05 AM"},
		{"00:00:00", "12:00 AM"},
		{"1:30 PM", "1:30 PM"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
