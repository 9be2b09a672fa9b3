package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"gavel/internal/basis"
	"gavel/internal/config"
	"gavel/internal/logging"
	"gavel/internal/meeting"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type indexPage struct {
	Today    string
	Tomorrow string
}

type meetingView struct {
	ID          string
	RowID       string
	ShortDate   string
	Title       string
	Status      string
	Canceled    bool
	Location    string
	Time        string
	Bills       string
	Description string
}

type dateSection struct {
	Heading  string
	Meetings []meetingView
}

type meetingsPage struct {
	Title      string
	DateInfo   string
	IsRange    bool
	Sections   []dateSection
	Total      int
	Encoders   []config.Encoder
	FailedDays []string
}

func viewFor(date string, index int, rec meeting.Record) meetingView {
	location := rec.Location
	if location == "" {
		location = "No Location"
	}
	formattedTime := "No Time"
	if rec.MeetingTime != "" {
		formattedTime = meeting.FormatTime(rec.MeetingTime)
	}
	return meetingView{
		ID:          meeting.StableID(rec),
		RowID:       fmt.Sprintf("meeting-%s-%d", strings.ReplaceAll(date, "/", ""), index),
		ShortDate:   meeting.FormatShortDate(date),
		Title:       meeting.BuildTitle(rec),
		Status:      meeting.Status(rec),
		Canceled:    rec.MeetingCanceled,
		Location:    location,
		Time:        formattedTime,
		Bills:       strings.Join(meeting.Bills(rec), ", "),
		Description: meeting.BuildDescription(rec),
	}
}

func sectionFor(date string, records []meeting.Record) (dateSection, int) {
	section := dateSection{Heading: meeting.FormatDateWithDay(date)}
	for i, rec := range records {
		if meeting.ShouldSkip(rec) {
			continue
		}
		section.Meetings = append(section.Meetings, viewFor(date, i, rec))
	}
	return section, len(section.Meetings)
}

func (s *Server) meetingsPageFor(date string, records []meeting.Record) meetingsPage {
	page := meetingsPage{
		Title:    "Gavel Meeting Exporter - " + meeting.FormatDateWithDay(date),
		DateInfo: date,
		Encoders: s.encoders,
	}
	section, count := sectionFor(date, records)
	if count > 0 {
		page.Sections = append(page.Sections, section)
		page.Total = count
	}
	return page
}

func (s *Server) rangePageFor(startDate, endDate string, days []basis.DayResult) meetingsPage {
	page := meetingsPage{
		Title: fmt.Sprintf("Gavel Meeting Exporter - %s to %s",
			meeting.FormatDateWithDay(startDate), meeting.FormatDateWithDay(endDate)),
		DateInfo: startDate + " to " + endDate,
		IsRange:  true,
		Encoders: s.encoders,
	}
	for _, day := range days {
		if day.Err != nil {
			page.FailedDays = append(page.FailedDays, day.Date)
			continue
		}
		section, count := sectionFor(day.Date, day.Records)
		if count > 0 {
			page.Sections = append(page.Sections, section)
			page.Total += count
		}
	}
	return page
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render template", logging.String("template", name), logging.Error(err))
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, "error.html", struct{ Message string }{message}); err != nil {
		s.logger.Error("render error page", logging.Error(err))
	}
}
