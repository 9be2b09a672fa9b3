package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gavel/internal/basis"
	"gavel/internal/export"
	"gavel/internal/logging"
	"gavel/internal/meeting"
)

const queryDateLayout = "01/02/2006"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	now := time.Now()
	s.render(w, "index.html", indexPage{
		Today:    now.Format(queryDateLayout),
		Tomorrow: now.AddDate(0, 0, 1).Format(queryDateLayout),
	})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	date := queryDate(r, "date")
	records, err := s.fetcher.FetchMeetings(r.Context(), date)
	if err != nil {
		s.renderFetchError(w, err)
		return
	}
	s.render(w, "meetings.html", s.meetingsPageFor(date, records))
}

func (s *Server) handleViewRange(w http.ResponseWriter, r *http.Request) {
	start := queryDate(r, "start_date")
	end := r.URL.Query().Get("end_date")
	if end == "" {
		end = time.Now().AddDate(0, 0, 1).Format(queryDateLayout)
	}
	days, err := s.fetcher.FetchRange(r.Context(), start, end)
	if err != nil {
		s.renderFetchError(w, err)
		return
	}
	s.render(w, "meetings.html", s.rangePageFor(start, end, days))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	date := queryDate(r, "date")
	records, err := s.fetcher.FetchMeetings(r.Context(), date)
	if err != nil {
		s.renderFetchError(w, err)
		return
	}

	rows := make([]export.DatedRecord, len(records))
	for i, rec := range records {
		rows[i] = export.DatedRecord{Record: rec}
	}
	s.sendCSV(w, export.GenericFilename(date, ""), func(out http.ResponseWriter) error {
		return export.WriteGeneric(out, rows, false)
	})
}

func (s *Server) handleExportCSVRange(w http.ResponseWriter, r *http.Request) {
	start, end := splitDateInfo(r.URL.Query().Get("date"))
	if start == end {
		s.handleExportCSV(w, cloneWithDate(r, start))
		return
	}

	days, err := s.fetcher.FetchRange(r.Context(), start, end)
	if err != nil {
		s.renderFetchError(w, err)
		return
	}

	var rows []export.DatedRecord
	for _, day := range days {
		if day.Err != nil {
			continue
		}
		for _, rec := range day.Records {
			rows = append(rows, export.DatedRecord{Date: day.Date, Record: rec})
		}
	}
	s.sendCSV(w, export.GenericFilename(start, end), func(out http.ResponseWriter) error {
		return export.WriteGeneric(out, rows, true)
	})
}

func (s *Server) handleExportInvintus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.renderError(w, http.StatusMethodNotAllowed, "export requires a form submission")
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, "malformed form submission")
		return
	}

	sel, ok := s.selectionFromForm(w, r)
	if !ok {
		return
	}

	date := strings.TrimSpace(r.PostFormValue("date_info"))
	records, err := s.fetcher.FetchMeetings(r.Context(), date)
	if err != nil {
		s.renderFetchError(w, err)
		return
	}

	s.sendCSV(w, export.InvintusFilename(date, ""), func(out http.ResponseWriter) error {
		return export.WriteInvintus(out, records, sel)
	})
}

func (s *Server) handleExportInvintusRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.renderError(w, http.StatusMethodNotAllowed, "export requires a form submission")
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, "malformed form submission")
		return
	}

	sel, ok := s.selectionFromForm(w, r)
	if !ok {
		return
	}

	start, end := splitDateInfo(r.PostFormValue("date_info"))

	var records []meeting.Record
	if start == end {
		var ok bool
		if records, ok = s.fetchDay(w, r, start); !ok {
			return
		}
	} else {
		days, err := s.fetcher.FetchRange(r.Context(), start, end)
		if err != nil {
			s.renderFetchError(w, err)
			return
		}
		for _, day := range days {
			if day.Err != nil {
				continue
			}
			records = append(records, day.Records...)
		}
	}

	s.sendCSV(w, export.InvintusFilename(start, end), func(out http.ResponseWriter) error {
		return export.WriteInvintus(out, records, sel)
	})
}

func (s *Server) fetchDay(w http.ResponseWriter, r *http.Request, date string) ([]meeting.Record, bool) {
	records, err := s.fetcher.FetchMeetings(r.Context(), date)
	if err != nil {
		s.renderFetchError(w, err)
		return nil, false
	}
	if records == nil {
		records = []meeting.Record{}
	}
	return records, true
}

// selectionFromForm decodes the Invintus selection: every checked meeting is
// included, with its encoder value (possibly blank) and optional category.
func (s *Server) selectionFromForm(w http.ResponseWriter, r *http.Request) (export.Selection, bool) {
	selected := r.PostForm["selected_meetings"]
	if len(selected) == 0 {
		s.renderError(w, http.StatusBadRequest, "No meetings selected. Go back and select at least one meeting.")
		return export.Selection{}, false
	}

	sel := export.Selection{
		Encoders:    make(map[string]string, len(selected)),
		Categories:  make(map[string]string, len(selected)),
		Runtime:     strings.TrimSpace(r.PostFormValue("runtime")),
		LiveToBreak: r.PostFormValue("live_to_break") != "",
	}
	if sel.Runtime == "" {
		sel.Runtime = "01:00"
	}
	for _, id := range selected {
		sel.Encoders[id] = r.PostFormValue("encoder_" + id)
		if category := r.PostFormValue("category_" + id); category != "" {
			sel.Categories[id] = category
		}
	}
	return sel, true
}

func (s *Server) sendCSV(w http.ResponseWriter, filename string, write func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := write(w); err != nil {
		s.logger.Error("write csv export", logging.String("filename", filename), logging.Error(err))
	}
}

func (s *Server) renderFetchError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, basis.ErrBadInput) {
		status = http.StatusBadRequest
	}
	s.renderError(w, status, err.Error())
}

func queryDate(r *http.Request, key string) string {
	if date := r.URL.Query().Get(key); date != "" {
		return date
	}
	return time.Now().Format(queryDateLayout)
}

// splitDateInfo parses the "start to end" date descriptor the view form
// round-trips. A bare date means a degenerate single-day range.
func splitDateInfo(value string) (string, string) {
	value = strings.TrimSpace(value)
	if start, end, found := strings.Cut(value, " to "); found {
		return strings.TrimSpace(start), strings.TrimSpace(end)
	}
	return value, value
}

func cloneWithDate(r *http.Request, date string) *http.Request {
	clone := r.Clone(r.Context())
	query := clone.URL.Query()
	query.Set("date", date)
	clone.URL.RawQuery = query.Encode()
	return clone
}
