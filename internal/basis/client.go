package basis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"gavel/internal/logging"
	"gavel/internal/meeting"
)

const (
	defaultBaseURL     = "http://www.akleg.gov/publicservice/basis/"
	defaultAPIVersion  = "1.4"
	defaultHTTPTimeout = 30 * time.Second

	// MaxSpanDays caps a range fetch; larger spans are rejected before any
	// request is issued.
	MaxSpanDays = 30

	queryDateLayout = "01/02/2006"
)

// Config captures the runtime settings for the BASIS client.
type Config struct {
	BaseURL        string
	Version        string
	TimeoutSeconds int
}

// HTTPDoer describes the HTTP client used to reach BASIS.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the BASIS meetings endpoint.
type Client struct {
	cfg    Config
	client HTTPDoer
	logger *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger attaches a logger; fetches log one line per request.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient constructs a BASIS client from the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			Version:        strings.TrimSpace(cfg.Version),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		client: &http.Client{Timeout: timeout},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.Version == "" {
		client.cfg.Version = defaultAPIVersion
	}
	return client
}

// DayResult is one calendar day of a range fetch. Err marks a day whose fetch
// failed; Records is nil for such days and the marker must be treated as
// terminal for that day.
type DayResult struct {
	Date    string
	Records []meeting.Record
	Err     error
}

// ParseQueryDate validates an MM/DD/YYYY query date.
func ParseQueryDate(date string) (time.Time, error) {
	parsed, err := time.Parse(queryDateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, Wrap(ErrBadInput, "parse date", fmt.Sprintf("%q is not MM/DD/YYYY", date), nil)
	}
	return parsed, nil
}

// FetchMeetings retrieves the meetings for one MM/DD/YYYY query date.
func (c *Client) FetchMeetings(ctx context.Context, date string) ([]meeting.Record, error) {
	if _, err := ParseQueryDate(date); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/meetings?json=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, Wrap(ErrUpstream, "fetch meetings", "build request", err)
	}
	req.Header.Set("X-Alaska-Legislature-Basis-Version", c.cfg.Version)
	req.Header.Set("X-Alaska-Legislature-Basis-Query", fmt.Sprintf("meetings;date=%s;details", date))
	req.Header.Set("Accept-Language", "en")

	c.logger.Debug("fetching meetings",
		logging.String("date", date),
		logging.String("correlation_id", requestID))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, Wrap(ErrUpstream, "fetch meetings", date, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Wrap(ErrUpstream, "fetch meetings", fmt.Sprintf("%s: status %d", date, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Wrap(ErrUpstream, "fetch meetings", "read response", err)
	}

	records, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("fetched meetings",
		logging.String("date", date),
		logging.Int("count", len(records)),
		logging.String("correlation_id", requestID))
	return records, nil
}

// FetchRange retrieves meetings for each calendar day from start through end
// inclusive, sequentially and in calendar order. A failed day carries its
// error in the result rather than aborting the remaining days. Ranges longer
// than MaxSpanDays and malformed dates are rejected before any fetch.
func (c *Client) FetchRange(ctx context.Context, startDate, endDate string) ([]DayResult, error) {
	start, err := ParseQueryDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseQueryDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, Wrap(ErrBadInput, "fetch range", "end date precedes start date", nil)
	}
	if int(end.Sub(start).Hours()/24) > MaxSpanDays {
		return nil, Wrap(ErrBadInput, "fetch range", fmt.Sprintf("span exceeds %d days", MaxSpanDays), nil)
	}

	var results []DayResult
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(queryDateLayout)
		records, err := c.FetchMeetings(ctx, date)
		if err != nil {
			results = append(results, DayResult{Date: date, Err: err})
			continue
		}
		results = append(results, DayResult{Date: date, Records: records})
	}
	return results, nil
}

// decodeEnvelope unwraps the BASIS response. The Meetings field arrives as a
// plain list, a single object, or a wrapper object keyed by "Meeting"; all
// three shapes decode to a flat record list.
func decodeEnvelope(body []byte) ([]meeting.Record, error) {
	var envelope struct {
		Basis *struct {
			Meetings json.RawMessage `json:"Meetings"`
		} `json:"Basis"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, Wrap(ErrUnexpectedPayload, "decode response", "", err)
	}
	if envelope.Basis == nil {
		return nil, Wrap(ErrUnexpectedPayload, "decode response", "no Basis field", nil)
	}
	if len(envelope.Basis.Meetings) == 0 {
		return nil, Wrap(ErrUnexpectedPayload, "decode response", "no Meetings field", nil)
	}
	return decodeMeetings(envelope.Basis.Meetings)
}

func decodeMeetings(raw json.RawMessage) ([]meeting.Record, error) {
	var records []meeting.Record
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Meeting json.RawMessage `json:"Meeting"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil || len(wrapper.Meeting) == 0 {
		return nil, Wrap(ErrUnexpectedPayload, "decode response", "unexpected Meetings structure", nil)
	}

	if err := json.Unmarshal(wrapper.Meeting, &records); err == nil {
		return records, nil
	}
	var single meeting.Record
	if err := json.Unmarshal(wrapper.Meeting, &single); err != nil {
		return nil, Wrap(ErrUnexpectedPayload, "decode response", "unexpected Meeting structure", err)
	}
	return []meeting.Record{single}, nil
}
