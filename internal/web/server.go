package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"gavel/internal/basis"
	"gavel/internal/config"
	"gavel/internal/logging"
	"gavel/internal/meeting"
)

// Fetcher supplies raw meeting records for the handlers. Production use wires
// the BASIS client; tests substitute a stub.
type Fetcher interface {
	FetchMeetings(ctx context.Context, date string) ([]meeting.Record, error)
	FetchRange(ctx context.Context, startDate, endDate string) ([]basis.DayResult, error)
}

// Server hosts the meeting browser and export endpoints.
type Server struct {
	bind     string
	logger   *slog.Logger
	fetcher  Fetcher
	encoders []config.Encoder

	listener net.Listener
	server   *http.Server
}

// NewServer wires the handlers against the supplied fetcher and encoder
// roster.
func NewServer(cfg *config.Config, fetcher Fetcher, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("web server: config required")
	}
	if fetcher == nil {
		return nil, errors.New("web server: fetcher required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		bind:     strings.TrimSpace(cfg.Server.Bind),
		logger:   logger,
		fetcher:  fetcher,
		encoders: cfg.Encoders,
	}

	srv.server = &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the route table; exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/view", s.handleView)
	mux.HandleFunc("/view_range", s.handleViewRange)
	mux.HandleFunc("/export_csv", s.handleExportCSV)
	mux.HandleFunc("/export_csv_range", s.handleExportCSVRange)
	mux.HandleFunc("/export_invintus", s.handleExportInvintus)
	mux.HandleFunc("/export_invintus_range", s.handleExportInvintusRange)
	return mux
}

// Start binds the listener and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("web listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("web server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("web server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr reports the bound listener address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
