package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stubPayload = `{
  "Basis": {
    "Meetings": [
      {
        "Chamber": "S",
        "MeetingTitle": "FINANCE",
        "SponsorType": "Standing Committee",
        "MeetingSponsor": "FIN",
        "MeetingDate": "2025-04-22",
        "MeetingTime": "13:30:00",
        "Location": "SENATE FINANCE 532",
        "MeetingCanceled": false,
        "MeetingSlices": [
          {"BillRoot": "SB 89", "SliceHighliteText": "SB 89", "ShortTitle": "EDUCATION FUNDING"},
          {"BillRoot": "SB 89", "SliceHighliteText": "Public testimony"}
        ]
      }
    ]
  }
}`

type cliTestEnv struct {
	configPath string
	exportDir  string
	logDir     string
	basisURL   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, stubPayload)
	}))
	t.Cleanup(stub.Close)

	base := t.TempDir()
	exportDir := filepath.Join(base, "exports")
	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(base, "config.toml")

	// The logging dir must stay inside the temp tree or test runs write a
	// gavel.log into the real user home.
	content := fmt.Sprintf(
		"[basis]\nbase_url = %q\n\n[server]\nbind = \"127.0.0.1:0\"\n\n[export]\ndir = %q\n\n[logging]\ndir = %q\n",
		stub.URL, exportDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		configPath: configPath,
		exportDir:  exportDir,
		logDir:     logDir,
		basisURL:   stub.URL,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
