package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeBasis(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	// Defaults are applied post-decode; a TOML array of tables appends to a
	// pre-populated slice instead of replacing it.
	if len(c.Encoders) == 0 {
		c.Encoders = defaultEncoders()
	}
	return nil
}

func (c *Config) normalizeBasis() error {
	if override := strings.TrimSpace(os.Getenv(basisBaseURLEnv)); override != "" {
		c.Basis.BaseURL = override
	}
	c.Basis.BaseURL = strings.TrimSpace(c.Basis.BaseURL)
	if c.Basis.BaseURL == "" {
		c.Basis.BaseURL = defaultBasisBaseURL
	}
	c.Basis.Version = strings.TrimSpace(c.Basis.Version)
	if c.Basis.Version == "" {
		c.Basis.Version = defaultBasisVersion
	}
	if c.Basis.TimeoutSeconds <= 0 {
		c.Basis.TimeoutSeconds = defaultBasisTimeoutSecs
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Export.Dir) == "" {
		c.Export.Dir = defaultExportDir
	}
	if c.Export.Dir, err = expandPath(c.Export.Dir); err != nil {
		return fmt.Errorf("export.dir: %w", err)
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
