package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBasis(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateEncoders(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBasis() error {
	parsed, err := url.Parse(c.Basis.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("basis.base_url %q is not an absolute URL", c.Basis.BaseURL)
	}
	return nil
}

func (c *Config) validateServer() error {
	bind := strings.TrimSpace(c.Server.Bind)
	if bind == "" {
		return errors.New("server.bind must be set")
	}
	if !strings.Contains(bind, ":") {
		return fmt.Errorf("server.bind %q must be host:port", bind)
	}
	return nil
}

func (c *Config) validateEncoders() error {
	seen := make(map[string]struct{}, len(c.Encoders))
	for i, enc := range c.Encoders {
		if strings.TrimSpace(enc.ID) == "" {
			return fmt.Errorf("encoders[%d].id must be set", i)
		}
		if strings.TrimSpace(enc.Name) == "" {
			return fmt.Errorf("encoders[%d].name must be set", i)
		}
		if _, dup := seen[enc.ID]; dup {
			return fmt.Errorf("encoders[%d].id %q is duplicated", i, enc.ID)
		}
		seen[enc.ID] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	return nil
}
