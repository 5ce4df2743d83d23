package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	if c.Analyzer.MaxInputBytes <= 0 {
		return fmt.Errorf("analyzer.max_input_bytes must be > 0 (got %d)", c.Analyzer.MaxInputBytes)
	}
	if c.Analyzer.Workers < 1 {
		return fmt.Errorf("analyzer.workers must be >= 1 (got %d)", c.Analyzer.Workers)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}
	return nil
}
