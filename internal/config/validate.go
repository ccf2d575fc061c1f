package config

import (
	"fmt"
	"slices"
	"strings"
)

const (
	maxWorkers   = 256
	minGzipLevel = -2 // huffman only
	maxGzipLevel = 9
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Convert.validate(); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(l.Level))) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(strings.TrimSpace(l.Format))) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}

func (c *ConvertConfig) validate() error {
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("workers must be in 1..%d (got %d)", maxWorkers, c.Workers)
	}
	if c.GzipLevel < minGzipLevel || c.GzipLevel > maxGzipLevel {
		return fmt.Errorf("gzip_level must be in %d..%d (got %d)", minGzipLevel, maxGzipLevel, c.GzipLevel)
	}
	return nil
}
