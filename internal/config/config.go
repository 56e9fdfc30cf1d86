package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Config holds the settings of a batch conversion.
type Config struct {
	// Output
	OutputDir string `json:"output_dir"`
	Compress  bool   `json:"compress"`
	Manifest  string `json:"manifest"`

	// Input
	Extensions    []string `json:"extensions"`
	LaxClassNames bool     `json:"lax_class_names"`
	NoValidate    bool     `json:"no_validate"`

	// Processing
	Verify  bool `json:"verify"`
	Workers int  `json:"workers"`
}

// DefaultExtensions are matched by the "*" pattern when no extensions are
// configured.
var DefaultExtensions = []string{".dts", ".DTS"}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	c.Compress = c.Compress || flags.Compress
	c.Verify = c.Verify || flags.Verify
	c.LaxClassNames = c.LaxClassNames || flags.LaxClassNames
	c.NoValidate = c.NoValidate || flags.NoValidate

	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// OutputExt returns the extension appended to the name of each converted file.
func (c Config) OutputExt() string {
	if c.Compress {
		return ".json.lz4"
	}
	return ".json"
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir     string
	Manifest      string
	Workers       int
	Compress      bool
	Verify        bool
	LaxClassNames bool
	NoValidate    bool
}
