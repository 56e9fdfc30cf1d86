package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the logger of a command. Verbose selects a development
// logger with debug output; otherwise warnings and errors are logged in the
// production encoding.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
