package module

import (
	"time"

	"vitalsum/internal/platform/config"
)

// Options holds configuration options for the report pipeline
type Options struct {
	BaseURL     string
	UserAgent   string
	HTTPTimeout time.Duration
}

// FromConfig reads the report options from config with REPORT_ prefix
func FromConfig(cfg config.Conf) Options {
	rep := cfg.Prefix("REPORT_")
	return Options{
		BaseURL:   rep.MayURL("BASE_URL", "http://localhost:8000/api"),
		UserAgent: rep.MayString("USER_AGENT", "vitalsum-report"),
		// 0 means no client timeout; a hung call blocks the run, acceptable
		// against the local API
		HTTPTimeout: rep.MayDuration("HTTP_TIMEOUT", 0),
	}
}
