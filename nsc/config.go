package nsc

import (
	"time"

	"github.com/xxxsen/nswebdav/dav"
)

type config struct {
	Client        *dav.Client
	Thread        int
	Attempt       uint32
	RetryInterval time.Duration
}

type Option func(*config)

// WithClient sets the low-level dav client calls are performed on.
func WithClient(c *dav.Client) Option {
	return func(cfg *config) {
		cfg.Client = c
	}
}

// WithThread caps how many transfers run at once during a directory upload.
func WithThread(n int) Option {
	return func(cfg *config) {
		cfg.Thread = n
	}
}

// WithRetry sets the per-transfer retry policy. The dav facade never
// retries, this is caller-side policy only.
func WithRetry(attempt uint32, interval time.Duration) Option {
	return func(cfg *config) {
		cfg.Attempt = attempt
		cfg.RetryInterval = interval
	}
}
