package dav

import "net/http"

const (
	defaultBaseURL       = "https://dav.jianguoyun.com"
	defaultDavRoot       = "/dav"
	defaultOperationRoot = "/nsdav"
)

// HTTPDoer is the transport the client performs calls on. *http.Client
// satisfies it, anything wrapping one does too.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credential is a username and access token pair used for basic auth.
type Credential struct {
	Username string
	Token    string
}

type config struct {
	BaseURL string
	DavRoot string
	OpRoot  string
	Auth    *Credential
	Client  HTTPDoer
}

type Option func(c *config)

// WithBaseURL overrides the default endpoint, no trailing slash.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.BaseURL = u
	}
}

// WithDavRoot overrides the dav resource root.
func WithDavRoot(p string) Option {
	return func(c *config) {
		c.DavRoot = p
	}
}

// WithOperationRoot overrides the vendor operation root.
func WithOperationRoot(p string) Option {
	return func(c *config) {
		c.OpRoot = p
	}
}

// WithAuth configures the default credential pair.
func WithAuth(username string, token string) Option {
	return func(c *config) {
		c.Auth = &Credential{Username: username, Token: token}
	}
}

// WithClient configures a shared transport, replacing the package default.
func WithClient(cli HTTPDoer) Option {
	return func(c *config) {
		c.Client = cli
	}
}

type callConfig struct {
	auth   *Credential
	client HTTPDoer
}

// CallOption overrides configuration for a single call.
type CallOption func(c *callConfig)

// WithCallAuth overrides the configured credential for one call.
func WithCallAuth(username string, token string) CallOption {
	return func(c *callConfig) {
		c.auth = &Credential{Username: username, Token: token}
	}
}

// WithCallClient performs one call on the given transport.
func WithCallClient(cli HTTPDoer) CallOption {
	return func(c *callConfig) {
		c.client = cli
	}
}

func applyCallOptions(opts []CallOption) *callConfig {
	cc := &callConfig{}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}
