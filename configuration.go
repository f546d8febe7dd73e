package camomile

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/camomile-project/camomile-go/util"
)

type Options struct {
	// RequestTimeout bounds every HTTP request, including the initial
	// connection of the push stream.
	RequestTimeout time.Duration
	// MaxRetries is the number of attempts made for a request that fails with
	// a retryable status (429 or 5xx) or a transport error.
	MaxRetries int
	// RetryDelay is the base delay between attempts; it grows exponentially
	// and is overridden by a Retry-After response header.
	RetryDelay time.Duration
	Logger     util.Logger
}

func (o *Options) CheckDefaults() {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = time.Second * 30
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = time.Millisecond * 500
	}
}

type HTTPConfiguration struct {
	BasePath      string            `json:"basePath,omitempty"`
	DefaultHeader map[string]string `json:"defaultHeader,omitempty"`
	UserAgent     string            `json:"userAgent,omitempty"`
	HTTPClient    *http.Client
}

func NewConfiguration(baseURL string, options *Options) *HTTPConfiguration {
	// The session cookie issued by /login lives in the jar; the same client
	// (and therefore the same session) backs both the REST calls and the
	// push stream.
	jar, _ := cookiejar.New(nil)

	cfg := &HTTPConfiguration{
		BasePath:      strings.TrimRight(baseURL, "/"),
		DefaultHeader: make(map[string]string),
		UserAgent:     "Camomile-Go-Client/" + VERSION + "/go",
		HTTPClient: &http.Client{
			Jar: jar,
			// Set an explicit timeout so that we don't wait forever on a request
			Timeout: options.RequestTimeout,
		},
	}
	return cfg
}

func (c *HTTPConfiguration) AddDefaultHeader(key string, value string) {
	c.DefaultHeader[key] = value
}
