package camomile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/camomile-project/camomile-go/api"
	"github.com/camomile-project/camomile-go/util"
	"github.com/google/uuid"
	"github.com/matryer/try"
)

// Client is a session with a Camomile annotation server.
// In most cases there should be only one, shared, Client.
type Client struct {
	cfg     *HTTPConfiguration
	options *Options

	mu     sync.Mutex
	events *EventChannel
}

// NewClient creates a client for the server at baseURL. No request is issued
// until Login or the first resource call.
func NewClient(baseURL string, options *Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("missing server URL! Call NewClient with the base URL of a Camomile server")
	}
	if options == nil {
		options = &Options{}
	}
	options.CheckDefaults()

	if options.Logger != nil {
		util.SetLogger(options.Logger)
	}

	c := &Client{
		cfg:     NewConfiguration(baseURL, options),
		options: options,
	}
	return c, nil
}

// Login authenticates the session. The server answers with a session cookie
// that the underlying cookie jar attaches to every later request, including
// the push stream.
func (c *Client) Login(username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var ack api.SuccessResponse
	if err := c.post("login", body, &ack); err != nil {
		return err
	}
	util.Debugf("login: %s", ack.Success)
	return nil
}

// Logout ends the session and tears down the event channel, if one is open.
// Registered callbacks do not survive a logout.
func (c *Client) Logout() error {
	c.mu.Lock()
	events := c.events
	c.events = nil
	c.mu.Unlock()
	if events != nil {
		events.Close()
	}
	return c.get("logout", nil, nil)
}

// Me returns the logged-in user.
func (c *Client) Me() (User, error) {
	var u User
	err := c.get("me", nil, &u)
	return u, err
}

// Events returns the push-notification channel of this session, creating it
// lazily. The connection itself is only established by the first Watch call
// (or an explicit Open).
func (c *Client) Events() *EventChannel {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.events == nil {
		c.events = newEventChannel(c)
	}
	return c.events
}

// ChangeBasePath allows switching the server URL, e.g. to point at mocks.
func (c *Client) ChangeBasePath(path string) {
	c.cfg.BasePath = path
}

func (c *Client) get(route string, query url.Values, result interface{}) error {
	return c.do(http.MethodGet, route, query, nil, result)
}

func (c *Client) post(route string, body, result interface{}) error {
	return c.do(http.MethodPost, route, nil, body, result)
}

func (c *Client) put(route string, body, result interface{}) error {
	return c.do(http.MethodPut, route, nil, body, result)
}

func (c *Client) del(route string, result interface{}) error {
	return c.do(http.MethodDelete, route, nil, nil, result)
}

func (c *Client) do(method, route string, query url.Values, body, result interface{}) error {
	r, respBody, err := c.performRequest(method, route, query, body)
	if err != nil {
		return err
	}
	if r.StatusCode >= 400 {
		return c.handleError(r, respBody)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(respBody, result)
}

func (c *Client) performRequest(method, route string, query url.Values, postBody interface{}) (response *http.Response, body []byte, err error) {
	// This retrying lib works by retrying as long as the bool is true and err
	// is not nil; the attempt param is auto-incremented.
	err = try.Do(func(attempt int) (bool, error) {
		req, err := c.prepareRequest(method, route, query, postBody)
		if err != nil {
			// Don't retry if there's an error preparing the request
			return false, err
		}

		r, err := c.cfg.HTTPClient.Do(req)
		if err != nil {
			if attempt < c.options.MaxRetries {
				time.Sleep(c.retryDelay(nil, attempt))
				return true, err
			}
			return false, err
		}

		b, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			return false, err
		}

		if retryableStatus(r.StatusCode) && attempt < c.options.MaxRetries {
			delay := c.retryDelay(r, attempt)
			util.Debugf("request: %s %s returned %s, retrying in %v", method, route, r.Status, delay)
			time.Sleep(delay)
			return true, fmt.Errorf("server returned %s", r.Status)
		}

		response, body = r, b
		return false, nil
	})
	return response, body, err
}

func (c *Client) prepareRequest(method, route string, query url.Values, postBody interface{}) (*http.Request, error) {
	u, err := url.Parse(c.cfg.BasePath + "/" + route)
	if err != nil {
		return nil, err
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if postBody != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(postBody); err != nil {
			return nil, err
		}
		body = buf
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if postBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Request id for server-side log correlation.
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	for header, value := range c.cfg.DefaultHeader {
		req.Header.Add(header, value)
	}
	return req, nil
}

// retryDelay honors the Retry-After header sent by the rate limiter when
// present, otherwise backs off exponentially with jitter.
func (c *Client) retryDelay(r *http.Response, attempt int) time.Duration {
	if r != nil {
		if s := r.Header.Get("Retry-After"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.options.RetryDelay
	jitter := time.Duration(rand.Int63n(int64(c.options.RetryDelay)/4 + 1))
	return delay + jitter
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func (c *Client) handleError(r *http.Response, body []byte) error {
	apiErr := &APIError{
		StatusCode: r.StatusCode,
		status:     r.Status,
		body:       body,
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &apiErr.model); err != nil {
			util.Debugf("request: undecodable error body: %v", err)
		}
	}
	return apiErr
}

// APIError is returned for every response with status >= 400. It keeps the
// raw body and, when the server sent one, the decoded error/message text.
type APIError struct {
	StatusCode int
	status     string
	body       []byte
	model      api.ErrorResponse
}

func (e *APIError) Error() string {
	if text := e.model.Text(); text != "" {
		return e.status + ": " + text
	}
	return e.status
}

// Body returns the raw bytes of the response.
func (e *APIError) Body() []byte {
	return e.body
}

// Model returns the decoded error body.
func (e *APIError) Model() api.ErrorResponse {
	return e.model
}

// AsAPIError unwraps err as an *APIError, if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
