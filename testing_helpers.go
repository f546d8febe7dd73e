package camomile

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"
)

var test_baseURL = "https://annotation.example.org/api"

func httpLoginMock() {
	httpmock.RegisterResponder("POST", test_baseURL+"/login",
		func(req *http.Request) (*http.Response, error) {
			resp := httpmock.NewStringResponse(200, `{"success":"Authenticated as admin"}`)
			resp.Header.Set("Set-Cookie", "connect.sid=s%3Atest-session; Path=/; HttpOnly")
			return resp, nil
		},
	)
}

func httpLogoutMock() {
	httpmock.RegisterResponder("GET", test_baseURL+"/logout",
		httpmock.NewStringResponder(200, `{"success":"Logged out"}`))
}

func httpListenMock(channelID string) {
	httpmock.RegisterResponder("POST", test_baseURL+"/listen",
		httpmock.NewStringResponder(200, fmt.Sprintf(`{"channel_id":%q}`, channelID)))
}

// httpStreamMock serves the push stream for channelID from a pipe; the test
// feeds events through the returned writer.
func httpStreamMock(channelID string) *io.PipeWriter {
	pr, pw := io.Pipe()
	httpmock.RegisterResponder("GET", test_baseURL+"/listen/"+channelID,
		func(req *http.Request) (*http.Response, error) {
			resp := &http.Response{
				StatusCode: 200,
				Status:     "200 OK",
				Header:     http.Header{},
				Body:       pr,
				Request:    req,
			}
			resp.Header.Set("Content-Type", "text/event-stream")
			return resp, nil
		},
	)
	return pw
}

func httpWatchMock(channelID, kind, id, body string) {
	httpmock.RegisterResponder("PUT", test_baseURL+"/listen/"+channelID+"/"+kind+"/"+id,
		httpmock.NewStringResponder(200, body))
}

func httpUnwatchMock(channelID, kind, id, body string) {
	httpmock.RegisterResponder("DELETE", test_baseURL+"/listen/"+channelID+"/"+kind+"/"+id,
		httpmock.NewStringResponder(200, body))
}

func sendEvent(pw *io.PipeWriter, name, data string) {
	// Write errors after teardown are expected; the stream is gone.
	_, _ = fmt.Fprintf(pw, "event: %s\ndata: %s\n\n", name, data)
}

func newTestClient() (*Client, error) {
	return NewClient(test_baseURL, &Options{
		RequestTimeout: 5 * time.Second,
		RetryDelay:     10 * time.Millisecond,
	})
}
