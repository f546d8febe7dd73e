package camomile

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login_StoresSessionCookie(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpLoginMock()

	c, err := newTestClient()
	require.NoError(t, err)

	require.NoError(t, c.Login("admin", "password"))

	base, _ := url.Parse(test_baseURL + "/")
	cookies := c.cfg.HTTPClient.Jar.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, "connect.sid", cookies[0].Name)
}

func TestClient_Login_BadCredentials(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("POST", test_baseURL+"/login",
		httpmock.NewStringResponder(401, `{"error":"Authentication failed"}`))

	c, err := newTestClient()
	require.NoError(t, err)

	err = c.Login("admin", "wrong")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Authentication failed")
	assert.Equal(t, "Authentication failed", apiErr.Model().Error)
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	calls := 0
	httpmock.RegisterResponder("GET", test_baseURL+"/corpus/c1",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls < 3 {
				return httpmock.NewStringResponse(500, `{"error":"boom"}`), nil
			}
			return httpmock.NewStringResponse(200, `{"_id":"c1","name":"demo"}`), nil
		},
	)

	c, err := newTestClient()
	require.NoError(t, err)

	corpus, err := c.Corpus("c1")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "demo", corpus.Name)
}

func TestClient_RetriesExhausted(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", test_baseURL+"/corpus/c1",
		httpmock.NewStringResponder(503, `{"error":"unavailable"}`))

	c, err := newTestClient()
	require.NoError(t, err)

	_, err = c.Corpus("c1")
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

func TestClient_RequestIDHeader(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var requestID string
	httpmock.RegisterResponder("GET", test_baseURL+"/me",
		func(req *http.Request) (*http.Response, error) {
			requestID = req.Header.Get("X-Request-Id")
			return httpmock.NewStringResponse(200, `{"_id":"u1","username":"admin"}`), nil
		},
	)

	c, err := newTestClient()
	require.NoError(t, err)

	me, err := c.Me()
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Username)

	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "X-Request-Id should be a uuid, got %q", requestID)
}

func TestClient_CreateUser_ValidatesBeforeRequest(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	c, err := newTestClient()
	require.NoError(t, err)

	_, err = c.CreateUser(UserCreate{Password: "secret"})
	require.Error(t, err)

	_, err = c.CreateUser(UserCreate{Username: "ann", Password: "secret", Role: "superuser"})
	require.Error(t, err)

	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestClient_CreateMedium_RejectsBadURL(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	c, err := newTestClient()
	require.NoError(t, err)

	_, err = c.CreateMedium("c1", MediumCreate{Name: "m", URL: "not a url"})
	require.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestClient_CorpusCRUD(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", test_baseURL+"/corpus",
		httpmock.NewStringResponder(200, `{"_id":"c1","name":"demo"}`))
	httpmock.RegisterResponder("GET", test_baseURL+"/corpus",
		httpmock.NewStringResponder(200, `[{"_id":"c1","name":"demo"}]`))
	httpmock.RegisterResponder("PUT", test_baseURL+"/corpus/c1",
		httpmock.NewStringResponder(200, `{"_id":"c1","name":"renamed"}`))
	httpmock.RegisterResponder("DELETE", test_baseURL+"/corpus/c1",
		httpmock.NewStringResponder(200, `{"success":"deleted"}`))

	c, err := newTestClient()
	require.NoError(t, err)

	created, err := c.CreateCorpus(CorpusCreate{Name: "demo"})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)

	corpora, err := c.Corpora(nil)
	require.NoError(t, err)
	require.Len(t, corpora, 1)
	assert.Equal(t, "demo", corpora[0].Name)

	updated, err := c.UpdateCorpus("c1", CorpusUpdate{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	require.NoError(t, c.DeleteCorpus("c1"))
}

func TestClient_QueueRoundtrip(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("PUT", test_baseURL+"/queue/q1/next",
		httpmock.NewStringResponder(200, `{"success":"1 item appended"}`))
	httpmock.RegisterResponder("GET", test_baseURL+"/queue/q1/next",
		httpmock.NewStringResponder(200, `{"id_medium":"m1"}`))

	c, err := newTestClient()
	require.NoError(t, err)

	require.NoError(t, c.Enqueue("q1", map[string]string{"id_medium": "m1"}))

	item, err := c.Dequeue("q1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id_medium":"m1"}`, string(item))
}

func TestListOptions_Query(t *testing.T) {
	opts := &ListOptions{
		Limit:   10,
		Offset:  20,
		Order:   "-name",
		History: true,
		Filter:  map[string]string{"name": "demo"},
	}
	q := opts.query()
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "20", q.Get("offset"))
	assert.Equal(t, "-name", q.Get("order"))
	assert.Equal(t, "on", q.Get("history"))
	assert.Equal(t, "demo", q.Get("filter[name]"))

	var none *ListOptions
	assert.Nil(t, none.query())
}
