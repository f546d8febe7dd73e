package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_Validate(t *testing.T) {
	ok := UserCreate{Username: "ann", Password: "secret", Role: RoleAdmin}
	assert.NoError(t, ok.Validate())

	missing := UserCreate{Password: "secret"}
	assert.Error(t, missing.Validate())

	badRole := UserCreate{Username: "ann", Password: "secret", Role: "root"}
	assert.Error(t, badRole.Validate())
}

func TestMediumCreate_Validate(t *testing.T) {
	ok := MediumCreate{Name: "episode1", URL: "https://media.example.org/episode1.mp4"}
	assert.NoError(t, ok.Validate())

	badURL := MediumCreate{Name: "episode1", URL: "not a url"}
	assert.Error(t, badURL.Validate())
}

func TestAnnotation_DecodeFragmentAndData(t *testing.T) {
	raw := `{
		"_id": "a1",
		"id_layer": "l1",
		"id_medium": "m1",
		"fragment": {"start": 12.5, "end": "13.75"},
		"data": {"speaker": "alice"}
	}`
	var a Annotation
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "a1", a.ID)

	var fragment struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	}
	// "end" arrives as a string; decoding is weakly typed on purpose.
	require.NoError(t, a.DecodeFragment(&fragment))
	assert.Equal(t, 12.5, fragment.Start)
	assert.Equal(t, 13.75, fragment.End)

	var data struct {
		Speaker string `json:"speaker"`
	}
	require.NoError(t, a.DecodeData(&data))
	assert.Equal(t, "alice", data.Speaker)
}

func TestWatchAck_Markers(t *testing.T) {
	var subscribed WatchAck
	require.NoError(t, json.Unmarshal([]byte(`{"event":true}`), &subscribed))
	assert.True(t, subscribed.Subscribed())
	assert.False(t, subscribed.Unsubscribed())

	var unsubscribed WatchAck
	require.NoError(t, json.Unmarshal([]byte(`{"success":"done"}`), &unsubscribed))
	assert.False(t, unsubscribed.Subscribed())
	assert.True(t, unsubscribed.Unsubscribed())

	var empty WatchAck
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, empty.Subscribed())
	assert.False(t, empty.Unsubscribed())
}

func TestMetadataFile_Roundtrip(t *testing.T) {
	content := []byte{0x89, 0x50, 0x4e, 0x47}
	f := NewMetadataFile("thumbnail.png", content)
	assert.Equal(t, "file", f.Type)
	assert.Equal(t, "thumbnail.png", f.Filename)

	decoded, err := f.Content()
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestErrorResponse_Text(t *testing.T) {
	assert.Equal(t, "boom", ErrorResponse{Error: "boom"}.Text())
	assert.Equal(t, "oops", ErrorResponse{Message: "oops"}.Text())
	assert.Equal(t, "boom", ErrorResponse{Error: "boom", Message: "oops"}.Text())
	assert.Equal(t, "", ErrorResponse{}.Text())
}
