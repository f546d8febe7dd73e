package api

import "encoding/json"

// ChannelHandle is the response to opening a push channel.
type ChannelHandle struct {
	ChannelID string `json:"channel_id"`
}

// WatchAck is the raw acknowledgement to a subscribe or unsubscribe request.
// The server confirms a subscription by including an "event" field and an
// unsubscription by including a "success" field; both are kept verbatim so
// callers can inspect them.
type WatchAck struct {
	Event   json.RawMessage `json:"event,omitempty"`
	Success json.RawMessage `json:"success,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Subscribed reports whether the server confirmed the subscription.
func (a *WatchAck) Subscribed() bool {
	return len(a.Event) > 0
}

// Unsubscribed reports whether the server confirmed the unsubscription.
func (a *WatchAck) Unsubscribed() bool {
	return len(a.Success) > 0
}

// EventMessage is the data body of one push-stream message. Only the event
// sub-field is ever handed to callbacks; the rest of the body is ignored.
type EventMessage struct {
	Event json.RawMessage `json:"event"`
}
