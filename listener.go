package camomile

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/camomile-project/camomile-go/api"
	"github.com/camomile-project/camomile-go/util"
	"github.com/launchdarkly/eventsource"
)

// EventHandler receives the "event" sub-field of one push message, verbatim
// and undecoded. Handlers run on the channel's reader goroutine: a slow
// handler delays delivery of every subsequent event, so hand off long work.
type EventHandler func(payload json.RawMessage)

// EventChannel is the push-notification connection of one session. It is
// created lazily by Client.Events; the underlying stream is only established
// by the first Watch call (or an explicit Open). At most one channel per
// session.
type EventChannel struct {
	client *Client
	table  dispatchTable

	mu        sync.Mutex
	channelID string
	stream    *eventsource.Stream
	cancel    context.CancelFunc
}

func newEventChannel(c *Client) *EventChannel {
	return &EventChannel{
		client: c,
		table:  dispatchTable{handlers: make(map[string]EventHandler)},
	}
}

// Open establishes the push channel now instead of on the first Watch call.
// Opening an already-open channel is a no-op.
func (e *EventChannel) Open() error {
	_, err := e.ensureOpen()
	return err
}

// ChannelID returns the server-assigned channel identifier, or "" while the
// channel is closed.
func (e *EventChannel) ChannelID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.channelID
}

// ensureOpen opens the channel and starts the reader if they are not already
// up. Safe to call from concurrent Watch calls; only the first one opens.
func (e *EventChannel) ensureOpen() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.channelID != "" {
		return e.channelID, nil
	}

	var handle api.ChannelHandle
	if err := e.client.post("listen", nil, &handle); err != nil {
		return "", err
	}
	if handle.ChannelID == "" {
		return "", util.Errorf("listen: server did not assign a channel id")
	}

	stream, err := eventsource.SubscribeWithURL(
		e.client.cfg.BasePath+"/listen/"+handle.ChannelID,
		eventsource.StreamOptionHTTPClient(e.streamHTTPClient()),
		eventsource.StreamOptionCanRetryFirstConnection(e.client.options.RequestTimeout),
		eventsource.StreamOptionErrorHandler(func(err error) eventsource.StreamErrorHandlerResult {
			// The channel is bound to one server-side stream; when it dies the
			// caller reconnects through a new Watch call rather than the
			// stream retrying on its own.
			util.Debugf("listen: stream error: %v", err)
			return eventsource.StreamErrorHandlerResult{CloseNow: true}
		}),
	)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.channelID = handle.ChannelID
	e.stream = stream
	e.cancel = cancel
	go e.receive(ctx, stream.Events)

	util.Debugf("listen: channel %s open", handle.ChannelID)
	return e.channelID, nil
}

// The push stream must not inherit the request timeout: it is expected to
// stay open indefinitely. It shares the cookie jar so it rides the same
// authenticated session.
func (e *EventChannel) streamHTTPClient() *http.Client {
	return &http.Client{Jar: e.client.cfg.HTTPClient.Jar}
}

// receive is the reader goroutine: it drains the stream until the channel is
// closed or the server ends the stream.
func (e *EventChannel) receive(ctx context.Context, events <-chan eventsource.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				util.Debugf("listen: push stream ended")
				e.streamEnded()
				return
			}
			e.dispatch(event)
		}
	}
}

// dispatch routes one push message to its registered handler. Messages for
// unwatched resources are dropped without comment: the server multiplexes
// other subscriptions over the same channel infrastructure.
func (e *EventChannel) dispatch(event eventsource.Event) {
	handler := e.table.lookupName(event.Event())
	if handler == nil {
		return
	}
	var message api.EventMessage
	if err := json.Unmarshal([]byte(event.Data()), &message); err != nil {
		util.Debugf("listen: undecodable message for %s: %v", event.Event(), err)
		return
	}
	invokeHandler(event.Event(), handler, message.Event)
}

// A panicking handler must not kill the reader.
func invokeHandler(name string, handler EventHandler, payload json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			_ = util.Errorf("listen: handler for %s panicked: %v", name, r)
		}
	}()
	handler(payload)
}

// streamEnded resets the connection state after a server-side stream close so
// a later Watch call can open a fresh channel. Registrations are kept; the
// server forgets the matching subscriptions with the dead channel, so they
// only become live again once re-watched.
func (e *EventChannel) streamEnded() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.stream = nil
	e.channelID = ""
}

// Close stops the reader, closes the stream and drops every registration.
// The next session starts with an empty table. Called by Logout; safe to call
// twice.
func (e *EventChannel) Close() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.stream != nil {
		// Also unblocks a read in progress, so the reader does not linger
		// until the next message.
		e.stream.Close()
		e.stream = nil
	}
	e.channelID = ""
	e.mu.Unlock()

	e.table.clear()
}

// dispatchTable routes event names ("kind:id") to handlers. Watch/Unwatch
// mutate it from the caller's goroutine while the reader looks names up, so
// every access takes the lock; handlers themselves are invoked outside it.
type dispatchTable struct {
	mu       sync.Mutex
	handlers map[string]EventHandler
}

func eventName(kind, id string) string {
	return kind + ":" + id
}

// register stores the handler, silently replacing any previous registration
// for the same resource.
func (t *dispatchTable) register(kind, id string, handler EventHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[eventName(kind, id)] = handler
}

// unregister is a no-op for unknown keys.
func (t *dispatchTable) unregister(kind, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.handlers, eventName(kind, id))
}

func (t *dispatchTable) lookup(kind, id string) EventHandler {
	return t.lookupName(eventName(kind, id))
}

func (t *dispatchTable) lookupName(name string) EventHandler {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handlers[name]
}

func (t *dispatchTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = make(map[string]EventHandler)
}
