package camomile

import (
	"errors"

	"github.com/camomile-project/camomile-go/api"
)

// Watchable resource kinds, as they appear in event names.
const (
	kindCorpus = "corpus"
	kindLayer  = "layer"
	kindMedium = "medium"
	kindQueue  = "queue"
)

var errNoChannel = errors.New("no event channel open")

// WatchCorpus subscribes to mutations of a corpus: add_medium, remove_medium,
// add_layer, remove_layer, and update carrying the changed attribute names.
func (e *EventChannel) WatchCorpus(corpusID string, handler EventHandler) (*WatchAck, error) {
	return e.watch(kindCorpus, corpusID, handler)
}

// WatchLayer subscribes to mutations of a layer: add_annotation,
// remove_annotation, and update carrying the changed attribute names.
func (e *EventChannel) WatchLayer(layerID string, handler EventHandler) (*WatchAck, error) {
	return e.watch(kindLayer, layerID, handler)
}

// WatchMedium subscribes to updates of a medium.
func (e *EventChannel) WatchMedium(mediumID string, handler EventHandler) (*WatchAck, error) {
	return e.watch(kindMedium, mediumID, handler)
}

// WatchQueue subscribes to push_item/pop_item events of a queue; the payload
// is the new queue length.
func (e *EventChannel) WatchQueue(queueID string, handler EventHandler) (*WatchAck, error) {
	return e.watch(kindQueue, queueID, handler)
}

func (e *EventChannel) UnwatchCorpus(corpusID string) (*WatchAck, error) {
	return e.unwatch(kindCorpus, corpusID)
}

func (e *EventChannel) UnwatchLayer(layerID string) (*WatchAck, error) {
	return e.unwatch(kindLayer, layerID)
}

func (e *EventChannel) UnwatchMedium(mediumID string) (*WatchAck, error) {
	return e.unwatch(kindMedium, mediumID)
}

func (e *EventChannel) UnwatchQueue(queueID string) (*WatchAck, error) {
	return e.unwatch(kindQueue, queueID)
}

// watch opens the channel if needed, subscribes it server-side and, once the
// server confirms with an "event" field, registers the handler. An
// acknowledgement without that field leaves the table untouched; callers who
// care can check ack.Subscribed().
func (e *EventChannel) watch(kind, id string, handler EventHandler) (*WatchAck, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	if id == "" {
		return nil, errors.New("resource id is required")
	}

	channelID, err := e.ensureOpen()
	if err != nil {
		return nil, err
	}

	var ack api.WatchAck
	if err := e.client.put("listen/"+channelID+"/"+kind+"/"+id, nil, &ack); err != nil {
		return nil, err
	}
	if ack.Subscribed() {
		e.table.register(kind, id, handler)
	}
	return &ack, nil
}

// unwatch unsubscribes server-side and, once the server confirms with a
// "success" field, drops the registration. Unwatching a resource that was
// never watched is tolerated.
func (e *EventChannel) unwatch(kind, id string) (*WatchAck, error) {
	if id == "" {
		return nil, errors.New("resource id is required")
	}

	e.mu.Lock()
	channelID := e.channelID
	e.mu.Unlock()
	if channelID == "" {
		return nil, errNoChannel
	}

	var ack api.WatchAck
	if err := e.client.del("listen/"+channelID+"/"+kind+"/"+id, &ack); err != nil {
		return nil, err
	}
	if ack.Unsubscribed() {
		e.table.unregister(kind, id)
	}
	return &ack, nil
}
