package api

import "encoding/json"

// Queue is a server-side FIFO of arbitrary work items, typically annotation
// tasks handed out to annotators.
type Queue struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Description interface{}       `json:"description,omitempty"`
	List        []json.RawMessage `json:"list,omitempty"`
}

type QueueCreate struct {
	Name        string      `json:"name" validate:"required"`
	Description interface{} `json:"description,omitempty"`
}

type QueueUpdate struct {
	Name        string        `json:"name,omitempty"`
	Description interface{}   `json:"description,omitempty"`
	List        []interface{} `json:"list,omitempty"`
}

func (q *QueueCreate) Validate() error {
	return validate.Struct(q)
}
