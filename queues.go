package camomile

import "encoding/json"

func (c *Client) CreateQueue(queue QueueCreate) (Queue, error) {
	var created Queue
	if err := queue.Validate(); err != nil {
		return created, err
	}
	err := c.post("queue", &queue, &created)
	return created, err
}

func (c *Client) Queues(opts *ListOptions) ([]Queue, error) {
	var queues []Queue
	err := c.get("queue", opts.query(), &queues)
	return queues, err
}

func (c *Client) Queue(id string) (Queue, error) {
	var q Queue
	err := c.get("queue/"+id, nil, &q)
	return q, err
}

func (c *Client) UpdateQueue(id string, update QueueUpdate) (Queue, error) {
	var q Queue
	err := c.put("queue/"+id, &update, &q)
	return q, err
}

func (c *Client) DeleteQueue(id string) error {
	return c.del("queue/"+id, nil)
}

// Enqueue appends items to the tail of the queue.
func (c *Client) Enqueue(id string, items ...interface{}) error {
	return c.put("queue/"+id+"/next", items, nil)
}

// Dequeue pops the head of the queue and returns it undecoded. An empty queue
// surfaces as an *APIError from the server.
func (c *Client) Dequeue(id string) (json.RawMessage, error) {
	var item json.RawMessage
	err := c.get("queue/"+id+"/next", nil, &item)
	return item, err
}
