package camomile

import (
	"fmt"
	"net/url"
)

// ListOptions renders pagination, ordering and attribute filters onto the
// query string of list routes. A nil *ListOptions means no constraint.
type ListOptions struct {
	Limit  int
	Offset int
	// Order is an attribute name, prefixed with "-" for descending.
	Order string
	// Filter matches resource attributes verbatim, e.g. {"name": "demo"}.
	Filter map[string]string
	// History asks the server to include the modification history.
	History bool
}

func (o *ListOptions) query() url.Values {
	if o == nil {
		return nil
	}
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", o.Offset))
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	if o.History {
		q.Set("history", "on")
	}
	for k, v := range o.Filter {
		q.Set("filter["+k+"]", v)
	}
	return q
}
