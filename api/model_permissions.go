package api

// Right is an access level on a corpus, layer or queue.
type Right int

const (
	RightRead  Right = 1
	RightWrite Right = 2
	RightAdmin Right = 3
)

// Permissions lists per-user and per-group rights on one resource, keyed by
// user/group identifier.
type Permissions struct {
	Users  map[string]Right `json:"users,omitempty"`
	Groups map[string]Right `json:"groups,omitempty"`
}
