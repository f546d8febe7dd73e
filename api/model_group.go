package api

// Group is a named set of users sharing access rights.
type Group struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description interface{} `json:"description,omitempty"`
	Users       []string    `json:"users,omitempty"`
}

type GroupCreate struct {
	Name        string      `json:"name" validate:"required"`
	Description interface{} `json:"description,omitempty"`
}

type GroupUpdate struct {
	Description interface{} `json:"description,omitempty"`
}

func (g *GroupCreate) Validate() error {
	return validate.Struct(g)
}
