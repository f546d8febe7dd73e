package api

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account on the annotation server.
type User struct {
	ID          string      `json:"_id"`
	Username    string      `json:"username"`
	Role        string      `json:"role,omitempty"`
	Affiliation string      `json:"affiliation,omitempty"`
	Description interface{} `json:"description,omitempty"`
}

type UserCreate struct {
	Username    string      `json:"username" validate:"required"`
	Password    string      `json:"password" validate:"required"`
	Role        string      `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	Affiliation string      `json:"affiliation,omitempty"`
	Description interface{} `json:"description,omitempty"`
}

// UserUpdate carries the mutable attributes of a user. Zero-valued fields are
// left untouched server-side.
type UserUpdate struct {
	Password    string      `json:"password,omitempty"`
	Role        string      `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	Affiliation string      `json:"affiliation,omitempty"`
	Description interface{} `json:"description,omitempty"`
}

func (u *UserCreate) Validate() error {
	return validate.Struct(u)
}

func (u *UserUpdate) Validate() error {
	return validate.Struct(u)
}
