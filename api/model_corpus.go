package api

// Corpus is the top-level container: a collection of media annotated by
// layers.
type Corpus struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description interface{} `json:"description,omitempty"`
}

type CorpusCreate struct {
	Name        string      `json:"name" validate:"required"`
	Description interface{} `json:"description,omitempty"`
}

type CorpusUpdate struct {
	Name        string      `json:"name,omitempty"`
	Description interface{} `json:"description,omitempty"`
}

func (c *CorpusCreate) Validate() error {
	return validate.Struct(c)
}
