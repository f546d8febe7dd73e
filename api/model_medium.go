package api

// Medium is one audio/video document inside a corpus.
type Medium struct {
	ID          string      `json:"_id"`
	IDCorpus    string      `json:"id_corpus,omitempty"`
	Name        string      `json:"name"`
	URL         string      `json:"url,omitempty"`
	Description interface{} `json:"description,omitempty"`
}

type MediumCreate struct {
	Name        string      `json:"name" validate:"required"`
	URL         string      `json:"url,omitempty" validate:"omitempty,url"`
	Description interface{} `json:"description,omitempty"`
}

type MediumUpdate struct {
	Name        string      `json:"name,omitempty"`
	URL         string      `json:"url,omitempty" validate:"omitempty,url"`
	Description interface{} `json:"description,omitempty"`
}

func (m *MediumCreate) Validate() error {
	return validate.Struct(m)
}

func (m *MediumUpdate) Validate() error {
	return validate.Struct(m)
}
