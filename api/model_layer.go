package api

// Layer is one annotation layer of a corpus. fragment_type and data_type
// describe the shape of the annotations it holds; the server stores them
// opaquely and so does the client.
type Layer struct {
	ID           string      `json:"_id"`
	IDCorpus     string      `json:"id_corpus,omitempty"`
	Name         string      `json:"name"`
	FragmentType interface{} `json:"fragment_type,omitempty"`
	DataType     interface{} `json:"data_type,omitempty"`
	Description  interface{} `json:"description,omitempty"`
}

type LayerCreate struct {
	Name         string      `json:"name" validate:"required"`
	FragmentType interface{} `json:"fragment_type,omitempty"`
	DataType     interface{} `json:"data_type,omitempty"`
	Description  interface{} `json:"description,omitempty"`
	// Annotations optionally seeds the layer in the same request.
	Annotations []AnnotationCreate `json:"annotations,omitempty"`
}

type LayerUpdate struct {
	Name         string      `json:"name,omitempty"`
	FragmentType interface{} `json:"fragment_type,omitempty"`
	DataType     interface{} `json:"data_type,omitempty"`
	Description  interface{} `json:"description,omitempty"`
}

func (l *LayerCreate) Validate() error {
	return validate.Struct(l)
}
