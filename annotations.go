package camomile

import "net/url"

// CreateAnnotation adds one annotation to a layer.
func (c *Client) CreateAnnotation(layerID string, annotation AnnotationCreate) (Annotation, error) {
	var created Annotation
	err := c.post("layer/"+layerID+"/annotation", &annotation, &created)
	return created, err
}

// CreateAnnotations adds a batch of annotations to a layer in one request.
func (c *Client) CreateAnnotations(layerID string, annotations []AnnotationCreate) ([]Annotation, error) {
	var created []Annotation
	err := c.post("layer/"+layerID+"/annotation", annotations, &created)
	return created, err
}

// LayerAnnotations lists the annotations of a layer. mediumID narrows the
// result to one medium; pass "" for all.
func (c *Client) LayerAnnotations(layerID, mediumID string, opts *ListOptions) ([]Annotation, error) {
	q := opts.query()
	if mediumID != "" {
		if q == nil {
			q = url.Values{}
		}
		q.Set("medium", mediumID)
	}
	var annotations []Annotation
	err := c.get("layer/"+layerID+"/annotation", q, &annotations)
	return annotations, err
}

func (c *Client) Annotation(id string) (Annotation, error) {
	var a Annotation
	err := c.get("annotation/"+id, nil, &a)
	return a, err
}

func (c *Client) UpdateAnnotation(id string, update AnnotationUpdate) (Annotation, error) {
	var a Annotation
	err := c.put("annotation/"+id, &update, &a)
	return a, err
}

func (c *Client) DeleteAnnotation(id string) error {
	return c.del("annotation/"+id, nil)
}
