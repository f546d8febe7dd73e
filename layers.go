package camomile

// CreateLayer adds an annotation layer to a corpus, optionally seeded with
// annotations.
func (c *Client) CreateLayer(corpusID string, layer LayerCreate) (Layer, error) {
	var created Layer
	if err := layer.Validate(); err != nil {
		return created, err
	}
	err := c.post("corpus/"+corpusID+"/layer", &layer, &created)
	return created, err
}

// CorpusLayers lists the layers of a corpus.
func (c *Client) CorpusLayers(corpusID string, opts *ListOptions) ([]Layer, error) {
	var layers []Layer
	err := c.get("corpus/"+corpusID+"/layer", opts.query(), &layers)
	return layers, err
}

func (c *Client) Layer(id string) (Layer, error) {
	var l Layer
	err := c.get("layer/"+id, nil, &l)
	return l, err
}

func (c *Client) UpdateLayer(id string, update LayerUpdate) (Layer, error) {
	var l Layer
	err := c.put("layer/"+id, &update, &l)
	return l, err
}

// DeleteLayer removes the layer and its annotations.
func (c *Client) DeleteLayer(id string) error {
	return c.del("layer/"+id, nil)
}
