package camomile

// CreateMedium adds a medium to a corpus.
func (c *Client) CreateMedium(corpusID string, medium MediumCreate) (Medium, error) {
	var created Medium
	if err := medium.Validate(); err != nil {
		return created, err
	}
	err := c.post("corpus/"+corpusID+"/medium", &medium, &created)
	return created, err
}

// CorpusMedia lists the media of a corpus.
func (c *Client) CorpusMedia(corpusID string, opts *ListOptions) ([]Medium, error) {
	var media []Medium
	err := c.get("corpus/"+corpusID+"/medium", opts.query(), &media)
	return media, err
}

func (c *Client) Medium(id string) (Medium, error) {
	var m Medium
	err := c.get("medium/"+id, nil, &m)
	return m, err
}

func (c *Client) UpdateMedium(id string, update MediumUpdate) (Medium, error) {
	var m Medium
	if err := update.Validate(); err != nil {
		return m, err
	}
	err := c.put("medium/"+id, &update, &m)
	return m, err
}

func (c *Client) DeleteMedium(id string) error {
	return c.del("medium/"+id, nil)
}
