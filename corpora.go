package camomile

// CreateCorpus creates a corpus owned by the logged-in user.
func (c *Client) CreateCorpus(corpus CorpusCreate) (Corpus, error) {
	var created Corpus
	if err := corpus.Validate(); err != nil {
		return created, err
	}
	err := c.post("corpus", &corpus, &created)
	return created, err
}

// Corpora lists the corpora the logged-in user can read.
func (c *Client) Corpora(opts *ListOptions) ([]Corpus, error) {
	var corpora []Corpus
	err := c.get("corpus", opts.query(), &corpora)
	return corpora, err
}

func (c *Client) Corpus(id string) (Corpus, error) {
	var corpus Corpus
	err := c.get("corpus/"+id, nil, &corpus)
	return corpus, err
}

func (c *Client) UpdateCorpus(id string, update CorpusUpdate) (Corpus, error) {
	var corpus Corpus
	err := c.put("corpus/"+id, &update, &corpus)
	return corpus, err
}

// DeleteCorpus removes the corpus and everything it contains.
func (c *Client) DeleteCorpus(id string) error {
	return c.del("corpus/"+id, nil)
}
