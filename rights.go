package camomile

// Access rights live on corpora, layers and queues. The server resolves group
// rights and user rights to the strongest applicable one.

func (c *Client) CorpusPermissions(id string) (Permissions, error) {
	return c.permissions("corpus", id)
}

func (c *Client) LayerPermissions(id string) (Permissions, error) {
	return c.permissions("layer", id)
}

func (c *Client) QueuePermissions(id string) (Permissions, error) {
	return c.permissions("queue", id)
}

func (c *Client) SetCorpusUserRight(corpusID, userID string, right Right) (Permissions, error) {
	return c.setRight("corpus", corpusID, "user", userID, right)
}

func (c *Client) SetCorpusGroupRight(corpusID, groupID string, right Right) (Permissions, error) {
	return c.setRight("corpus", corpusID, "group", groupID, right)
}

func (c *Client) RemoveCorpusUserRight(corpusID, userID string) (Permissions, error) {
	return c.removeRight("corpus", corpusID, "user", userID)
}

func (c *Client) RemoveCorpusGroupRight(corpusID, groupID string) (Permissions, error) {
	return c.removeRight("corpus", corpusID, "group", groupID)
}

func (c *Client) SetLayerUserRight(layerID, userID string, right Right) (Permissions, error) {
	return c.setRight("layer", layerID, "user", userID, right)
}

func (c *Client) SetLayerGroupRight(layerID, groupID string, right Right) (Permissions, error) {
	return c.setRight("layer", layerID, "group", groupID, right)
}

func (c *Client) RemoveLayerUserRight(layerID, userID string) (Permissions, error) {
	return c.removeRight("layer", layerID, "user", userID)
}

func (c *Client) RemoveLayerGroupRight(layerID, groupID string) (Permissions, error) {
	return c.removeRight("layer", layerID, "group", groupID)
}

func (c *Client) SetQueueUserRight(queueID, userID string, right Right) (Permissions, error) {
	return c.setRight("queue", queueID, "user", userID, right)
}

func (c *Client) SetQueueGroupRight(queueID, groupID string, right Right) (Permissions, error) {
	return c.setRight("queue", queueID, "group", groupID, right)
}

func (c *Client) RemoveQueueUserRight(queueID, userID string) (Permissions, error) {
	return c.removeRight("queue", queueID, "user", userID)
}

func (c *Client) RemoveQueueGroupRight(queueID, groupID string) (Permissions, error) {
	return c.removeRight("queue", queueID, "group", groupID)
}

func (c *Client) permissions(kind, id string) (Permissions, error) {
	var p Permissions
	err := c.get(kind+"/"+id+"/permissions", nil, &p)
	return p, err
}

func (c *Client) setRight(kind, id, principal, principalID string, right Right) (Permissions, error) {
	var p Permissions
	body := map[string]Right{"right": right}
	err := c.put(kind+"/"+id+"/"+principal+"/"+principalID, body, &p)
	return p, err
}

func (c *Client) removeRight(kind, id, principal, principalID string) (Permissions, error) {
	var p Permissions
	err := c.del(kind+"/"+id+"/"+principal+"/"+principalID, &p)
	return p, err
}
