package camomile

func (c *Client) CreateGroup(group GroupCreate) (Group, error) {
	var created Group
	if err := group.Validate(); err != nil {
		return created, err
	}
	err := c.post("group", &group, &created)
	return created, err
}

func (c *Client) Groups(opts *ListOptions) ([]Group, error) {
	var groups []Group
	err := c.get("group", opts.query(), &groups)
	return groups, err
}

func (c *Client) Group(id string) (Group, error) {
	var g Group
	err := c.get("group/"+id, nil, &g)
	return g, err
}

func (c *Client) UpdateGroup(id string, update GroupUpdate) (Group, error) {
	var g Group
	err := c.put("group/"+id, &update, &g)
	return g, err
}

func (c *Client) DeleteGroup(id string) error {
	return c.del("group/"+id, nil)
}

// AddGroupUser adds a user to the group and returns the updated group.
func (c *Client) AddGroupUser(groupID, userID string) (Group, error) {
	var g Group
	err := c.put("group/"+groupID+"/user/"+userID, nil, &g)
	return g, err
}

// RemoveGroupUser removes a user from the group and returns the updated group.
func (c *Client) RemoveGroupUser(groupID, userID string) (Group, error) {
	var g Group
	err := c.del("group/"+groupID+"/user/"+userID, &g)
	return g, err
}
