package camomile

// CreateUser registers a new account. Requires admin rights server-side.
func (c *Client) CreateUser(user UserCreate) (User, error) {
	var created User
	if err := user.Validate(); err != nil {
		return created, err
	}
	err := c.post("user", &user, &created)
	return created, err
}

func (c *Client) Users(opts *ListOptions) ([]User, error) {
	var users []User
	err := c.get("user", opts.query(), &users)
	return users, err
}

func (c *Client) User(id string) (User, error) {
	var u User
	err := c.get("user/"+id, nil, &u)
	return u, err
}

func (c *Client) UpdateUser(id string, update UserUpdate) (User, error) {
	var u User
	if err := update.Validate(); err != nil {
		return u, err
	}
	err := c.put("user/"+id, &update, &u)
	return u, err
}

func (c *Client) DeleteUser(id string) error {
	return c.del("user/"+id, nil)
}

// UserGroups returns the identifiers of the groups the user belongs to.
func (c *Client) UserGroups(id string) ([]string, error) {
	var groups []string
	err := c.get("user/"+id+"/group", nil, &groups)
	return groups, err
}
