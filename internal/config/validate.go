package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.Digest.OutDir == "" {
		return fmt.Errorf("digest.out_dir must not be empty")
	}
	return nil
}

// Validate checks that every credential required to create a task card is
// present. Called by cmd/taskcard only; the digest job runs without Trello.
func (c TrelloConfig) Validate() error {
	switch {
	case c.Key == "":
		return fmt.Errorf("trello.key is required (TRELLO_KEY)")
	case c.Token == "":
		return fmt.Errorf("trello.token is required (TRELLO_TOKEN)")
	case c.ListID == "":
		return fmt.Errorf("trello.list_id is required (TRELLO_LIST_ID)")
	}
	return nil
}
