package models

// Client represents a client of the firm as stored in the clients
// collection file.
type Client struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Contact string   `json:"contact"`
	Cases   []string `json:"cases"`
}

// ClientCollection is the on-disk shape of the clients collection file.
type ClientCollection struct {
	Clients []Client `json:"clients"`
}

// HasCase reports whether the client is linked to the given case ID.
func (c *Client) HasCase(caseID string) bool {
	for _, id := range c.Cases {
		if id == caseID {
			return true
		}
	}
	return false
}

// UnknownClient is the placeholder used on invoices when no client
// references the billed case.
func UnknownClient() Client {
	return Client{ID: "Unknown", Name: "Unknown Client", Contact: "", Cases: []string{}}
}
