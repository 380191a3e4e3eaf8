package entity

import "time"

// Client is a converted lead. It shares the lead's identity; Quotes and
// Timeline are attached on read from the store's own collections.
type Client struct {
	Lead
	Services    []string        `json:"services"`
	Quotes      []Quote         `json:"quotes"`
	Timeline    []TimelineEvent `json:"timeline"`
	ConvertedAt time.Time       `json:"convertedAt"`
}

type ClientUpdate struct {
	LeadUpdate
	Services *[]string `json:"services,omitempty"`
}

func (u ClientUpdate) Apply(c *Client) {
	u.LeadUpdate.Apply(&c.Lead)
	if u.Services != nil {
		c.Services = append([]string{}, (*u.Services)...)
	}
}
