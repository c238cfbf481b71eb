package domain

type Museum struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Country     string `json:"country"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
