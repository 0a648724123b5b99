package domain

import "time"

// Hobby is a marketplace offer authored by a business account.
type Hobby struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slogan      string    `json:"slogan,omitempty"`
	Intro       string    `json:"intro,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Creator     string    `json:"creator"`
	ImageKey    string    `json:"image_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy reports whether username authored the hobby.
func (h *Hobby) OwnedBy(username string) bool {
	return h.Creator != "" && h.Creator == username
}
