package model

import "time"

// Review is a guest review stored locally by the storefront. Ratings run
// from 1 to 5 stars.
type Review struct {
	ID        uint64    `json:"id"`
	UserID    string    `json:"userId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
