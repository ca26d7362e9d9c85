package entities

import "time"

// Client is a customer the contractor bids work for.
//
// Storage model (DynamoDB):
//   - PK: id

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyInfo is the contractor's own letterhead data used on estimate
// documents.

type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	License string `json:"license"`
	Logo    string `json:"logo,omitempty"`
}
