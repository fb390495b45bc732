package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a tailoring customer record. The ID is generated on creation and
// never changes afterwards.
type Client struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClient(fullName, phone, location string) *Client {
	return &Client{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Phone:     phone,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}
}
