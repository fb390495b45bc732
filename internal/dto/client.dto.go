package dto

import (
	"time"

	"github.com/sonofaryeetey/tailorflow/internal/model"
)

type ClientDto struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	CreatedAt string `json:"created_at"`
}

// CreateClient carries the client intake fields. All three are required and
// may not be blank (whitespace-only values are rejected by the notblank rule
// registered in the router).
type CreateClient struct {
	FullName string `json:"full_name" binding:"required,notblank"`
	Phone    string `json:"phone" binding:"required,notblank"`
	Location string `json:"location" binding:"required,notblank"`
}

func NewClientDto(c model.Client) ClientDto {
	return ClientDto{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Location:  c.Location,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
