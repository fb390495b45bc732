package dto

import (
	"time"

	"github.com/sonofaryeetey/tailorflow/internal/model"
)

type ItemDto struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	model.Measurements
	ExtraDetails *string `json:"extra_details,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ItemFields is the writable portion of an item: the measurement set plus the
// free-text notes. It doubles as the intake draft payload (JSON) and the edit
// form payload (multipart form values).
type ItemFields struct {
	model.Measurements
	ExtraDetails *string `json:"extra_details,omitempty" form:"extra_details"`
}

// HasData reports whether any field carries a non-blank value. Used by the
// review transition to decide whether an unsaved draft should be kept.
func (f *ItemFields) HasData() bool {
	if !f.Measurements.IsEmpty() {
		return true
	}
	return f.ExtraDetails != nil && !isBlank(*f.ExtraDetails)
}

func NewItemDto(it model.Item) ItemDto {
	return ItemDto{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Measurements: it.Measurements,
		ExtraDetails: it.ExtraDetails,
		ImageURL:     it.ImageURL,
		CreatedAt:    it.CreatedAt.Format(time.RFC3339),
	}
}

func NewItemDtoList(items []model.Item) []ItemDto {
	out := make([]ItemDto, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemDto(it))
	}
	return out
}
