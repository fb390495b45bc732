package dto

import "strings"

// StartIntake opens a wizard session. ClientID is set when adding an order to
// an existing client, which skips the client step entirely.
type StartIntake struct {
	ClientID string `json:"client_id" binding:"omitempty,uuid"`
}

// ClientDraft is the in-memory client under construction by the wizard; ID is
// only present when the session was started for an existing client.
type ClientDraft struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// ItemDraftDto is one accumulated (or in-progress) item draft as reported back
// to the caller. ImagePreview is a data URL renderable without any further
// round trip; the compressed payload itself never leaves the session.
type ItemDraftDto struct {
	ItemFields
	HasImage     bool   `json:"has_image"`
	ImagePreview string `json:"image_preview,omitempty"`
}

type IntakeSessionDto struct {
	ID     string         `json:"id"`
	State  string         `json:"state"`
	Client *ClientDraft   `json:"client,omitempty"`
	Items  []ItemDraftDto `json:"items"`
	Draft  *ItemDraftDto  `json:"draft,omitempty"`
}

// SaveResult reports the outcome of the final persist step.
type SaveResult struct {
	ClientID   string `json:"client_id"`
	ItemCount  int    `json:"item_count"`
	ImageCount int    `json:"image_count"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
