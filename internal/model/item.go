package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Measurements holds the per-garment measurement set. Every field is optional:
// nil means the measurement does not apply to that garment type. Values are
// kept as free-form strings the way the intake form captures them ("32",
// "32.5", "across back").
type Measurements struct {
	// Upper body
	Bust         *string `json:"bust,omitempty" form:"bust"`
	Chest        *string `json:"chest,omitempty" form:"chest"`
	Shoulder     *string `json:"shoulder,omitempty" form:"shoulder"`
	ArmHole      *string `json:"arm_hole,omitempty" form:"arm_hole"`
	SleeveLength *string `json:"sleeve_length,omitempty" form:"sleeve_length"`
	SleeveWidth  *string `json:"sleeve_width,omitempty" form:"sleeve_width"`
	Collar       *string `json:"collar,omitempty" form:"collar"`
	Neckline     *string `json:"neckline,omitempty" form:"neckline"`
	// Lower body
	Waist        *string `json:"waist,omitempty" form:"waist"`
	SkirtWaist   *string `json:"skirt_waist,omitempty" form:"skirt_waist"`
	TrouserWaist *string `json:"trouser_waist,omitempty" form:"trouser_waist"`
	Hip          *string `json:"hip,omitempty" form:"hip"`
	Seat         *string `json:"seat,omitempty" form:"seat"`
	Crotch       *string `json:"crotch,omitempty" form:"crotch"`
	Bottom       *string `json:"bottom,omitempty" form:"bottom"`
	Cuff         *string `json:"cuff,omitempty" form:"cuff"`
	// Lengths
	ShirtLength       *string `json:"shirt_length,omitempty" form:"shirt_length"`
	BlouseLength      *string `json:"blouse_length,omitempty" form:"blouse_length"`
	SkirtLength       *string `json:"skirt_length,omitempty" form:"skirt_length"`
	TrouserLength     *string `json:"trouser_length,omitempty" form:"trouser_length"`
	ShortsLength      *string `json:"shorts_length,omitempty" form:"shorts_length"`
	JacketLength      *string `json:"jacket_length,omitempty" form:"jacket_length"`
	KaftanDressLength *string `json:"kaftan_dress_length,omitempty" form:"kaftan_dress_length"`
	// Full body
	Dress    *string `json:"dress,omitempty" form:"dress"`
	Jumpsuit *string `json:"jumpsuit,omitempty" form:"jumpsuit"`
}

// Values returns every measurement field in declaration order. Callers that
// need the matching column names use database.ItemMeasurementColumns, which
// must stay in the same order.
func (m *Measurements) Values() []*string {
	return []*string{
		m.Bust, m.Chest, m.Shoulder, m.ArmHole, m.SleeveLength, m.SleeveWidth, m.Collar, m.Neckline,
		m.Waist, m.SkirtWaist, m.TrouserWaist, m.Hip, m.Seat, m.Crotch, m.Bottom, m.Cuff,
		m.ShirtLength, m.BlouseLength, m.SkirtLength, m.TrouserLength, m.ShortsLength, m.JacketLength, m.KaftanDressLength,
		m.Dress, m.Jumpsuit,
	}
}

// IsEmpty reports whether no measurement carries a usable value. Whitespace
// only entries count as empty.
func (m *Measurements) IsEmpty() bool {
	for _, v := range m.Values() {
		if v != nil && strings.TrimSpace(*v) != "" {
			return false
		}
	}
	return true
}

// Item is one garment order owned by a client. ImageURL stays nil until the
// photo upload for the item succeeds.
type Item struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Measurements
	ExtraDetails *string   `json:"extra_details,omitempty" form:"extra_details"`
	ImageURL     *string   `json:"image_url,omitempty" form:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewItem(clientID string, measurements Measurements, extraDetails, imageURL *string) *Item {
	return &Item{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		Measurements: measurements,
		ExtraDetails: extraDetails,
		ImageURL:     imageURL,
		CreatedAt:    time.Now().UTC(),
	}
}
