package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNegativeLoad is returned when a carrier declares a negative maximum load.
var ErrNegativeLoad = fmt.Errorf("%w: max load cannot be negative", ErrValidation)

// Carrier is the delivery profile of a user with the carrier role.
type Carrier struct {
	UserID       uuid.UUID `json:"user_id"`
	VehicleType  string    `json:"vehicle_type"`
	LicensePlate string    `json:"license_plate"`
	CoverageArea string    `json:"coverage_area"`
	MaxLoadKg    int       `json:"max_load_kg"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCarrier creates the empty carrier profile of a freshly registered carrier.
func NewCarrier(user *User) *Carrier {
	return &Carrier{
		UserID:    user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Validate checks if the Carrier has valid data.
func (c *Carrier) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if c.MaxLoadKg < 0 {
		return ErrNegativeLoad
	}
	return nil
}

// CarrierPatch is a partial update of a carrier profile; nil fields are left untouched.
type CarrierPatch struct {
	VehicleType  *string `json:"vehicle_type,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	CoverageArea *string `json:"coverage_area,omitempty"`
	MaxLoadKg    *int    `json:"max_load_kg,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p CarrierPatch) IsEmpty() bool {
	return p.VehicleType == nil && p.LicensePlate == nil && p.CoverageArea == nil && p.MaxLoadKg == nil
}

// ApplyTo merges the present fields onto c.
func (p CarrierPatch) ApplyTo(c *Carrier) {
	setString(&c.VehicleType, p.VehicleType)
	setString(&c.LicensePlate, p.LicensePlate)
	setString(&c.CoverageArea, p.CoverageArea)
	if p.MaxLoadKg != nil {
		c.MaxLoadKg = *p.MaxLoadKg
	}
}
