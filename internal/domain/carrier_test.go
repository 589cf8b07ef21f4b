package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewCarrier(t *testing.T) {
	user := &User{ID: uuid.New(), Role: RoleCarrier}
	c := NewCarrier(user)

	assert.Equal(t, user.ID, c.UserID)
	assert.Empty(t, c.VehicleType)
	assert.NoError(t, c.Validate())
}

func TestCarrierValidate(t *testing.T) {
	assert.ErrorIs(t, (&Carrier{}).Validate(), ErrEmptyUserID)
	assert.ErrorIs(t, (&Carrier{UserID: uuid.New(), MaxLoadKg: -1}).Validate(), ErrNegativeLoad)
}

func TestCarrierPatchApplyTo(t *testing.T) {
	c := &Carrier{
		UserID:       uuid.New(),
		VehicleType:  "van",
		LicensePlate: "AB-123-CD",
		CoverageArea: "Paris",
		MaxLoadKg:    800,
	}
	area := "Île-de-France"
	load := 0

	CarrierPatch{CoverageArea: &area, MaxLoadKg: &load}.ApplyTo(c)

	assert.Equal(t, "van", c.VehicleType)
	assert.Equal(t, "AB-123-CD", c.LicensePlate)
	assert.Equal(t, "Île-de-France", c.CoverageArea)
	assert.Equal(t, 0, c.MaxLoadKg, "explicit zero must overwrite")
}

func TestCarrierPatchIsEmpty(t *testing.T) {
	assert.True(t, CarrierPatch{}.IsEmpty())
	v := "bike"
	assert.False(t, CarrierPatch{VehicleType: &v}.IsEmpty())
}
