package api

import (
	"fmt"
	"time"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/service"
	"github.com/google/uuid"
)

// DateLayout is the wire format of birth dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for a birth date not in DateLayout.
var ErrInvalidDate = fmt.Errorf("%w: birth date must use YYYY-MM-DD", domain.ErrValidation)

// ProfileFields are the personal details accepted at registration.
type ProfileFields struct {
	FirstName   string `json:"first_name"   validate:"max=100"`
	LastName    string `json:"last_name"    validate:"max=100"`
	Address     string `json:"address"      validate:"max=255"`
	CompAddress string `json:"comp_address" validate:"max=255"`
	Zipcode     string `json:"zipcode"      validate:"max=20"`
	City        string `json:"city"         validate:"max=100"`
	BirthDate   string `json:"birth_date"   validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
	Username string `json:"username" validate:"max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer carrier admin"`
	// Carrier is shorthand for role "carrier".
	Carrier bool `json:"carrier"`
	ProfileFields
}

// ToRegistrationData converts the validated request into service input.
func (r RegisterRequest) ToRegistrationData() (service.RegistrationData, error) {
	role := domain.RoleCustomer
	if r.Role != "" {
		parsed, err := domain.ParseRole(r.Role)
		if err != nil {
			return service.RegistrationData{}, err
		}
		role = parsed
	}
	if r.Carrier && role == domain.RoleCustomer {
		role = domain.RoleCarrier
	}

	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return service.RegistrationData{}, err
	}

	return service.RegistrationData{
		Email:    r.Email,
		Password: r.Password,
		Username: r.Username,
		Role:     role,
		Profile: domain.Profile{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Address:     r.Address,
			CompAddress: r.CompAddress,
			Zipcode:     r.Zipcode,
			City:        r.City,
			BirthDate:   birthDate,
			PhoneNumber: r.PhoneNumber,
		},
	}, nil
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response of the login endpoint.
type LoginResponse struct {
	UserID    uuid.UUID   `json:"user_id"`
	Role      domain.Role `json:"role"`
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"` // RFC 3339
}

// UpdateUserRequest is a partial profile update. Absent fields are left untouched.
type UpdateUserRequest struct {
	FirstName        *string `json:"first_name"        validate:"omitempty,max=100"`
	LastName         *string `json:"last_name"         validate:"omitempty,max=100"`
	Address          *string `json:"address"           validate:"omitempty,max=255"`
	CompAddress      *string `json:"comp_address"      validate:"omitempty,max=255"`
	Zipcode          *string `json:"zipcode"           validate:"omitempty,max=20"`
	City             *string `json:"city"              validate:"omitempty,max=100"`
	BirthDate        *string `json:"birth_date"        validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber      *string `json:"phone_number"      validate:"omitempty,max=30"`
	Role             *string `json:"role"              validate:"omitempty,oneof=customer carrier admin"`
	IdentityVerified *bool   `json:"identity_verified"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateUserRequest) ToPatch() (domain.UserPatch, error) {
	patch := domain.UserPatch{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Address:          r.Address,
		CompAddress:      r.CompAddress,
		Zipcode:          r.Zipcode,
		City:             r.City,
		PhoneNumber:      r.PhoneNumber,
		IdentityVerified: r.IdentityVerified,
	}
	if r.BirthDate != nil {
		birthDate, err := parseDate(*r.BirthDate)
		if err != nil {
			return domain.UserPatch{}, err
		}
		patch.BirthDate = birthDate
	}
	if r.Role != nil {
		role, err := domain.ParseRole(*r.Role)
		if err != nil {
			return domain.UserPatch{}, err
		}
		patch.Role = &role
	}
	return patch, nil
}

// UpdateAccountRequest is a partial account update.
type UpdateAccountRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=12,max=72"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAccountRequest) ToPatch() domain.AccountPatch {
	return domain.AccountPatch{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdateCarrierRequest is a partial carrier profile update.
type UpdateCarrierRequest struct {
	VehicleType  *string `json:"vehicle_type"  validate:"omitempty,max=50"`
	LicensePlate *string `json:"license_plate" validate:"omitempty,max=20"`
	CoverageArea *string `json:"coverage_area" validate:"omitempty,max=255"`
	MaxLoadKg    *int    `json:"max_load_kg"   validate:"omitempty,gte=0"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCarrierRequest) ToPatch() domain.CarrierPatch {
	return domain.CarrierPatch{
		VehicleType:  r.VehicleType,
		LicensePlate: r.LicensePlate,
		CoverageArea: r.CoverageArea,
		MaxLoadKg:    r.MaxLoadKg,
	}
}

// UserResponse is the public view of a user. It never carries credentials.
type UserResponse struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	Role             domain.Role `json:"role"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Address          string      `json:"address"`
	CompAddress      string      `json:"comp_address,omitempty"`
	Zipcode          string      `json:"zipcode"`
	City             string      `json:"city"`
	BirthDate        string      `json:"birth_date,omitempty"`
	PhoneNumber      string      `json:"phone_number"`
	IdentityVerified bool        `json:"identity_verified"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             u.Role,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Address:          u.Address,
		CompAddress:      u.CompAddress,
		Zipcode:          u.Zipcode,
		City:             u.City,
		PhoneNumber:      u.PhoneNumber,
		IdentityVerified: u.IdentityVerified,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.BirthDate != nil {
		resp.BirthDate = u.BirthDate.Format(DateLayout)
	}
	return resp
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		UserID:    a.UserID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CarrierResponse is the public view of a carrier profile.
type CarrierResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	VehicleType  string    `json:"vehicle_type"`
	LicensePlate string    `json:"license_plate"`
	CoverageArea string    `json:"coverage_area"`
	MaxLoadKg    int       `json:"max_load_kg"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newCarrierResponse(c *domain.Carrier) CarrierResponse {
	return CarrierResponse{
		UserID:       c.UserID,
		VehicleType:  c.VehicleType,
		LicensePlate: c.LicensePlate,
		CoverageArea: c.CoverageArea,
		MaxLoadKg:    c.MaxLoadKg,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// RootResponse is returned by the discovery endpoint.
type RootResponse struct {
	DocumentationURL string `json:"documentation_url"`
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
