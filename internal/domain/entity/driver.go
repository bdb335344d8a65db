package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType enumerates the vehicle categories a driver can register with.
type VehicleType string

const (
	VehicleTypeCar   VehicleType = "car"
	VehicleTypeBike  VehicleType = "bike"
	VehicleTypeAuto  VehicleType = "auto"
	VehicleTypeOther VehicleType = "other"
)

// String returns the string representation of the VehicleType.
func (v VehicleType) String() string {
	return string(v)
}

// IsValid checks if the VehicleType is a valid value.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTypeCar, VehicleTypeBike, VehicleTypeAuto, VehicleTypeOther:
		return true
	default:
		return false
	}
}

// DriverStatus represents a driver's availability for dispatch.
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
)

// Vehicle holds the vehicle attributes a driver registers with. The
// credential core treats these as an opaque payload.
type Vehicle struct {
	Color    string      `json:"color"`
	Plate    string      `json:"plate"`
	Capacity int         `json:"capacity"`
	Type     VehicleType `json:"type"`
}

// Location is the driver's last reported position.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Driver represents a driver account, the second principal kind. Drivers and
// riders live in disjoint collections; an email used for one may be reused
// for the other.
type Driver struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	PasswordHash string       `json:"-"` // Never serialized to clients.
	Status       DriverStatus `json:"status"`
	Vehicle      Vehicle      `json:"vehicle"`
	Location     Location     `json:"location"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
