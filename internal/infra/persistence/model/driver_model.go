package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel mirrors the 'drivers' table. Drivers keep their own email
// uniqueness constraint, separate from riders.
type DriverModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100)"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active'"`
	VehicleColor    string    `gorm:"type:varchar(50);not null"`
	VehiclePlate    string    `gorm:"type:varchar(20);not null"`
	VehicleCapacity int       `gorm:"not null"`
	VehicleType     string    `gorm:"type:varchar(20);not null"`
	Latitude        float64
	Longitude       float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "drivers"
}
