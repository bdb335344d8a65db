package postgres

import (
	"context"

	"ridehub/internal/domain/entity"
	domainerrors "ridehub/internal/domain/errors"
	"ridehub/internal/domain/repository"
	"ridehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// driverRepository implements the domain.DriverRepository interface using GORM.
// Drivers live in their own table; a rider row can never satisfy a driver lookup.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

// FindByID retrieves a single driver by their unique ID.
func (repo *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driverM model.DriverModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&driverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by id")
	}

	return toDriverDomain(&driverM), nil
}

// FindByEmail retrieves a single driver by their email address, reading
// from the primary node to avoid replica lag on fresh registrations.
func (repo *driverRepository) FindByEmail(ctx context.Context, email string) (*entity.Driver, error) {
	var driverM model.DriverModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&driverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by email")
	}

	return toDriverDomain(&driverM), nil
}

// Create persists a new driver entity to the database.
func (repo *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	driverM := fromDriverDomain(driver)

	if err := repo.db.WithContext(ctx).Create(driverM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("driver email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create driver")
	}

	driver.ID = driverM.ID
	driver.Status = entity.DriverStatus(driverM.Status)
	driver.CreatedAt = driverM.CreatedAt
	driver.UpdatedAt = driverM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toDriverDomain converts a GORM DriverModel to a domain Driver entity.
func toDriverDomain(data *model.DriverModel) *entity.Driver {
	if data == nil {
		return nil
	}

	return &entity.Driver{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		Status:       entity.DriverStatus(data.Status),
		Vehicle: entity.Vehicle{
			Color:    data.VehicleColor,
			Plate:    data.VehiclePlate,
			Capacity: data.VehicleCapacity,
			Type:     entity.VehicleType(data.VehicleType),
		},
		Location: entity.Location{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDriverDomain converts a domain Driver entity to a GORM DriverModel for persistence.
func fromDriverDomain(data *entity.Driver) *model.DriverModel {
	if data == nil {
		return nil
	}

	return &model.DriverModel{
		ID:              data.ID,
		Email:           data.Email,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		PasswordHash:    data.PasswordHash,
		Status:          string(data.Status),
		VehicleColor:    data.Vehicle.Color,
		VehiclePlate:    data.Vehicle.Plate,
		VehicleCapacity: data.Vehicle.Capacity,
		VehicleType:     string(data.Vehicle.Type),
		Latitude:        data.Location.Latitude,
		Longitude:       data.Location.Longitude,
	}
}
