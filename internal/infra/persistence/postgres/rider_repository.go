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

// riderRepository implements the domain.RiderRepository interface using GORM.
type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository is the constructor for riderRepository.
// It returns the repository as a domain.RiderRepository interface, adhering to dependency inversion.
func NewRiderRepository(db *gorm.DB) repository.RiderRepository {
	return &riderRepository{db: db}
}

// FindByID retrieves a single rider by their unique ID.
func (repo *riderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error) {
	var riderM model.RiderModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&riderM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toRiderDomain(&riderM), nil
}

// FindByEmail retrieves a single rider by their email address. The lookup
// pins to the primary node so a login right after registration never
// races a lagging replica.
func (repo *riderRepository) FindByEmail(ctx context.Context, email string) (*entity.Rider, error) {
	var riderM model.RiderModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&riderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider by email")
	}

	return toRiderDomain(&riderM), nil
}

// Create persists a new rider entity to the database.
func (repo *riderRepository) Create(ctx context.Context, rider *entity.Rider) error {
	riderM := fromRiderDomain(rider)

	if err := repo.db.WithContext(ctx).Create(riderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("rider email already registered")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider")
	}

	// Update the rider entity with the generated ID and timestamps
	rider.ID = riderM.ID
	rider.CreatedAt = riderM.CreatedAt
	rider.UpdatedAt = riderM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toRiderDomain converts a GORM RiderModel to a domain Rider entity.
func toRiderDomain(data *model.RiderModel) *entity.Rider {
	if data == nil {
		return nil
	}

	return &entity.Rider{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromRiderDomain converts a domain Rider entity to a GORM RiderModel for persistence.
func fromRiderDomain(data *entity.Rider) *model.RiderModel {
	if data == nil {
		return nil
	}

	return &model.RiderModel{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
	}
}
