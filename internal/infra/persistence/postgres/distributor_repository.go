package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// distributorRepository implements the domain.DistributorRepository interface using GORM.
type distributorRepository struct {
	db *gorm.DB
}

// NewDistributorRepository is the constructor for distributorRepository.
func NewDistributorRepository(db *gorm.DB) repository.DistributorRepository {
	return &distributorRepository{db: db}
}

// FindByUserID retrieves the distributor profile owned by a user.
func (repo *distributorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DistributorProfile, error) {
	var profileM model.DistributorModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDistributorNotFound
		}

		return nil, errors.Wrap(err, "failed to find distributor by user id")
	}

	return toDistributorProfileDomain(&profileM), nil
}

// ListPending retrieves all profiles awaiting review, newest first, with the
// owning user's account data populated for the review listing.
func (repo *distributorRepository) ListPending(ctx context.Context) ([]*entity.DistributorProfile, error) {
	var profileModels []*model.DistributorModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("approval_status = ?", entity.ApprovalPending.String()).
		Order("created_at DESC").
		Find(&profileModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	profiles := make([]*entity.DistributorProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toDistributorProfileDomain(profileM))
	}

	return profiles, nil
}

// UpdateApproval records a review decision on a profile and returns the
// updated profile. The decision timestamp and reviewer are written together
// with the status so the row never shows a half-applied decision.
func (repo *distributorRepository) UpdateApproval(ctx context.Context, distributorID uuid.UUID, status entity.ApprovalStatus, decidedBy uuid.UUID, rejectionReason string) (*entity.DistributorProfile, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.DistributorModel{}).
		Where("id = ?", distributorID).
		Updates(map[string]any{
			"approval_status":  status.String(),
			"approved_by":      decidedBy,
			"approved_at":      now,
			"rejection_reason": rejectionReason,
		})

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update approval status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrDistributorNotFound
	}

	var profileM model.DistributorModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", distributorID).
		First(&profileM).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toDistributorProfileDomain(&profileM), nil
}
