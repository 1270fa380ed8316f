// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDistributorNotFound is returned when a distributor profile is not found.
var ErrDistributorNotFound = errors.New("distributor profile not found")

// DistributorRepository defines operations on distributor profiles and the
// approval workflow.
type DistributorRepository interface {
	// FindByUserID retrieves the distributor profile owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DistributorProfile, error)

	// ListPending retrieves all profiles awaiting review, newest first,
	// with the owning user's account data populated.
	ListPending(ctx context.Context) ([]*entity.DistributorProfile, error)

	// UpdateApproval records a review decision on a profile and returns the
	// updated profile. rejectionReason is empty for approvals.
	UpdateApproval(ctx context.Context, distributorID uuid.UUID, status entity.ApprovalStatus, decidedBy uuid.UUID, rejectionReason string) (*entity.DistributorProfile, error)
}
