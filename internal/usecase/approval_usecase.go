package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalDecisionInput carries a sales representative's review decision on a
// distributor application.
type ApprovalDecisionInput struct {
	DistributorID   uuid.UUID
	Status          entity.ApprovalStatus
	DecidedBy       uuid.UUID
	RejectionReason string
}

// ApprovalStatusOutput is a distributor's view of their own application.
type ApprovalStatusOutput struct {
	ApprovalStatus  entity.ApprovalStatus
	RejectionReason string
}

// ApprovalUsecase defines the distributor approval workflow operations.
type ApprovalUsecase interface {
	// ListPending returns all distributor applications awaiting review,
	// newest first, with account data attached.
	ListPending(ctx context.Context) ([]*entity.DistributorProfile, error)

	// Decide records an approval or rejection. Rejections require a reason.
	// The applicant is notified by mail, fire-and-forget.
	Decide(ctx context.Context, input *ApprovalDecisionInput) (*entity.DistributorProfile, error)

	// OwnStatus returns the approval state of the caller's own application.
	OwnStatus(ctx context.Context, userID uuid.UUID) (*ApprovalStatusOutput, error)
}
