package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// approvalService implements the ApprovalUsecase interface.
type approvalService struct {
	txManager       repository.TransactionManager
	distributorRepo repository.DistributorRepository
	mailer          service.Mailer
	logger          *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(
	txManager repository.TransactionManager,
	distributorRepo repository.DistributorRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.ApprovalUsecase {
	return &approvalService{
		txManager:       txManager,
		distributorRepo: distributorRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPending returns all distributor applications awaiting review.
func (srv *approvalService) ListPending(ctx context.Context) ([]*entity.DistributorProfile, error) {
	pending, err := srv.distributorRepo.ListPending(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list pending distributors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list pending distributors")
	}

	return pending, nil
}

// Decide records an approval or rejection on a distributor application.
// Rejections carry a mandatory reason. The applicant is notified by mail
// after the decision commits.
func (srv *approvalService) Decide(ctx context.Context, input *usecase.ApprovalDecisionInput) (*entity.DistributorProfile, error) {
	srv.log(ctx).Info("Recording approval decision",
		slog.Any("distributorID", input.DistributorID),
		slog.String("status", input.Status.String()))

	if !input.Status.IsDecision() {
		return nil, domainerrors.ErrInvalidApprovalStatus
	}
	if input.Status == entity.ApprovalRejected && input.RejectionReason == "" {
		return nil, domainerrors.ErrRejectionReasonRequired
	}

	var updated *entity.DistributorProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var updateErr error
		updated, updateErr = repoFactory.DistributorRepo().UpdateApproval(
			ctx, input.DistributorID, input.Status, input.DecidedBy, input.RejectionReason)
		if updateErr != nil {
			if errors.Is(updateErr, repository.ErrDistributorNotFound) {
				return domainerrors.ErrDistributorNotFound
			}

			return errors.Wrap(updateErr, "failed to record approval decision")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Approval decision failed", slog.Any("error", err), slog.Any("distributorID", input.DistributorID))

		return nil, err
	}

	if updated.User != nil {
		approved := input.Status == entity.ApprovalApproved
		if mailErr := srv.mailer.SendApprovalDecision(ctx, updated.User.Email, updated.User.FullName(), approved, input.RejectionReason); mailErr != nil {
			srv.log(ctx).Warn("Failed to dispatch approval decision mail", slog.Any("error", mailErr))
		}
	}

	return updated, nil
}

// OwnStatus returns the approval state of the caller's own application.
func (srv *approvalService) OwnStatus(ctx context.Context, userID uuid.UUID) (*usecase.ApprovalStatusOutput, error) {
	profile, err := srv.distributorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDistributorNotFound) {
			return nil, domainerrors.ErrDistributorNotFound
		}

		return nil, errors.Wrap(err, "failed to load distributor profile")
	}

	return &usecase.ApprovalStatusOutput{
		ApprovalStatus:  profile.ApprovalStatus,
		RejectionReason: profile.RejectionReason,
	}, nil
}
