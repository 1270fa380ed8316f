package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApprovalHandler holds dependencies for distributor approval handlers.
type ApprovalHandler struct {
	uc     usecase.ApprovalUsecase
	logger *slog.Logger
}

// NewApprovalHandler is the constructor for ApprovalHandler, injected by Fx.
func NewApprovalHandler(uc usecase.ApprovalUsecase, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{uc: uc, logger: logger}
}

// ListPending returns all distributor applications awaiting review.
func (h *ApprovalHandler) ListPending(c echo.Context) error {
	pending, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*distributorProfileView, 0, len(pending))
	for _, profile := range pending {
		views = append(views, toDistributorProfileView(profile))
	}

	return response.Success(c, http.StatusOK, views, "Pending distributors retrieved successfully")
}

type approvalDecisionRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// Decide records an approval or rejection on a distributor application.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	distributorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid distributor ID")
	}

	var req approvalDecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval decision input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	decidedBy, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	updated, err := h.uc.Decide(c.Request().Context(), &usecase.ApprovalDecisionInput{
		DistributorID:   distributorID,
		Status:          entity.ApprovalStatus(req.Status),
		DecidedBy:       decidedBy,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Distributor approved successfully"
	if updated.ApprovalStatus == entity.ApprovalRejected {
		message = "Distributor rejected"
	}

	return response.Success(c, http.StatusOK, toDistributorProfileView(updated), message)
}

// OwnStatus returns the approval state of the caller's own application.
func (h *ApprovalHandler) OwnStatus(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	status, err := h.uc.OwnStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"approvalStatus":  status.ApprovalStatus.String(),
		"rejectionReason": status.RejectionReason,
	}, "Approval status retrieved successfully")
}
