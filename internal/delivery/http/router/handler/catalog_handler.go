package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Pricing tiers exposed by the catalog.
const (
	pricingTierRetail      = "retail"
	pricingTierDistributor = "distributor"
)

// CatalogHandler resolves caller-dependent catalog views.
type CatalogHandler struct {
	approvalUC usecase.ApprovalUsecase
	logger     *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(approvalUC usecase.ApprovalUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{approvalUC: approvalUC, logger: logger}
}

// PricingTier reports which price list applies to the caller. Anonymous
// callers and every non-approved account see retail prices; only an approved
// distributor unlocks the wholesale tier.
func (h *CatalogHandler) PricingTier(c echo.Context) error {
	tier := pricingTierRetail

	if user, ok := middleware.CurrentUser(c); ok && user.Role == entity.RoleDistributor {
		status, err := h.approvalUC.OwnStatus(c.Request().Context(), user.ID)
		if err != nil {
			// A missing or unreadable profile falls back to retail rather
			// than failing the catalog.
			h.logger.Warn("Failed to resolve approval status for pricing tier", slog.Any("userID", user.ID), slog.Any("error", err))
		} else if status.ApprovalStatus == entity.ApprovalApproved {
			tier = pricingTierDistributor
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"pricingTier": tier}, "Pricing tier resolved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
