package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware validates access tokens and enforces role and approval
// gates. Token claims alone are never trusted for account state: every
// authenticated request reloads the user, so deactivation takes effect
// within one request rather than one access token lifetime.
type AuthMiddleware struct {
	codec           service.TokenCodec
	userRepo        repository.UserRepository
	distributorRepo repository.DistributorRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	codec service.TokenCodec,
	userRepo repository.UserRepository,
	distributorRepo repository.DistributorRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		codec:           codec,
		userRepo:        userRepo,
		distributorRepo: distributorRepo,
	}
}

// Authenticate validates the bearer access token and loads the live account
// onto the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header with Bearer token is required")
		}

		claims, err := m.codec.VerifyAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			}

			return errors.Wrap(err, "failed to load user for authentication")
		}

		if !user.Active {
			return domainerrors.ErrAccountDeactivated
		}

		setAuthenticatedUser(c, user)

		return next(c)
	}
}

// OptionalAuthenticate loads the account when a valid bearer token is
// presented, and lets the request through anonymously otherwise. Used by
// routes whose response varies by caller, such as pricing tiers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		claims, err := m.codec.VerifyAccessToken(tokenString)
		if err != nil {
			return next(c)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.Active {
			return next(c)
		}

		setAuthenticatedUser(c, user)

		return next(c)
	}
}

// RequireRole restricts a route to the given roles. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return domainerrors.ErrInsufficientPermissions
			}

			if !roles.Contains(role) {
				return domainerrors.ErrInsufficientPermissions
			}

			return next(c)
		}
	}
}

// RequireApprovedDistributor blocks distributor accounts whose application
// has not been approved. The 403 payload carries the current approval state
// so the client can render the right screen. It must run after Authenticate.
func (m *AuthMiddleware) RequireApprovedDistributor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextKeyRole).(entity.Role)
		if !ok || role != entity.RoleDistributor {
			return domainerrors.ErrInsufficientPermissions
		}

		userID, ok := CurrentUserID(c)
		if !ok {
			return domainerrors.ErrInsufficientPermissions
		}

		profile, err := m.distributorRepo.FindByUserID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrDistributorNotFound) {
				return domainerrors.ErrDistributorNotFound
			}

			return errors.Wrap(err, "failed to load distributor profile for approval gate")
		}

		if profile.ApprovalStatus != entity.ApprovalApproved {
			gateErr := domainerrors.ErrApprovalPending
			if profile.ApprovalStatus == entity.ApprovalRejected {
				gateErr = domainerrors.ErrApprovalRejected
			}

			// The 403 payload carries the application state so the client
			// can render the right screen.
			return c.JSON(gateErr.HTTPCode(), response.Response{
				Success: false,
				Code:    gateErr.HTTPCode(),
				Message: gateErr.Message(),
				Data: map[string]string{
					"approvalStatus":  profile.ApprovalStatus.String(),
					"rejectionReason": profile.RejectionReason,
				},
				Error: &response.ErrorInfo{Code: gateErr.ErrorCode()},
			})
		}

		return next(c)
	}
}

// CurrentUserID returns the authenticated user's ID from the echo context.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// CurrentUser returns the authenticated user from the echo context.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)

	return user, ok
}

func setAuthenticatedUser(c echo.Context, user *entity.User) {
	c.Set(ContextKeyUser, user)
	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyRole, user.Role)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
