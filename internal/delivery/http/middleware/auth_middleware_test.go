package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareMocks struct {
	codec           *mockSvc.MockTokenCodec
	userRepo        *mockRepo.MockUserRepository
	distributorRepo *mockRepo.MockDistributorRepository
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *authMiddlewareMocks) {
	t.Helper()

	m := &authMiddlewareMocks{
		codec:           mockSvc.NewMockTokenCodec(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		distributorRepo: mockRepo.NewMockDistributorRepository(t),
	}

	return NewAuthMiddleware(m.codec, m.userRepo, m.distributorRepo), m
}

func newEchoContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func activeUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Email:  "jane@example.com",
		Role:   role,
		Active: true,
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleRetailCustomer)
	c, rec := newEchoContext(t, "Bearer valid-token")

	m.codec.EXPECT().VerifyAccessToken("valid-token").Return(&service.AccessClaims{UserID: user.ID}, nil)
	m.userRepo.EXPECT().FindByID(c.Request().Context(), user.ID).Return(user, nil)

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := CurrentUserID(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, user.Role, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "Token abc")

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "Bearer bad-token")

	m.codec.EXPECT().VerifyAccessToken("bad-token").Return(nil, service.ErrInvalidToken)

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeactivatedAccount(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleRetailCustomer)
	user.Active = false
	c, _ := newEchoContext(t, "Bearer valid-token")

	// A token issued before deactivation must stop working immediately.
	m.codec.EXPECT().VerifyAccessToken("valid-token").Return(&service.AccessClaims{UserID: user.ID}, nil)
	m.userRepo.EXPECT().FindByID(c.Request().Context(), user.ID).Return(user, nil)

	err := mw.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestAuthMiddleware_Authenticate_DeletedUser(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	userID := uuid.New()
	c, rec := newEchoContext(t, "Bearer valid-token")

	m.codec.EXPECT().VerifyAccessToken("valid-token").Return(&service.AccessClaims{UserID: userID}, nil)
	m.userRepo.EXPECT().FindByID(c.Request().Context(), userID).Return(nil, repository.ErrUserNotFound)

	err := mw.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_AnonymousPassesThrough(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "")

	err := mw.OptionalAuthenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	c, rec := newEchoContext(t, "Bearer bad-token")

	m.codec.EXPECT().VerifyAccessToken("bad-token").Return(nil, service.ErrInvalidToken)

	err := mw.OptionalAuthenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_OptionalAuthenticate_ValidTokenLoadsUser(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleDistributor)
	c, rec := newEchoContext(t, "Bearer valid-token")

	m.codec.EXPECT().VerifyAccessToken("valid-token").Return(&service.AccessClaims{UserID: user.ID}, nil)
	m.userRepo.EXPECT().FindByID(c.Request().Context(), user.ID).Return(user, nil)

	err := mw.OptionalAuthenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	got, ok := CurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	tests := []struct {
		name    string
		role    any
		allowed []entity.Role
		wantErr error
	}{
		{"matching role", entity.RoleSalesRep, []entity.Role{entity.RoleSalesRep}, nil},
		{"one of several", entity.RoleDistributor, []entity.Role{entity.RoleSalesRep, entity.RoleDistributor}, nil},
		{"wrong role", entity.RoleRetailCustomer, []entity.Role{entity.RoleSalesRep}, domainerrors.ErrInsufficientPermissions},
		{"unauthenticated", nil, []entity.Role{entity.RoleSalesRep}, domainerrors.ErrInsufficientPermissions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newEchoContext(t, "")
			if tt.role != nil {
				c.Set(ContextKeyRole, tt.role)
			}

			err := mw.RequireRole(tt.allowed...)(okHandler)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireApprovedDistributor_Approved(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleDistributor)
	c, rec := newEchoContext(t, "")
	c.Set(ContextKeyRole, user.Role)
	c.Set(ContextKeyUserID, user.ID)

	m.distributorRepo.EXPECT().FindByUserID(c.Request().Context(), user.ID).Return(&entity.DistributorProfile{
		UserID:         user.ID,
		ApprovalStatus: entity.ApprovalApproved,
	}, nil)

	err := mw.RequireApprovedDistributor(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireApprovedDistributor_PendingBlocked(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleDistributor)
	c, rec := newEchoContext(t, "")
	c.Set(ContextKeyRole, user.Role)
	c.Set(ContextKeyUserID, user.ID)

	m.distributorRepo.EXPECT().FindByUserID(c.Request().Context(), user.ID).Return(&entity.DistributorProfile{
		UserID:         user.ID,
		ApprovalStatus: entity.ApprovalPending,
	}, nil)

	err := mw.RequireApprovedDistributor(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "APPROVAL_PENDING")
	assert.Contains(t, rec.Body.String(), `"approvalStatus":"pending"`)
}

func TestAuthMiddleware_RequireApprovedDistributor_RejectedCarriesReason(t *testing.T) {
	mw, m := newTestAuthMiddleware(t)

	user := activeUser(entity.RoleDistributor)
	c, rec := newEchoContext(t, "")
	c.Set(ContextKeyRole, user.Role)
	c.Set(ContextKeyUserID, user.ID)

	m.distributorRepo.EXPECT().FindByUserID(c.Request().Context(), user.ID).Return(&entity.DistributorProfile{
		UserID:          user.ID,
		ApprovalStatus:  entity.ApprovalRejected,
		RejectionReason: "Incomplete business registration",
	}, nil)

	err := mw.RequireApprovedDistributor(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "APPROVAL_REJECTED")
	assert.Contains(t, rec.Body.String(), "Incomplete business registration")
}

func TestAuthMiddleware_RequireApprovedDistributor_NonDistributorBlocked(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	c, _ := newEchoContext(t, "")
	c.Set(ContextKeyRole, entity.RoleRetailCustomer)
	c.Set(ContextKeyUserID, uuid.New())

	err := mw.RequireApprovedDistributor(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPermissions)
}
