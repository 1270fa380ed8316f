package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockTokenRepository
	hasher    *mockSvc.MockPasswordHasher
	codec     *mockSvc.MockTokenCodec
	mailer    *mockSvc.MockMailer
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	m := &authServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		tokenRepo: mockRepo.NewMockTokenRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		codec:     mockSvc.NewMockTokenCodec(t),
		mailer:    mockSvc.NewMockMailer(t),
	}

	svc := NewAuthService(m.txManager, m.userRepo, m.tokenRepo, m.hasher, m.codec, m.mailer, newDiscardLogger())

	return svc, m
}

func testTokenPair() *service.TokenPair {
	return &service.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}
}

func activeTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "stored-hash",
		Role:         role,
		FirstName:    "Jane",
		LastName:     "Doe",
		Active:       true,
	}
}

func TestAuthService_Register_RetailCustomer(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "jane@example.com",
		Password:  "SecurePass1!",
		Role:      entity.RoleRetailCustomer,
		FirstName: "Jane",
		LastName:  "Doe",
	}

	m.hasher.EXPECT().ValidateStrength("SecurePass1!").Return(nil)
	m.hasher.EXPECT().Hash("SecurePass1!").Return("hashed-password", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			txTokenRepo.EXPECT().StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

			return fn(mockFactory)
		})

	m.codec.EXPECT().IssueTokenPair(mock.AnythingOfType("*entity.User")).Return(testTokenPair(), nil)
	m.codec.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.codec.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.mailer.EXPECT().SendWelcome(ctx, "jane@example.com", "Jane Doe", "retail_customer").Return(nil)

	output, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.PendingApproval)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DistributorStartsPending(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:           "dist@example.com",
		Password:        "SecurePass1!",
		Role:            entity.RoleDistributor,
		FirstName:       "Dana",
		LastName:        "Lee",
		CompanyName:     "Acme Wholesale",
		BusinessAddress: "1 Industry Way",
	}

	m.hasher.EXPECT().ValidateStrength("SecurePass1!").Return(nil)
	m.hasher.EXPECT().Hash("SecurePass1!").Return("hashed-password", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					require.NotNil(t, user.DistributorProfile)
					assert.Equal(t, entity.ApprovalPending, user.DistributorProfile.ApprovalStatus)
					user.ID = uuid.New()
				}).
				Return(nil)
			txTokenRepo.EXPECT().StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

			return fn(mockFactory)
		})

	m.codec.EXPECT().IssueTokenPair(mock.AnythingOfType("*entity.User")).Return(testTokenPair(), nil)
	m.codec.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.codec.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.mailer.EXPECT().SendWelcome(ctx, "dist@example.com", "Dana Lee", "distributor").Return(nil)

	output, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.PendingApproval)
}

func TestAuthService_Register_DistributorMissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := &usecase.RegisterInput{
		Email:    "dist@example.com",
		Password: "SecurePass1!",
		Role:     entity.RoleDistributor,
	}

	output, err := svc.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingDistributorFields)
}

func TestAuthService_Register_SalesRepMissingEmployeeID(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := &usecase.RegisterInput{
		Email:    "rep@example.com",
		Password: "SecurePass1!",
		Role:     entity.RoleSalesRep,
	}

	output, err := svc.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingEmployeeID)
}

func TestAuthService_Register_WeakPasswordRejectedBeforeAnyWrite(t *testing.T) {
	svc, m := newTestAuthService(t)

	weakErr := domainerrors.NewWeakPasswordError("Password must be at least 8 characters long")
	m.hasher.EXPECT().ValidateStrength("short").Return(weakErr)

	input := &usecase.RegisterInput{
		Email:    "jane@example.com",
		Password: "short",
		Role:     entity.RoleRetailCustomer,
	}

	output, err := svc.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, weakErr)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := &usecase.RegisterInput{
		Email:    "jane@example.com",
		Password: "SecurePass1!",
		Role:     entity.Role("superadmin"),
	}

	output, err := svc.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("SecurePass1!", "stored-hash").Return(true)
	m.codec.EXPECT().IssueTokenPair(user).Return(testTokenPair(), nil)
	m.codec.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.codec.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	m.tokenRepo.EXPECT().
		StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh-token-hash", token.TokenHash)
		}).
		Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "SecurePass1!"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)

	m.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	_, unknownErr := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	_, wrongErr := svc.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_DeactivatedAccountCheckedBeforePassword(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	user.Active = false

	// No Check expectation: the password must never be compared for a
	// deactivated account.
	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "SecurePass1!"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "old-hash"}
	newPair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	m.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
	m.codec.EXPECT().HashToken("old-refresh").Return("old-hash")
	m.codec.EXPECT().IssueTokenPair(user).Return(newPair, nil)
	m.codec.EXPECT().HashToken("new-refresh").Return("new-hash")
	m.codec.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txTokenRepo.EXPECT().FindValidRefreshToken(ctx, "old-hash").Return(stored, nil)
			txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			txTokenRepo.EXPECT().ConsumeRefreshToken(ctx, "old-hash").Return(nil)
			txTokenRepo.EXPECT().
				StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new-hash", token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	tokens, err := svc.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestAuthService_Refresh_ReplayedTokenFails(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(userID, nil)
	m.codec.EXPECT().HashToken("old-refresh").Return("old-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)
			txTokenRepo.EXPECT().FindValidRefreshToken(ctx, "old-hash").Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	tokens, err := svc.Refresh(ctx, "old-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_ConcurrentRedeemWinsOnce(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "old-hash"}

	m.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
	m.codec.EXPECT().HashToken("old-refresh").Return("old-hash")

	// The losing side of a concurrent redeem: the read still sees the token
	// as valid, but the conditional revoke finds it already consumed.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txTokenRepo.EXPECT().FindValidRefreshToken(ctx, "old-hash").Return(stored, nil)
			txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			txTokenRepo.EXPECT().ConsumeRefreshToken(ctx, "old-hash").Return(repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	tokens, err := svc.Refresh(ctx, "old-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_BadSignature(t *testing.T) {
	svc, m := newTestAuthService(t)

	m.codec.EXPECT().VerifyRefreshToken("garbage").Return(uuid.Nil, service.ErrInvalidToken)

	tokens, err := svc.Refresh(context.Background(), "garbage")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_UserMismatchFails(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	claimedID := uuid.New()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: uuid.New(), TokenHash: "old-hash"}

	m.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(claimedID, nil)
	m.codec.EXPECT().HashToken("old-refresh").Return("old-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)
			txTokenRepo.EXPECT().FindValidRefreshToken(ctx, "old-hash").Return(stored, nil)

			return fn(mockFactory)
		})

	tokens, err := svc.Refresh(ctx, "old-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_DeactivatedUserFails(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	user.Active = false
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "old-hash"}

	m.codec.EXPECT().VerifyRefreshToken("old-refresh").Return(user.ID, nil)
	m.codec.EXPECT().HashToken("old-refresh").Return("old-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txTokenRepo.EXPECT().FindValidRefreshToken(ctx, "old-hash").Return(stored, nil)
			txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	tokens, err := svc.Refresh(ctx, "old-refresh")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()

	m.codec.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	m.tokenRepo.EXPECT().RevokeRefreshToken(ctx, "refresh-token-hash").Return(nil)

	err := svc.Logout(ctx, "refresh-token")

	require.NoError(t, err)
}

func TestAuthService_Logout_EmptyTokenIsNoop(t *testing.T) {
	svc, _ := newTestAuthService(t)

	err := svc.Logout(context.Background(), "")

	require.NoError(t, err)
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.tokenRepo.EXPECT().RevokeAllForUser(ctx, userID).Return(nil)

	err := svc.LogoutAll(ctx, userID)

	require.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_Success(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	m.codec.EXPECT().HashToken(mock.AnythingOfType("string")).Return("reset-token-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)
			txTokenRepo.EXPECT().
				UpsertPasswordResetToken(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Run(func(ctx context.Context, token *entity.PasswordResetToken) {
					assert.Equal(t, user.ID, token.UserID)
					assert.Equal(t, "reset-token-hash", token.TokenHash)
					assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	m.mailer.EXPECT().
		SendPasswordReset(ctx, "jane@example.com", "Jane Doe", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, email, name, resetToken string) {
			// The mail carries the raw token, never its hash.
			assert.Len(t, resetToken, 64)
			assert.NotEqual(t, "reset-token-hash", resetToken)
		}).
		Return(nil)

	err := svc.RequestPasswordReset(ctx, "jane@example.com")

	require.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_UnknownEmailSilentlySucceeds(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()

	// No token or mail expectations: an unknown email must produce no side
	// effects at all.
	m.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	err := svc.RequestPasswordReset(ctx, "nobody@example.com")

	require.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_DeactivatedAccountSilentlySucceeds(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	user.Active = false

	m.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)

	err := svc.RequestPasswordReset(ctx, "jane@example.com")

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.PasswordResetToken{ID: uuid.New(), UserID: userID, TokenHash: "reset-token-hash"}

	m.hasher.EXPECT().ValidateStrength("NewSecure1!").Return(nil)
	m.hasher.EXPECT().Hash("NewSecure1!").Return("new-hash", nil)
	m.codec.EXPECT().HashToken("raw-reset-token").Return("reset-token-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txTokenRepo.EXPECT().FindValidPasswordResetToken(ctx, "reset-token-hash").Return(stored, nil)
			txTokenRepo.EXPECT().MarkPasswordResetTokenUsed(ctx, "reset-token-hash").Return(nil)
			txUserRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)
			txTokenRepo.EXPECT().RevokeAllForUser(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := svc.ResetPassword(ctx, "raw-reset-token", "NewSecure1!")

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()

	m.hasher.EXPECT().ValidateStrength("NewSecure1!").Return(nil)
	m.hasher.EXPECT().Hash("NewSecure1!").Return("new-hash", nil)
	m.codec.EXPECT().HashToken("bad-token").Return("bad-token-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)
			txTokenRepo.EXPECT().FindValidPasswordResetToken(ctx, "bad-token-hash").Return(nil, repository.ErrResetTokenNotFound)

			return fn(mockFactory)
		})

	err := svc.ResetPassword(ctx, "bad-token", "NewSecure1!")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}

func TestAuthService_ResetPassword_WeakPasswordLeavesTokenUnconsumed(t *testing.T) {
	svc, m := newTestAuthService(t)

	weakErr := domainerrors.NewWeakPasswordError("Password must contain at least one number")
	m.hasher.EXPECT().ValidateStrength("weakpassword").Return(weakErr)

	err := svc.ResetPassword(context.Background(), "raw-reset-token", "weakpassword")

	assert.ErrorIs(t, err, weakErr)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.hasher.EXPECT().Check("OldSecure1!", "stored-hash").Return(true)
	m.hasher.EXPECT().ValidateStrength("NewSecure1!").Return(nil)
	m.hasher.EXPECT().Hash("NewSecure1!").Return("new-hash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txUserRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)
			txTokenRepo.EXPECT().RevokeAllForUser(ctx, user.ID).Return(nil)

			return fn(mockFactory)
		})

	err := svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "OldSecure1!",
		NewPassword:     "NewSecure1!",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	err := svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong-password",
		NewPassword:     "NewSecure1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UpdateProfile_ReturnsReloadedUser(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser(entity.RoleRetailCustomer)
	user.FirstName = "Janet"

	m.userRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, u *entity.User) {
			assert.Equal(t, "Janet", u.FirstName)
		}).
		Return(nil)
	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	updated, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    user.ID,
		FirstName: "Janet",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
}

func TestAuthService_DeactivateAccount_RevokesAllSessions(t *testing.T) {
	svc, m := newTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().TokenRepo().Return(txTokenRepo)

			txUserRepo.EXPECT().Deactivate(ctx, userID).Return(nil)
			txTokenRepo.EXPECT().RevokeAllForUser(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := svc.DeactivateAccount(ctx, userID)

	require.NoError(t, err)
}
