// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resetTokenTTL bounds how long a password reset link stays valid.
const resetTokenTTL = time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	codec     service.TokenCodec
	mailer    service.Mailer
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	hasher service.PasswordHasher,
	codec service.TokenCodec,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		codec:     codec,
		mailer:    mailer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process: role
// field validation, password policy, account plus profile creation, and the
// first token pair, with the writes inside a single transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("role", input.Role.String()), slog.String("email", input.Email))

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role")
	}
	if err := validateRoleFields(input); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := buildNewUserEntity(input, hashedPassword)

	var tokens *service.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		var issueErr error
		tokens, issueErr = srv.codec.IssueTokenPair(newUser)
		if issueErr != nil {
			return errors.Wrap(issueErr, "failed to issue tokens during registration")
		}

		return srv.storeRefreshToken(ctx, repoFactory.TokenRepo(), newUser.ID, tokens.RefreshToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Fire-and-forget: a mail failure must never fail the registration.
	if mailErr := srv.mailer.SendWelcome(ctx, newUser.Email, newUser.FullName(), newUser.Role.String()); mailErr != nil {
		srv.log(ctx).Warn("Failed to dispatch welcome mail", slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		User:            newUser,
		Tokens:          tokens,
		PendingApproval: newUser.Role == entity.RoleDistributor,
	}, nil
}

// validateRoleFields enforces the role-specific registration requirements.
func validateRoleFields(input *usecase.RegisterInput) error {
	switch input.Role {
	case entity.RoleDistributor:
		if input.CompanyName == "" || input.BusinessAddress == "" {
			return domainerrors.ErrMissingDistributorFields
		}
	case entity.RoleSalesRep:
		if input.EmployeeID == "" {
			return domainerrors.ErrMissingEmployeeID
		}
	case entity.RoleRetailCustomer:
	}

	return nil
}

// buildNewUserEntity assembles the user entity with the profile matching the
// requested role. Distributor profiles start pending.
func buildNewUserEntity(input *usecase.RegisterInput, hashedPassword string) *entity.User {
	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Active:       true,
	}

	switch input.Role {
	case entity.RoleRetailCustomer:
		user.RetailProfile = &entity.RetailProfile{
			ShippingAddress: input.ShippingAddress,
			BillingAddress:  input.BillingAddress,
			City:            input.City,
			State:           input.State,
			ZipCode:         input.ZipCode,
			Country:         input.Country,
		}
	case entity.RoleDistributor:
		user.DistributorProfile = &entity.DistributorProfile{
			CompanyName:                input.CompanyName,
			BusinessRegistrationNumber: input.BusinessRegistrationNumber,
			TaxID:                      input.TaxID,
			BusinessAddress:            input.BusinessAddress,
			City:                       input.City,
			State:                      input.State,
			ZipCode:                    input.ZipCode,
			Country:                    input.Country,
			ApprovalStatus:             entity.ApprovalPending,
		}
	case entity.RoleSalesRep:
		user.SalesRepProfile = &entity.SalesRepProfile{
			EmployeeID: input.EmployeeID,
			Department: input.Department,
			Territory:  input.Territory,
			HireDate:   time.Now(),
		}
	}

	return user
}

// Login verifies credentials and issues a fresh token pair. An unknown email
// and a wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.Active {
		srv.log(ctx).Warn("Login rejected for deactivated account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountDeactivated
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.codec.IssueTokenPair(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens during login")
	}

	if err := srv.storeRefreshToken(ctx, srv.tokenRepo, user.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, Tokens: tokens}, nil
}

// Refresh rotates a refresh token. The lookup, the revocation of the old
// token, and the storage of its replacement run in one transaction, so a
// token redeemed concurrently can only win once.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	userID, err := srv.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidRefreshToken
	}

	oldHash := srv.codec.HashToken(refreshToken)

	var tokens *service.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		stored, err := tokenRepo.FindValidRefreshToken(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrInvalidRefreshToken
			}

			return errors.Wrap(err, "failed to look up refresh token")
		}
		if stored.UserID != userID {
			return domainerrors.ErrInvalidRefreshToken
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidRefreshToken
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}
		if !user.Active {
			return domainerrors.ErrInvalidRefreshToken
		}

		// Consuming before issuing closes the double-redeem race: the
		// conditional revoke succeeds for exactly one concurrent caller.
		if err := tokenRepo.ConsumeRefreshToken(ctx, oldHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrInvalidRefreshToken
			}

			return errors.Wrap(err, "failed to consume rotated refresh token")
		}

		var issueErr error
		tokens, issueErr = srv.codec.IssueTokenPair(user)
		if issueErr != nil {
			return errors.Wrap(issueErr, "failed to issue tokens during refresh")
		}

		return srv.storeRefreshToken(ctx, tokenRepo, user.ID, tokens.RefreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Token refresh completed", slog.Any("userID", userID))

	return tokens, nil
}

// Logout revokes the presented refresh token. Unknown, expired, and
// already-revoked tokens all succeed: the caller holds no session either way.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Debug("Attempting logout")

	if refreshToken == "" {
		return nil
	}

	tokenHash := srv.codec.HashToken(refreshToken)
	if err := srv.tokenRepo.RevokeRefreshToken(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// LogoutAll revokes every outstanding session for the user.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out all sessions", slog.Any("userID", userID))

	if err := srv.tokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke user sessions", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to revoke user sessions")
	}

	return nil
}

// RequestPasswordReset issues a single-use reset token and mails it. The
// caller learns nothing about whether the email maps to an account: unknown
// and deactivated addresses return success without side effects.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	srv.log(ctx).Debug("Password reset requested")

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}
	if !user.Active {
		return nil
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	resetToken := &entity.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: srv.codec.HashToken(rawToken),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TokenRepo().UpsertPasswordResetToken(ctx, resetToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store password reset token", slog.Any("error", err), slog.Any("userID", user.ID))

		return errors.Wrap(err, "failed to store password reset token")
	}

	if mailErr := srv.mailer.SendPasswordReset(ctx, user.Email, user.FullName(), rawToken); mailErr != nil {
		srv.log(ctx).Warn("Failed to dispatch password reset mail", slog.Any("error", mailErr))
	}

	return nil
}

// generateResetToken returns a 256-bit random token, hex encoded. Unlike the
// JWTs, reset tokens carry no claims; the stored hash is the only link back.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// ResetPassword consumes a reset token, replaces the password, and revokes
// every session. Consumption and replacement are atomic: a token can only
// ever reset one password.
func (srv *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	srv.log(ctx).Debug("Attempting password reset")

	if err := srv.hasher.ValidateStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during reset")
	}

	tokenHash := srv.codec.HashToken(resetToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		stored, err := tokenRepo.FindValidPasswordResetToken(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrInvalidResetToken
			}

			return errors.Wrap(err, "failed to look up reset token")
		}

		if err := tokenRepo.MarkPasswordResetTokenUsed(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := repoFactory.UserRepo().UpdatePassword(ctx, stored.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		// A reset proves the old credentials may be compromised; end every
		// session.
		return tokenRepo.RevokeAllForUser(ctx, stored.UserID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// ChangePassword verifies the current password, replaces it, and revokes
// every session.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Debug("Attempting password change", slog.Any("userID", input.UserID))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, current password mismatch", slog.Any("userID", input.UserID))

		return domainerrors.ErrCurrentPasswordIncorrect
	}

	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during change")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdatePassword(ctx, input.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.TokenRepo().RevokeAllForUser(ctx, input.UserID)
	})
	if err != nil {
		srv.log(ctx).Error("Password change failed", slog.Any("error", err), slog.Any("userID", input.UserID))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// GetProfile loads the account with its role profile.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile modifies the mutable contact fields and returns the updated
// account.
func (srv *authService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", input.UserID))

	user := &entity.User{
		ID:        input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	}

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	updated, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload profile after update")
	}

	return updated, nil
}

// DeactivateAccount locks the account and ends every session atomically.
func (srv *authService) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Deactivate(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to deactivate user")
		}

		return repoFactory.TokenRepo().RevokeAllForUser(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Error("Account deactivation failed", slog.Any("error", err), slog.Any("userID", userID))

		return err
	}

	return nil
}

// storeRefreshToken hashes and persists a freshly issued refresh token.
func (srv *authService) storeRefreshToken(ctx context.Context, tokenRepo repository.TokenRepository, userID uuid.UUID, refreshToken string) error {
	newToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.codec.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.codec.RefreshTokenDuration()),
	}

	if err := tokenRepo.StoreRefreshToken(ctx, newToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
