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

// revokedTokenRetention is how long revoked refresh tokens are kept before
// cleanup removes them. The rows serve auditing, not authentication.
const revokedTokenRetention = 30 * 24 * time.Hour

// tokenRepository implements the domain.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// StoreRefreshToken persists a new refresh token, representing a user session.
func (repo *tokenRepository) StoreRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required token information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindValidRefreshToken retrieves a refresh token by its stored hash.
// Expired, revoked, and absent tokens are indistinguishable: all three yield
// ErrRefreshTokenNotFound.
func (repo *tokenRepository) FindValidRefreshToken(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = false AND expires_at > ?", tokenHash, time.Now()).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// ConsumeRefreshToken revokes a refresh token only if it is still unrevoked.
// The conditional UPDATE takes a row lock, so of two concurrent redeems the
// second blocks until the first commits, re-evaluates the predicate against
// the now-revoked row, and flips zero rows.
func (repo *tokenRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked = false", tokenHash).
		Update("revoked", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// RevokeRefreshToken marks a refresh token revoked by its stored hash.
// Zero affected rows is a success: the token was already revoked or never
// existed, and either way it cannot be used again.
func (repo *tokenRepository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke refresh token")
	}

	return nil
}

// RevokeAllForUser marks every outstanding refresh token for a user revoked.
// A single UPDATE keeps the sweep atomic for concurrent readers.
func (repo *tokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke user refresh tokens")
	}

	return nil
}

// CleanupExpired deletes refresh tokens that can never authenticate again:
// expired ones, and revoked ones past the retention window.
func (repo *tokenRepository) CleanupExpired(ctx context.Context) (int64, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR (revoked = true AND created_at < ?)", now, now.Add(-revokedTokenRetention)).
		Delete(&model.RefreshTokenModel{})

	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// UpsertPasswordResetToken replaces the user's outstanding reset token, or
// inserts one if none exists. The unique user_id column enforces the
// one-token-per-user invariant even under concurrent requests.
func (repo *tokenRepository) UpsertPasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromPasswordResetTokenDomain(token)

	var existing model.PasswordResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", token.UserID).
		First(&existing).Error

	switch {
	case err == nil:
		return repo.replacePasswordResetToken(ctx, token, tokenM, existing.ID)

	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.insertPasswordResetToken(ctx, token, tokenM)

	default:
		return errors.WithStack(err)
	}
}

// replacePasswordResetToken overwrites the user's prior token in place,
// resetting the used flag.
func (repo *tokenRepository) replacePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken, tokenM *model.PasswordResetTokenModel, existingID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("user_id = ?", token.UserID).
		Updates(map[string]any{
			"token_hash": tokenM.TokenHash,
			"expires_at": tokenM.ExpiresAt,
			"used":       false,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace password reset token")
	}

	token.ID = existingID

	return nil
}

func (repo *tokenRepository) insertPasswordResetToken(ctx context.Context, token *entity.PasswordResetToken, tokenM *model.PasswordResetTokenModel) error {
	createErr := repo.db.WithContext(ctx).Create(tokenM).Error
	if createErr == nil {
		token.ID = tokenM.ID
		token.CreatedAt = tokenM.CreatedAt

		return nil
	}

	// A concurrent request inserted the row between the lookup and the
	// create. Take over that row instead of failing, so both requests
	// report success and the later token is the one that stands.
	if isUniqueConstraintViolation(createErr) || isConstraintOn(createErr, "user_id") {
		var existing model.PasswordResetTokenModel
		err := repo.db.WithContext(ctx).
			Where("user_id = ?", token.UserID).
			First(&existing).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return repo.replacePasswordResetToken(ctx, token, tokenM, existing.ID)
	}

	if isForeignKeyConstraintViolation(createErr) {
		return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid user reference")
	}

	return domainerrors.NewDatabaseExecuteError(createErr, "failed to store password reset token")
}

// FindValidPasswordResetToken retrieves a reset token by its stored hash.
// Used, expired, and absent tokens all yield ErrResetTokenNotFound.
func (repo *tokenRepository) FindValidPasswordResetToken(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND used = false AND expires_at > ?", tokenHash, time.Now()).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPasswordResetTokenDomain(&tokenM), nil
}

// MarkPasswordResetTokenUsed flips the used flag. One-way and idempotent.
func (repo *tokenRepository) MarkPasswordResetTokenUsed(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Update("used", true).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark password reset token used")
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}
}

// toPasswordResetTokenDomain converts a GORM PasswordResetTokenModel to a domain entity.
func toPasswordResetTokenDomain(data *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

// fromPasswordResetTokenDomain converts a domain entity to a GORM PasswordResetTokenModel.
func fromPasswordResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
