// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The role-specific fields are validated against the requested role:
// distributors must supply company name and business address, sales
// representatives must supply an employee ID.
type RegisterInput struct {
	Email     string
	Password  string
	Role      entity.Role
	FirstName string
	LastName  string
	Phone     string

	// Retail customer fields.
	ShippingAddress string
	BillingAddress  string

	// Distributor fields.
	CompanyName                string
	BusinessRegistrationNumber string
	TaxID                      string
	BusinessAddress            string

	// Sales representative fields.
	EmployeeID string
	Department string
	Territory  string

	// Shared address fields.
	City    string
	State   string
	ZipCode string
	Country string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable contact fields of an account.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Phone     string
}

// ChangePasswordInput carries a password change for an authenticated user.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its first token pair.
// PendingApproval is set for distributor registrations, which start locked
// out of gated routes until a sales representative approves them.
type RegisterOutput struct {
	User            *entity.User
	Tokens          *service.TokenPair
	PendingApproval bool
}

// LoginOutput returns the issued tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens *service.TokenPair
}

// AuthUsecase defines the interface for authentication and session business
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register creates an account with its role profile and issues tokens.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token: the presented token is revoked and a
	// new pair is issued, atomically. A replayed token fails.
	Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error)

	// Logout revokes the presented refresh token. Idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every outstanding session for the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// RequestPasswordReset issues a reset token and mails it. The outcome is
	// identical whether or not the email maps to an account.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword consumes a reset token, replaces the password, and
	// revokes all sessions.
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	// ChangePassword verifies the current password, replaces it, and revokes
	// all sessions.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// GetProfile loads the account with its role profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile modifies the mutable contact fields and returns the
	// updated account.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// DeactivateAccount locks the account out of login and every gated route.
	DeactivateAccount(ctx context.Context, userID uuid.UUID) error
}
