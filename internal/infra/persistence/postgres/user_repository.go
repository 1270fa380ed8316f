package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("RetailProfile").
		Preload("DistributorProfile").
		Preload("SalesRepProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the role profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("RetailProfile").
		Preload("DistributorProfile").
		Preload("SalesRepProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its role profile, to the database.
// GORM's Create with associations inserts into users plus the profile table
// matching the account role.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			// The employee_id unique index and the email unique index are the
			// two candidates on this insert path.
			if user.SalesRepProfile != nil && isConstraintOn(err, "employee_id") {
				return domainerrors.ErrDuplicateEmployeeID
			}

			return domainerrors.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.RetailProfile != nil && userM.RetailProfile != nil {
		user.RetailProfile.UserID = userM.RetailProfile.UserID
		user.RetailProfile.UpdatedAt = userM.RetailProfile.UpdatedAt
	}
	if user.DistributorProfile != nil && userM.DistributorProfile != nil {
		user.DistributorProfile.ID = userM.DistributorProfile.ID
		user.DistributorProfile.UserID = userM.DistributorProfile.UserID
		user.DistributorProfile.CreatedAt = userM.DistributorProfile.CreatedAt
		user.DistributorProfile.UpdatedAt = userM.DistributorProfile.UpdatedAt
	}
	if user.SalesRepProfile != nil && userM.SalesRepProfile != nil {
		user.SalesRepProfile.UserID = userM.SalesRepProfile.UserID
		user.SalesRepProfile.UpdatedAt = userM.SalesRepProfile.UpdatedAt
	}

	return nil
}

// UpdateProfile modifies the mutable contact fields of an existing user.
// Email, role, and password are managed by dedicated operations.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      user.Phone,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash for a user.
func (repo *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Deactivate clears the active flag on a user account.
func (repo *userRepository) Deactivate(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		Role:               entity.Role(data.Role),
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Phone:              data.Phone,
		Active:             data.IsActive,
		RetailProfile:      toRetailProfileDomain(data.RetailProfile),
		DistributorProfile: toDistributorProfileDomain(data.DistributorProfile),
		SalesRepProfile:    toSalesRepProfileDomain(data.SalesRepProfile),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		Role:               data.Role.String(),
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Phone:              data.Phone,
		IsActive:           data.Active,
		RetailProfile:      fromRetailProfileDomain(data.RetailProfile),
		DistributorProfile: fromDistributorProfileDomain(data.DistributorProfile),
		SalesRepProfile:    fromSalesRepProfileDomain(data.SalesRepProfile),
	}
}

// toRetailProfileDomain converts a GORM RetailCustomerModel to a domain RetailProfile entity.
func toRetailProfileDomain(data *model.RetailCustomerModel) *entity.RetailProfile {
	if data == nil {
		return nil
	}

	return &entity.RetailProfile{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		City:            data.City,
		State:           data.State,
		ZipCode:         data.ZipCode,
		Country:         data.Country,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromRetailProfileDomain converts a domain RetailProfile entity to a GORM RetailCustomerModel.
func fromRetailProfileDomain(data *entity.RetailProfile) *model.RetailCustomerModel {
	if data == nil {
		return nil
	}

	return &model.RetailCustomerModel{
		UserID:          data.UserID,
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		City:            data.City,
		State:           data.State,
		ZipCode:         data.ZipCode,
		Country:         data.Country,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toDistributorProfileDomain converts a GORM DistributorModel to a domain DistributorProfile entity.
func toDistributorProfileDomain(data *model.DistributorModel) *entity.DistributorProfile {
	if data == nil {
		return nil
	}

	return &entity.DistributorProfile{
		ID:                         data.ID,
		UserID:                     data.UserID,
		CompanyName:                data.CompanyName,
		BusinessRegistrationNumber: data.BusinessRegistrationNumber,
		TaxID:                      data.TaxID,
		BusinessAddress:            data.BusinessAddress,
		City:                       data.City,
		State:                      data.State,
		ZipCode:                    data.ZipCode,
		Country:                    data.Country,
		ApprovalStatus:             entity.ApprovalStatus(data.ApprovalStatus),
		ApprovedBy:                 data.ApprovedBy,
		ApprovedAt:                 data.ApprovedAt,
		RejectionReason:            data.RejectionReason,
		CreatedAt:                  data.CreatedAt,
		UpdatedAt:                  data.UpdatedAt,
		User:                       toUserDomain(data.User),
	}
}

// fromDistributorProfileDomain converts a domain DistributorProfile entity to a GORM DistributorModel.
func fromDistributorProfileDomain(data *entity.DistributorProfile) *model.DistributorModel {
	if data == nil {
		return nil
	}

	return &model.DistributorModel{
		ID:                         data.ID,
		UserID:                     data.UserID,
		CompanyName:                data.CompanyName,
		BusinessRegistrationNumber: data.BusinessRegistrationNumber,
		TaxID:                      data.TaxID,
		BusinessAddress:            data.BusinessAddress,
		City:                       data.City,
		State:                      data.State,
		ZipCode:                    data.ZipCode,
		Country:                    data.Country,
		ApprovalStatus:             data.ApprovalStatus.String(),
		ApprovedBy:                 data.ApprovedBy,
		ApprovedAt:                 data.ApprovedAt,
		RejectionReason:            data.RejectionReason,
	}
}

// toSalesRepProfileDomain converts a GORM SalesRepModel to a domain SalesRepProfile entity.
func toSalesRepProfileDomain(data *model.SalesRepModel) *entity.SalesRepProfile {
	if data == nil {
		return nil
	}

	return &entity.SalesRepProfile{
		UserID:     data.UserID,
		EmployeeID: data.EmployeeID,
		Department: data.Department,
		Territory:  data.Territory,
		ManagerID:  data.ManagerID,
		HireDate:   data.HireDate,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromSalesRepProfileDomain converts a domain SalesRepProfile entity to a GORM SalesRepModel.
func fromSalesRepProfileDomain(data *entity.SalesRepProfile) *model.SalesRepModel {
	if data == nil {
		return nil
	}

	return &model.SalesRepModel{
		UserID:     data.UserID,
		EmployeeID: data.EmployeeID,
		Department: data.Department,
		Territory:  data.Territory,
		ManagerID:  data.ManagerID,
		HireDate:   data.HireDate,
	}
}
