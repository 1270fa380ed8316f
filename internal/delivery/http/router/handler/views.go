package handler

import (
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// userView is the outward shape of an account. The password hash never
// leaves the domain layer.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	Profile   any       `json:"profile,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type retailProfileView struct {
	ShippingAddress string `json:"shippingAddress,omitempty"`
	BillingAddress  string `json:"billingAddress,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	ZipCode         string `json:"zipCode,omitempty"`
	Country         string `json:"country,omitempty"`
}

type distributorProfileView struct {
	ID                         uuid.UUID  `json:"id"`
	CompanyName                string     `json:"companyName"`
	BusinessRegistrationNumber string     `json:"businessRegistrationNumber,omitempty"`
	TaxID                      string     `json:"taxId,omitempty"`
	BusinessAddress            string     `json:"businessAddress"`
	City                       string     `json:"city,omitempty"`
	State                      string     `json:"state,omitempty"`
	ZipCode                    string     `json:"zipCode,omitempty"`
	Country                    string     `json:"country,omitempty"`
	ApprovalStatus             string     `json:"approvalStatus"`
	ApprovedAt                 *time.Time `json:"approvedAt,omitempty"`
	RejectionReason            string     `json:"rejectionReason,omitempty"`
	CreatedAt                  time.Time  `json:"createdAt"`

	User *userView `json:"user,omitempty"`
}

type salesRepProfileView struct {
	EmployeeID string    `json:"employeeId"`
	Department string    `json:"department,omitempty"`
	Territory  string    `json:"territory,omitempty"`
	HireDate   time.Time `json:"hireDate"`
}

// sessionView bundles the account and its freshly issued tokens.
type sessionView struct {
	User            *userView `json:"user"`
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	PendingApproval bool      `json:"pendingApproval,omitempty"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	view := &userView{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		IsActive:  user.Active,
		CreatedAt: user.CreatedAt,
	}

	switch {
	case user.RetailProfile != nil:
		view.Profile = &retailProfileView{
			ShippingAddress: user.RetailProfile.ShippingAddress,
			BillingAddress:  user.RetailProfile.BillingAddress,
			City:            user.RetailProfile.City,
			State:           user.RetailProfile.State,
			ZipCode:         user.RetailProfile.ZipCode,
			Country:         user.RetailProfile.Country,
		}
	case user.DistributorProfile != nil:
		view.Profile = toDistributorProfileView(user.DistributorProfile)
	case user.SalesRepProfile != nil:
		view.Profile = &salesRepProfileView{
			EmployeeID: user.SalesRepProfile.EmployeeID,
			Department: user.SalesRepProfile.Department,
			Territory:  user.SalesRepProfile.Territory,
			HireDate:   user.SalesRepProfile.HireDate,
		}
	}

	return view
}

func toDistributorProfileView(profile *entity.DistributorProfile) *distributorProfileView {
	if profile == nil {
		return nil
	}

	return &distributorProfileView{
		ID:                         profile.ID,
		CompanyName:                profile.CompanyName,
		BusinessRegistrationNumber: profile.BusinessRegistrationNumber,
		TaxID:                      profile.TaxID,
		BusinessAddress:            profile.BusinessAddress,
		City:                       profile.City,
		State:                      profile.State,
		ZipCode:                    profile.ZipCode,
		Country:                    profile.Country,
		ApprovalStatus:             profile.ApprovalStatus.String(),
		ApprovedAt:                 profile.ApprovedAt,
		RejectionReason:            profile.RejectionReason,
		CreatedAt:                  profile.CreatedAt,
		User:                       toUserView(profile.User),
	}
}

func toSessionView(user *entity.User, tokens *service.TokenPair, pendingApproval bool) *sessionView {
	return &sessionView{
		User:            toUserView(user),
		AccessToken:     tokens.AccessToken,
		RefreshToken:    tokens.RefreshToken,
		PendingApproval: pendingApproval,
	}
}
