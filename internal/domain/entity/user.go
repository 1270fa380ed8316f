// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Exactly one of the role profiles is non-nil, matching the account's Role.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier. Globally unique.
	PasswordHash string    // The bcrypt-hashed password. Never exposed outside the domain.
	Role         Role      // The account role: retail customer, distributor, or sales representative.
	FirstName    string
	LastName     string
	Phone        string
	Active       bool // Deactivated accounts are rejected at login and at the request gate.

	RetailProfile      *RetailProfile      // Non-nil only for retail customers.
	DistributorProfile *DistributorProfile // Non-nil only for distributors.
	SalesRepProfile    *SalesRepProfile    // Non-nil only for sales representatives.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in outbound mail.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RetailProfile holds data specific to the retail customer role.
type RetailProfile struct {
	UserID          uuid.UUID // Foreign key linking this profile to a core User entity.
	ShippingAddress string
	BillingAddress  string
	City            string
	State           string
	ZipCode         string
	Country         string
	UpdatedAt       time.Time
}

// DistributorProfile holds data specific to the distributor role.
// Distributors start in ApprovalPending and must be approved by a sales
// representative before gated routes admit them.
type DistributorProfile struct {
	ID                         uuid.UUID
	UserID                     uuid.UUID
	CompanyName                string
	BusinessRegistrationNumber string
	TaxID                      string
	BusinessAddress            string
	City                       string
	State                      string
	ZipCode                    string
	Country                    string
	ApprovalStatus             ApprovalStatus
	ApprovedBy                 *uuid.UUID // Sales representative who decided; nil while pending.
	ApprovedAt                 *time.Time
	RejectionReason            string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time

	// User is populated on listing queries that join account data.
	User *User
}

// SalesRepProfile holds data specific to the sales representative role.
type SalesRepProfile struct {
	UserID     uuid.UUID
	EmployeeID string // Unique within the company.
	Department string
	Territory  string
	ManagerID  *uuid.UUID
	HireDate   time.Time
	UpdatedAt  time.Time
}
