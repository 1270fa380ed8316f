// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleRetailCustomer indicates an end-consumer account with retail pricing.
	RoleRetailCustomer Role = "retail_customer"
	// RoleDistributor indicates a wholesale account subject to approval.
	RoleDistributor Role = "distributor"
	// RoleSalesRep indicates an internal staff account with admin capabilities.
	RoleSalesRep Role = "sales_representative"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRetailCustomer, RoleDistributor, RoleSalesRep:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ApprovalStatus tracks a distributor application through review.
// Transitions: pending -> approved | rejected. Decided states are terminal.
type ApprovalStatus string

const (
	// ApprovalPending is the initial status assigned at registration.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved unlocks distributor-gated routes.
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalRejected blocks gated routes; the decision carries a reason.
	ApprovalRejected ApprovalStatus = "rejected"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsDecision reports whether the status is a terminal review outcome.
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}
