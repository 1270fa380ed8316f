// Package model holds the GORM table definitions. These are exported so the
// GORM Gen tool can reference them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(30);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RetailProfile      *RetailCustomerModel `gorm:"foreignKey:UserID"`
	DistributorProfile *DistributorModel    `gorm:"foreignKey:UserID"`
	SalesRepProfile    *SalesRepModel       `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RetailCustomerModel mirrors the 'retail_customers' table. UserID references users.id (UUID).
type RetailCustomerModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShippingAddress string    `gorm:"type:text"`
	BillingAddress  string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	ZipCode         string    `gorm:"type:varchar(20)"`
	Country         string    `gorm:"type:varchar(100)"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailCustomerModel) TableName() string {
	return "retail_customers"
}

// DistributorModel mirrors the 'distributors' table. Approval columns record
// the review decision alongside the business profile.
type DistributorModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID                     uuid.UUID `gorm:"type:uuid;unique;not null"`
	CompanyName                string    `gorm:"type:varchar(255);not null"`
	BusinessRegistrationNumber string    `gorm:"type:varchar(100)"`
	TaxID                      string    `gorm:"type:varchar(100)"`
	BusinessAddress            string    `gorm:"type:text;not null"`
	City                       string    `gorm:"type:varchar(100)"`
	State                      string    `gorm:"type:varchar(100)"`
	ZipCode                    string    `gorm:"type:varchar(20)"`
	Country                    string    `gorm:"type:varchar(100)"`
	ApprovalStatus             string    `gorm:"type:varchar(20);not null;default:pending;index"`
	ApprovedBy                 *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt                 *time.Time
	RejectionReason            string `gorm:"type:text"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (DistributorModel) TableName() string {
	return "distributors"
}

// SalesRepModel mirrors the 'sales_representatives' table.
type SalesRepModel struct {
	UserID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID string     `gorm:"type:varchar(50);unique;not null"`
	Department string     `gorm:"type:varchar(100)"`
	Territory  string     `gorm:"type:varchar(100)"`
	ManagerID  *uuid.UUID `gorm:"type:uuid"`
	HireDate   time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SalesRepModel) TableName() string {
	return "sales_representatives"
}
