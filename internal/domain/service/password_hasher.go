// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing, verification,
// and strength validation. This abstracts the underlying hashing algorithm
// (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It fails closed: a malformed hash yields false, never an error.
	Check(password, hash string) bool

	// ValidateStrength checks the password against the fixed rule set, in
	// order: minimum length, uppercase, lowercase, digit, special character.
	// It returns the first failing rule's message, or nil when all pass.
	ValidateStrength(password string) error
}
