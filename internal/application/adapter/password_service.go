package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password with a salted one-way algorithm.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}
