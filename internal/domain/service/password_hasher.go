// Package service defines interfaces for domain services whose concrete
// implementations live in infra: password hashing, sessions, QR codes and
// event publishing. Usecases depend on these, never on the implementations.
package service

// PasswordHasher hashes and verifies account passwords. The algorithm
// (bcrypt in production) stays behind this interface so the domain and the
// usecases never see it.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
