package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLength is the bcrypt input limit; longer passwords would be
// silently truncated by the algorithm, so they are rejected instead.
const maxPasswordLength = 72

var (
	// ErrEmptyPassword is returned by HashPassword for an empty input.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooLong is returned by HashPassword when the input exceeds
	// the 72-byte bcrypt limit.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")
)

// HashPassword derives a one-way bcrypt hash of the given password using the
// default cost. The returned string encodes the algorithm identifier, cost,
// and a per-call random salt, so two calls with the same input produce
// different hashes.
//
// Returns [ErrEmptyPassword] or [ErrPasswordTooLong] on invalid input.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashBytes), nil
}

// VerifyPassword reports whether password matches the given bcrypt hash.
// The comparison inside bcrypt is constant-time with respect to the digest.
func VerifyPassword(password, hashString string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashString), []byte(password)) == nil
}
