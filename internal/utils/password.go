package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxLength is bcrypt's input limit in bytes. Longer passwords are
// truncated before hashing and verification, so any password the policy
// accepts hashes successfully and still verifies.
const bcryptMaxLength = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxLength {
		b = b[:bcryptMaxLength]
	}
	return b
}

// HashPassword hashes a plaintext password using bcrypt. The result embeds
// the salt and cost, so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}
