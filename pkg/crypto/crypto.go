package crypto

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Invite codes are short enough to read over the phone: 8 uppercase
// alphanumerics, 36^8 possible values. Collisions are handled by the
// unique index on the codes table, not here.
const (
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeLength   = 8
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateInviteCode produces a random code from the invite alphabet.
func GenerateInviteCode() (string, error) {
	return gonanoid.Generate(inviteCodeAlphabet, inviteCodeLength)
}
