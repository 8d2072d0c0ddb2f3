package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referralLength   = 8
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateReferralCode returns a short shareable code. The alphabet skips
// the lookalike characters 0, O, 1 and I.
func GenerateReferralCode() (string, error) {
	bytes := make([]byte, referralLength)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate referral code: %w", err)
	}
	code := make([]byte, referralLength)
	for i, b := range bytes {
		code[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}
	return "REF-" + string(code), nil
}
