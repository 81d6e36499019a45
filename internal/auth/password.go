package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. Deliberately CPU-expensive: it is the
// system's only backpressure on credential guessing besides the login limiter.
const hashCost = 10

// HashPassword one-way hashes a plaintext password with a per-call random
// salt. The empty string is hashed like any other input.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. Mismatches
// and malformed hashes both yield false, never an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
