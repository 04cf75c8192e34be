package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of password. Repeated calls
// on the same plaintext yield different digests.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the bcrypt digest. The
// comparison runs in constant time relative to the digest contents and
// returns false on any mismatch, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
