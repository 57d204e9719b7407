package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. The salt is generated per
// call, so hashing the same password twice never yields the same string.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
