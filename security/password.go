// Package security contains everything related to the security of user data
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher struct {
	Cost int
}

func New() *PasswordHasher {
	return &PasswordHasher{
		Cost: 10,
	}
}

func (h *PasswordHasher) GenerateFromPassword(p string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p), h.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPasswd compares a password p with the stored bcrypt hash e. A
// mismatch is reported as ok=false, any other failure as an error
func (h *PasswordHasher) VerifyPasswd(p, e string) (ok bool, err error) {
	err = bcrypt.CompareHashAndPassword([]byte(e), []byte(p))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
