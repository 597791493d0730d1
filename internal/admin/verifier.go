package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks admin credentials. Implementations must not reveal which of
// the two values was wrong.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
}

// StaticVerifier accepts a single account whose password is stored as a bcrypt
// hash.
type StaticVerifier struct {
	email string
	hash  []byte
}

func NewStaticVerifier(email, passwordHash string) (*StaticVerifier, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("admin email is empty")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return &StaticVerifier{email: email, hash: []byte(passwordHash)}, nil
}

func (v *StaticVerifier) Verify(_ context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(v.email)) == 1
	// always run bcrypt so a wrong email costs the same as a wrong password
	pwErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if !emailOK || pwErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
