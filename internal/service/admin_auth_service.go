package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/PrajwalVN/parking-booking/internal/errors"
)

// AdminAuthService checks the single configured administrator identity
// and issues session tokens for the admin console.
type AdminAuthService interface {
	Login(username, password string) (string, error)
	Validate(token string) error
}

type adminAuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
}

// NewAdminAuthService hashes the configured password up front so login
// runs a bcrypt comparison rather than a string equality check.
func NewAdminAuthService(username, password, secret string) (AdminAuthService, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("admin username and password cannot be empty")
	}
	if secret == "" {
		return nil, fmt.Errorf("token secret cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}
	return &adminAuthService{
		username:     username,
		passwordHash: hash,
		secret:       []byte(secret),
	}, nil
}

// Login returns a signed session token. Tokens carry a unique id and
// issue time but no expiry; they stay valid until the secret rotates.
func (s *adminAuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": s.username,
		"jti": uuid.NewString(),
		"iat": time.Now().UTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

func (s *adminAuthService) Validate(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return apperrors.ErrUnauthorized
	}
	return nil
}
