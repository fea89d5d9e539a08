// Package auth issues and verifies the service's bearer tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Token lifetime matches the original deployment.
const accessTokenTTL = 30 * time.Minute

// ErrInvalidCredentials is returned for unknown users or bad passwords.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrInvalidToken is returned for missing, malformed, or expired tokens.
var ErrInvalidToken = errors.New("could not validate credentials")

// User is an authenticated caller identity.
type User struct {
	Username string
	Role     string
}

type storedUser struct {
	hashedPassword []byte
	role           string
}

// Service authenticates against a fixed in-memory user table and
// mints HS256 access tokens.
type Service struct {
	secret []byte
	users  map[string]storedUser
}

// NewService creates an auth service with the stock admin/user
// accounts. The secret signs all issued tokens.
func NewService(secret string) (*Service, error) {
	users := map[string]struct {
		password string
		role     string
	}{
		"admin": {"adminpassword", "admin"},
		"user":  {"userpassword", "user"},
	}

	s := &Service{secret: []byte(secret), users: make(map[string]storedUser, len(users))}
	for name, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.users[name] = storedUser{hashedPassword: hash, role: u.role}
	}
	return s, nil
}

// Authenticate checks a username/password pair and returns the user
// identity on success.
func (s *Service) Authenticate(username, password string) (User, error) {
	stored, ok := s.users[username]
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(stored.hashedPassword, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return User{Username: username, Role: stored.role}, nil
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateAccessToken issues a signed bearer token for the user.
func (s *Service) CreateAccessToken(user User) (string, error) {
	now := time.Now()
	c := claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// VerifyToken parses and validates a bearer token, returning the
// embedded user identity.
func (s *Service) VerifyToken(tokenString string) (User, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || c.Subject == "" {
		return User{}, ErrInvalidToken
	}
	return User{Username: c.Subject, Role: c.Role}, nil
}
