package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the admin panel stores its signed session in.
const SessionCookieName = "admin_session"

var ErrInvalidSession = errors.New("invalid or expired session")

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies the admin session token: an HS256-signed
// blob carrying only the username, valid for a fixed expiry window.
type SessionManager struct {
	secretKey []byte
	expiry    time.Duration
	username  string
	password  string
}

func NewSessionManager(secretKey, username, password string, expiry time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		username:  username,
		password:  password,
	}
}

// VerifyCredentials checks the supplied pair against the configured static
// admin credentials. Plain string comparison, as the system stores no
// password hashes.
func (m *SessionManager) VerifyCredentials(username, password string) bool {
	return username == m.username && password == m.password
}

func (m *SessionManager) CreateToken(username string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken returns the username encoded in a valid session token.
func (m *SessionManager) VerifyToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return "", ErrInvalidSession
	}

	return claims.Username, nil
}

// Expiry exposes the configured session lifetime for cookie max-age.
func (m *SessionManager) Expiry() time.Duration {
	return m.expiry
}
