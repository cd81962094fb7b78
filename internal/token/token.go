// Package token issues and verifies the signed, time-limited bearer
// credentials used by the API.
package token

import (
	"errors"
	"time"

	"rebowork/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissing = errors.New("token missing")
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Kind separates short-lived access tokens from refresh tokens so one can
// never stand in for the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims are embedded in every token.
type Claims struct {
	UserID      string     `json:"user_id"`
	Username    string     `json:"username"`
	StatusIndex model.Role `json:"status_index"`
	Kind        Kind       `json:"kind"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens with a shared secret.
type Manager struct {
	secret []byte
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), now: time.Now}
}

// Issue signs an access token for u that expires after ttl.
func (m *Manager) Issue(u *model.User, ttl time.Duration) (string, error) {
	return m.sign(u, KindAccess, ttl)
}

// IssueRefresh signs a refresh token for u that expires after ttl.
func (m *Manager) IssueRefresh(u *model.User, ttl time.Duration) (string, error) {
	return m.sign(u, KindRefresh, ttl)
}

func (m *Manager) sign(u *model.User, kind Kind, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:      u.ID,
		Username:    u.Username,
		StatusIndex: u.StatusIndex,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks an access token's signature and expiry. An empty string
// yields ErrMissing, an otherwise genuine but stale token ErrExpired,
// anything else ErrInvalid.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	return m.verify(tokenStr, KindAccess)
}

// VerifyRefresh is Verify for refresh tokens.
func (m *Manager) VerifyRefresh(tokenStr string) (*Claims, error) {
	return m.verify(tokenStr, KindRefresh)
}

func (m *Manager) verify(tokenStr string, kind Kind) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissing
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid || claims.Username == "" || !claims.StatusIndex.Valid() || claims.Kind != kind {
		return nil, ErrInvalid
	}
	return claims, nil
}
