package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// ErrInvalidToken covers expired, malformed and revoked tokens.
var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated identity resolved for a request.
type Principal struct {
	UserID      int64
	IsStaff     bool
	IsSuperuser bool
}

// Manager issues and verifies HS256 access tokens and keeps opaque refresh
// tokens in Redis under a TTL. Refresh tokens are rotated on use.
type Manager struct {
	secret     []byte
	rdb        *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager returns a new token manager.
func NewManager(secret string, rdb *redis.Client, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		rdb:        rdb,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair creates an access token plus a stored refresh token for the user.
func (m *Manager) IssuePair(ctx context.Context, p Principal) (access, refresh string, err error) {
	access, err = m.signAccess(p)
	if err != nil {
		return "", "", err
	}
	refresh, err = newOpaqueToken()
	if err != nil {
		return "", "", err
	}
	payload := fmt.Sprintf("%d:%t:%t", p.UserID, p.IsStaff, p.IsSuperuser)
	if err := m.rdb.Set(ctx, refreshKeyPrefix+refresh, payload, m.refreshTTL).Err(); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh rotates a refresh token: the old one is revoked and a new pair is
// issued. Unknown or expired tokens return ErrInvalidToken.
func (m *Manager) Refresh(ctx context.Context, refresh string) (string, string, error) {
	key := refreshKeyPrefix + refresh
	payload, err := m.rdb.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", "", ErrInvalidToken
	}
	if err != nil {
		return "", "", err
	}
	p, err := parseRefreshPayload(payload)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	return m.IssuePair(ctx, p)
}

// Revoke drops a refresh token. Revoking an unknown token is not an error.
func (m *Manager) Revoke(ctx context.Context, refresh string) error {
	return m.rdb.Del(ctx, refreshKeyPrefix+refresh).Err()
}

// Verify parses and validates an access token and returns its principal.
func (m *Manager) Verify(tokenString string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return Principal{}, ErrInvalidToken
	}
	staff, _ := claims["staff"].(bool)
	super, _ := claims["super"].(bool)
	return Principal{UserID: userID, IsStaff: staff, IsSuperuser: super}, nil
}

func (m *Manager) signAccess(p Principal) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(p.UserID, 10),
		"staff": p.IsStaff,
		"super": p.IsSuperuser,
		"iat":   now.Unix(),
		"exp":   now.Add(m.accessTTL).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func parseRefreshPayload(s string) (Principal, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Principal{}, fmt.Errorf("bad refresh payload %q", s)
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || userID <= 0 {
		return Principal{}, fmt.Errorf("bad refresh payload %q", s)
	}
	return Principal{
		UserID:      userID,
		IsStaff:     parts[1] == "true",
		IsSuperuser: parts[2] == "true",
	}, nil
}

func newOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
