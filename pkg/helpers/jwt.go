package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned when no signing secret is configured.
// Callers map it to a 500 server-misconfiguration response; a token must
// never be signed or accepted with an empty secret.
var ErrMissingSecret = errors.New("jwt signing secret is not configured")

// TokenClaims is the minimal session payload: subject id (registered `sub`),
// username and role. Sessions are stateless, so this is everything the
// server knows about a logged-in caller.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 session tokens with a shared secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager builds a manager whose token lifetime comes from the same
// expiry string the cookie max-age is parsed from.
func NewJWTManager(secret, expiresIn string) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ExpiresInDuration(expiresIn)}
}

// Configured reports whether a signing secret is present.
func (m *JWTManager) Configured() bool { return len(m.secret) > 0 }

// Sign mints a token over {sub, username, role} with the configured expiry.
func (m *JWTManager) Sign(userID, username, role string) (string, error) {
	if !m.Configured() {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := &TokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Bad signature, expiry and malformed input all come back as plain errors;
// callers respond to every failure identically.
func (m *JWTManager) Verify(tokenStr string) (*TokenClaims, error) {
	if !m.Configured() {
		return nil, ErrMissingSecret
	}
	claims := &TokenClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
