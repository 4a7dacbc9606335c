package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, mis-signed, and expired tokens. Callers
// see one failure shape regardless of which check rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager handles issuing and validating signed access tokens.
type TokenManager struct {
	keys *KeyPair
	ttl  time.Duration
}

// NewTokenManager builds a new manager. ttl is the default token lifetime
// used when Issue receives a non-positive one.
func NewTokenManager(keys *KeyPair, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenManager{keys: keys, ttl: ttl}
}

// Claims is the closed claim set carried by access tokens. Subject holds the
// principal's email. Extra is the extension point for additional claims; no
// free-form claim keys exist outside it.
type Claims struct {
	Extra map[string]string `json:"ext,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for the subject. Expiration is always set: now + ttl,
// or the manager default when ttl is non-positive.
func (tm *TokenManager) Issue(subject string, extra map[string]string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = tm.ttl
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		Extra: extra,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tm.keys.Method, claims)
	tokenString, err := token.SignedString(tm.keys.SigningKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Decode validates a token and returns its claims. Verification uses the
// public key only; the signing key is never consulted here.
func (tm *TokenManager) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != tm.keys.Method.Alg() {
			return nil, ErrInvalidToken
		}
		return tm.keys.VerifyKey, nil
	}, jwt.WithValidMethods([]string{tm.keys.Method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
