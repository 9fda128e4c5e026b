package scope

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"familybridge/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingSub   = errors.New("token has no subject")
)

// Manager issues and verifies bearer tokens.
type Manager interface {
	CreateToken(sc model.Scope, ttl time.Duration) (string, error)
	Verify(token string) (model.Scope, error)
}

// Claims is the JWT payload understood by the service.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	issuer string
}

// New creates an HS256 token Manager.
func New(secretKey, issuer string) Manager {
	return &implManager{secret: []byte(secretKey), issuer: issuer}
}

func (m *implManager) CreateToken(sc model.Scope, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: sc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *implManager) Verify(token string) (model.Scope, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.Scope{}, ErrMissingSub
	}
	return model.Scope{UserID: claims.Subject, Role: claims.Role}, nil
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored by SetScopeToContext, or a zero Scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}
