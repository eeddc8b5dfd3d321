package auth

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")

// Guard issues and verifies bearer tokens that carry a user id.
type Guard struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGuard(secret string, ttl time.Duration) *Guard {
	return &Guard{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (g *Guard) Issue(userID uint) (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(g.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// Parse returns the user id from a signed, unexpired token.
func (g *Guard) Parse(token string) (uint, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	id, err := cast.ToUintE(claims["id"])
	if err != nil || id == 0 {
		return 0, errors.Wrap(ErrInvalidToken, fmt.Sprintf("bad id claim %v", claims["id"]))
	}
	return id, nil
}
