package domain

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/mandinga/gateway/base/ctx"
)

// AdminClaims is the payload of an admin bearer token
type AdminClaims struct {
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues an HS256 token for subject, valid for ttl
	SignToken(ctx ctx.Ctx, subject string, ttl time.Duration) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (subject string, err error)
}
