package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"

	"github.com/washtime/api/internal/errors"
	"github.com/washtime/api/internal/global"
	"github.com/washtime/api/internal/structures"
)

// ActorKey is the request user-value the authenticated principal is
// stored under.
const ActorKey = "actor"

// principalFields is the projection the gateway needs for every
// authorization decision.
var principalFields = []string{"_id", "email", "isActive", "isAdmin"}

// Auth resolves the bearer token into a principal and attaches it to
// the request. A missing header leaves the request anonymous; a bad
// token is reported but does not block the request, so public fields
// stay reachable.
func Auth(gctx global.Context) Middleware {
	return func(ctx *fasthttp.RequestCtx) *errors.ResponseError {
		h := string(ctx.Request.Header.Peek("Authorization"))
		if len(h) == 0 {
			return nil
		}

		s := strings.Split(h, "Bearer ")
		if len(s) != 2 {
			return errors.New("Bad Authorization Header", "AUTH_ERROR")
		}

		user, err := DoAuth(gctx, ctx, s[1])
		if err != nil {
			return err
		}

		ctx.SetUserValue(ActorKey, user)

		return nil
	}
}

// JWTClaims is the session token payload issued by the auth service.
type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

// DoAuth verifies a session token and loads the principal behind it.
func DoAuth(gctx global.Context, ctx context.Context, t string) (*structures.User, *errors.ResponseError) {
	claims := &JWTClaims{}

	_, err := jwt.ParseWithClaims(t, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Bad Token", "AUTH_ERROR")
		}

		return []byte(gctx.Config().Credentials.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.New("Bad Token", "AUTH_ERROR")
	}

	criteria := claims.Email
	if criteria == "" {
		criteria = claims.UserID
	}
	if criteria == "" {
		return nil, errors.New("Bad Token", "AUTH_ERROR")
	}

	user, ferr := gctx.Inst().User.Fetch(ctx, criteria, principalFields)
	if ferr != nil || user == nil {
		return nil, errors.ErrUnauthorized
	}

	if !user.IsActive {
		return nil, errors.ErrAccountBlocked
	}

	return user, nil
}
