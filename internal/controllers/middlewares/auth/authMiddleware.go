package authMiddleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-social/pkg/tools/parseErrors"
)

const (
	AuthorizationHeaderKey  = "authorization"
	AuthorizationTypeBearer = "bearer"
	AuthorizationPayloadKey = "authorization_payload"
)

var (
	errMissingAuthorization = errors.New("authorization not provided")
	errInvalidHeaderFormat  = errors.New("invalid authorization header format")
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token payload in the context under AuthorizationPayloadKey
func AuthMiddleware(tokenMaker tokenAuth.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(AuthorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errMissingAuthorization))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errInvalidHeaderFormat))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization format %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		ctx.Set(AuthorizationPayloadKey, payload)
		ctx.Next()
	}
}

// Payload returns the token payload stored by AuthMiddleware. It panics when
// called from a route the middleware doesn't guard.
func Payload(ctx *gin.Context) *tokenAuth.Payload {
	return ctx.MustGet(AuthorizationPayloadKey).(*tokenAuth.Payload)
}
