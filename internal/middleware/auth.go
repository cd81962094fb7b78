package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"rebowork/internal/apierror"
	"rebowork/internal/model"
	"rebowork/internal/service"
	"rebowork/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey = "claims"
)

// Sub-reasons reported with every 401 from JWTAuth.
const (
	ReasonMissing = "missing"
	ReasonExpired = "expired"
	ReasonInvalid = "invalid"
)

// AccountLookup resolves the live account behind a token.
type AccountLookup interface {
	Lookup(ctx context.Context, username string) (*model.User, error)
}

// JWTAuth validates the Bearer token on every protected route. When accounts
// is non-nil the account is re-read on each request: tokens of deleted
// accounts are rejected and the live role rank replaces the claimed one.
func JWTAuth(tokens *token.Manager, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("authentication required", ReasonMissing))
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		switch {
		case errors.Is(err, token.ErrMissing):
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("authentication required", ReasonMissing))
			return
		case errors.Is(err, token.ErrExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("token expired", ReasonExpired))
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("token invalid", ReasonInvalid))
			return
		}

		if accounts != nil {
			user, err := accounts.Lookup(c.Request.Context(), claims.Username)
			if errors.Is(err, service.ErrNotFound) {
				log.Info().Str("username", claims.Username).Msg("token for unknown account rejected")
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("token invalid", ReasonInvalid))
				return
			}
			if err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
			claims.UserID = user.ID
			claims.StatusIndex = user.StatusIndex
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose role rank is not in the allowed list.
// It must run after JWTAuth.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := model.NewRoleSet(roles...)
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.WithReason("authentication required", ReasonMissing))
			return
		}
		if !allowed.Contains(claims.StatusIndex) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *token.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
