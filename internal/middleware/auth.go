package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kvnhng/quizmint/config"
	"github.com/kvnhng/quizmint/internal/dto"
	"github.com/kvnhng/quizmint/internal/util"
	"github.com/rs/zerolog/log"
)

const claimsKey = "claims"

// RequireAuth validates the bearer token and stores the parsed claims on the
// request context. Aborts with 401 on a missing or invalid token.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing bearer token"})
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			log.Warn().Err(err).Msg("Rejected invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireAuth, or nil when the
// request was not authenticated.
func ClaimsFromContext(c *gin.Context) *util.Claims {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*util.Claims)
	if !ok {
		return nil
	}
	return claims
}
