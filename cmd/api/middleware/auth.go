package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/auth"
	"opsdesk/cmd/api/trace"
	"opsdesk/cmd/internal/logger"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

var errInvalidToken = errors.New("invalid_token")

// TokenVerifier validates an access token and returns its subject and role.
type TokenVerifier interface {
	Parse(token string) (userID string, role string, err error)
}

// RequireRoles 는 Bearer JWT 를 검증하고 role 이 roles 중 하나인지 확인한다.
// roles 가 비어 있으면 인증만 요구한다.
func RequireRoles(verifier TokenVerifier, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, role, err := verifier.Parse(token)
		if err != nil {
			logger.DebugWithFields("token rejected", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			auth.AbortWithUnauthorized(c, errInvalidToken)
			return
		}

		if _, ok := allowed[role]; len(allowed) > 0 && !ok {
			logger.WarnWithFields("access denied", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"user_id":    userID,
				"role":       role,
				"path":       c.FullPath(),
			})
			auth.AbortWithForbidden(c)
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRole, role)
		c.Next()
	}
}
