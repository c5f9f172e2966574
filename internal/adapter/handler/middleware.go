package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/services"
)

const requestContextKey = "requestContext"

// Claims is the verified token payload. Token issuance lives outside this
// service; only verification happens here.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token and stores the caller identity as
// a services.RequestContext for the handlers.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "message": "missing bearer token"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "message": "invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "message": "invalid token"})
			return
		}

		c.Set(requestContextKey, services.RequestContext{
			UserID: userID,
			Role:   domain.Role(claims.Role),
		})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		rctx := requestContext(c)
		for _, role := range roles {
			if rctx.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": false, "message": "forbidden"})
	}
}

func requestContext(c *gin.Context) services.RequestContext {
	rctx, _ := c.MustGet(requestContextKey).(services.RequestContext)
	return rctx
}
