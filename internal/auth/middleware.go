package auth

import (
	"net/http"
	"strings"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// contextUserKey is the gin context key the authenticated identity is
// stored under.
const contextUserKey = "current_user"

// Claims are the JWT claims the CRM issues and consumes
type Claims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware returns a gin middleware validating the bearer token and
// placing the normalized identity into the request context. The role is
// normalized once here; everything downstream works with the enum.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must use Bearer scheme"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}
		if claims.UserID == "" || claims.TenantID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is missing identity claims"})
			return
		}

		user := rbac.User{
			UserID:   claims.UserID,
			TenantID: claims.TenantID,
			Email:    claims.Email,
			Role:     rbac.NormalizeRole(claims.Role),
		}
		c.Set(contextUserKey, user)
		c.Set("user_id", user.UserID)
		c.Set("tenant_id", user.TenantID)
		c.Set("email", user.Email)

		c.Next()
	}
}

// CurrentUser extracts the authenticated identity from the gin context
func CurrentUser(c *gin.Context) (rbac.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return rbac.User{}, false
	}
	user, ok := value.(rbac.User)
	return user, ok
}
