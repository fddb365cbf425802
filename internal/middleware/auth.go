package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "zebratime/internal/pkg/jwt"
	"zebratime/internal/repository"
)

// JWTAuth validates the Authorization bearer token and stores user_id/role
// in the request context.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			abortAuth(c, "Missing or malformed Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortAuth(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortAuth(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func abortAuth(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// OwnershipChecker verifies that the authenticated user owns the business
// addressed by the route.
type OwnershipChecker struct {
	businesses *repository.BusinessRepository
}

func NewOwnershipChecker(businesses *repository.BusinessRepository) *OwnershipChecker {
	return &OwnershipChecker{businesses: businesses}
}

// CheckBusinessOwnership expects the business ID in URL param "id".
func (oc *OwnershipChecker) CheckBusinessOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			abortAuth(c, "Authentication required")
			return
		}

		businessID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_ID", "message": "Invalid business ID"},
			})
			return
		}

		business, err := oc.businesses.GetByID(c.Request.Context(), businessID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"code": "NOT_FOUND", "message": "Business not found"},
			})
			return
		}

		if business.OwnerID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "You don't own this business"},
			})
			return
		}

		c.Set("business_id", business.ID)
		c.Next()
	}
}
