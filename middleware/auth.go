package middleware

import (
	"net/http"
	"strings"

	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "userID"
	ContextCompanyID = "companyID"
	ContextRole      = "role"
)

// Protect verifies the Bearer token and stores the identity context
// (user, company, role) for downstream handlers. Every tenant-scoped
// operation reads the company from here, never from the request body.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or malformed token"})
			return
		}

		claims, err := utils.ParseAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextCompanyID, claims.CompanyID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// Authorize allows only the named roles past. Must run after Protect.
func Authorize(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "you do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

// CompanyID returns the authenticated caller's tenant.
func CompanyID(c *gin.Context) uint {
	if v, ok := c.Get(ContextCompanyID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// UserID returns the authenticated caller's user id.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
