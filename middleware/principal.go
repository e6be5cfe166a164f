package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PrincipalHeader carries the authenticated user id forwarded by the
// upstream auth gateway, which has already validated the bearer token.
const PrincipalHeader = "X-User-ID"

// PrincipalError represents a principal extraction error
type PrincipalError struct {
	Code    string
	Message string
}

func (e *PrincipalError) Error() string {
	return e.Message
}

// RequirePrincipal ensures the request carries an authenticated user id and
// stores it in the Gin context for handlers to pass explicitly into the core
// operations that record created_by/closed_by.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(PrincipalHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing authenticated user",
				},
			})
			return
		}

		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid authenticated user",
				},
			})
			return
		}

		c.Set("user_id", uint(userID))
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, &PrincipalError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, &PrincipalError{Code: "INVALID_USER_ID", Message: "User ID has an unexpected type"}
	}

	return id, nil
}
