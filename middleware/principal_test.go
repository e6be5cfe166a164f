package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupPrincipalRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequirePrincipal(), func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": userID})
	})
	return router
}

func TestRequirePrincipal(t *testing.T) {
	tests := []struct {
		name           string
		headerValue    string
		setHeader      bool
		expectedStatus int
	}{
		{
			name:           "Valid user id",
			headerValue:    "7",
			setHeader:      true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			setHeader:      false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Non-numeric user id",
			headerValue:    "maria",
			setHeader:      true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Zero user id",
			headerValue:    "0",
			setHeader:      true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupPrincipalRouter()

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.setHeader {
				req.Header.Set(PrincipalHeader, tt.headerValue)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUserIDOutsideMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err)

	c.Set("user_id", "not-a-uint")
	_, err = GetUserID(c)
	assert.Error(t, err)

	c.Set("user_id", uint(42))
	userID, err := GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}
