package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
)

// SessionCookieName is the cookie the dashboard stores the session token in.
const SessionCookieName = "session_token"

var errUnauthenticated = apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, the session cookie. The dashboard is cookie-credentialed;
// the header form exists for API clients and tests.
func TokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// AuthRequired is a gin middleware that validates the session token.
// Unauthenticated requests get a 401 envelope, which the dashboard treats
// as "no session" rather than an error.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			response.AbortError(c, errUnauthenticated)
			return
		}

		claims, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			response.AbortError(c, errUnauthenticated)
			return
		}

		// Store user info into gin context for later handlers.
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}
