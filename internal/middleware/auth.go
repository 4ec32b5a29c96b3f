package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDKey   = "user_id"
	TokenCookie = "token"
)

// TokenVerifier returns the user id carried by a session token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth accepts the session cookie or an "Authorization: Bearer" header and stores the
// caller's id under UserIDKey.
func Auth(tokens TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw, _ = c.Cookie(TokenCookie)
		}
		if raw == "" {
			c.Set("error", "missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
