package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxUserIDKey = "userID"

// accessToken reads "Authorization: Bearer <token>", falling back to the access_token cookie.
func accessToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	if tok, err := c.Cookie("access_token"); err == nil {
		return tok
	}
	return ""
}

// UserID returns the verified caller set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
