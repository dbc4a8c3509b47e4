package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/domain/session"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
)

const (
	// SessionCookie carries the session token for browser clients
	SessionCookie = "session"
	sessionKey    = "session"
)

// SessionAuthenticator rebuilds a session from its token
type SessionAuthenticator interface {
	Authenticate(token string) (*session.Session, error)
}

// AuthMiddleware requires a logged-in session, read from a bearer token or
// from the session cookie
func AuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFrom(c)
		if !ok {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		sess, err := auth.Authenticate(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session when one is presented and a
// logged-out session otherwise
func OptionalAuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Anonymous()
		if token, ok := tokenFrom(c); ok {
			if s, err := auth.Authenticate(token); err == nil {
				sess = s
			}
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireView moves the session to view. It must run after AuthMiddleware.
func RequireView(view session.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if err := sess.Navigate(view); err != nil {
			response.Unauthorized(c, "Login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the session of the request, logged out when none was
// attached
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return session.Anonymous()
}

func tokenFrom(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
