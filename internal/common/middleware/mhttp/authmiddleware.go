package mhttp

import (
	"circles/internal/common/errcode"
	"circles/internal/common/jwt"
	"circles/internal/common/response"
	"circles/internal/common/session"

	"github.com/gin-gonic/gin"
)

// Auth rejects requests that carry no verified identity. Used on routes
// where authentication gates entry, before any other check.
func Auth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID, ok := identity(c, sessions)
		if !ok {
			response.Abort(c, errcode.ErrUnauthorized)
			return
		}
		c.Set("user_id", userID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// Identity records the caller's identity when present but never aborts.
// Id-scoped group routes use it so that entity existence can be answered
// before authentication is required.
func Identity(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, sessionID, ok := identity(c, sessions); ok {
			c.Set("user_id", userID)
			c.Set("session_id", sessionID)
		}
		c.Next()
	}
}

// UserID is the authenticated caller's id, if any middleware established one.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func identity(c *gin.Context, sessions session.Store) (int64, string, bool) {
	token := c.GetHeader("token")
	if token == "" {
		var ok bool
		token, ok = c.GetQuery("token")
		if !ok {
			return 0, "", false
		}
	}
	userID, sessionID, err := jwt.ParseToken(token)
	if err != nil {
		return 0, "", false
	}
	// a token outliving its session has been logged out
	ok, err := sessions.Exists(c.Request.Context(), userID, sessionID)
	if err != nil || !ok {
		return 0, "", false
	}
	return userID, sessionID, true
}
