// Package middleware implements the per-endpoint request pipeline stages:
// credential extraction, login and admin gates, and panic recovery. Each
// stage either passes the request on or short-circuits with exactly one
// taxonomy error response.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/models"
)

// contextKeyUser is the gin context key holding the resolved principal.
const contextKeyUser = "currentUser"

// APIKey extracts the caller's opaque credential from the Authorization
// header. Absence yields the empty string, never an error.
func APIKey(c *gin.Context) string {
	return c.GetHeader("Authorization")
}

// IsAdmin reports whether the caller's key is on the static admin allow-list.
// Membership is an exact string match.
func IsAdmin(c *gin.Context, adminKeys []string) bool {
	key := APIKey(c)
	if key == "" {
		return false
	}
	for _, admin := range adminKeys {
		if key == admin {
			return true
		}
	}
	return false
}

// RequireLogin resolves the caller's api key to a user and stores it in the
// context. A missing or unmatched key short-circuits with an authentication
// error.
func RequireLogin(store *datastore.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := APIKey(c)
		if key == "" {
			apierrors.Respond(c, apierrors.NewAuthentication("This endpoint requires an api key"))
			return
		}

		user, err := store.UserByKey(c.Request.Context(), key)
		if err != nil {
			apierrors.Respond(c, apierrors.NewAuthentication("This endpoint requires login"))
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// RequireAdmin short-circuits unless the caller's key is on the admin
// allow-list.
func RequireAdmin(adminKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c, adminKeys) {
			apierrors.Respond(c, apierrors.NewAuthentication("User is not an admin"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal resolved by RequireLogin.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
