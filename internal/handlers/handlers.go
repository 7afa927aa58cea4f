// Package handlers contains the per-endpoint HTTP handler bodies. Handlers
// bind the request body, call the datastore, and emit either a typed DTO or a
// taxonomy error; they hold no consistency rules of their own.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
)

// bindJSON binds the request body into req. On failure it writes the uniform
// bad-format error and returns false; the handler body must not run.
func bindJSON(c *gin.Context, req interface{}, name string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.Respond(c, apierrors.NewRequest("Bad request format for "+name))
		return false
	}
	return true
}
