package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
)

// Recovery converts a panicking handler into an internal-error response. The
// panic value travels outbound only as an opaque child-cause string; the full
// detail stays in the server log.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"path":  c.Request.URL.Path,
					"panic": fmt.Sprint(r),
				}).Error("handler panicked")
				apierrors.Respond(c, apierrors.NewInternal(
					"Handler raised unhandled error",
					"request dispatch",
					fmt.Errorf("%v", r),
				))
			}
		}()
		c.Next()
	}
}
