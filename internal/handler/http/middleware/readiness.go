package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
)

// Readiness refuses requests while the document store is not connected.
func Readiness(r contract.IReadiness) gin.HandlerFunc {
	return func(c *gin.Context) {
		if state := r.State(); state != contract.ConnConnected {
			_ = c.Error(&errs.NotReadyError{State: int(state)})
			c.Abort()
			return
		}
		c.Next()
	}
}
