package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// IdentityHeader carries the anonymous client identifier.
const IdentityHeader = "userid"

const clientIDKey = "clientID"

// Identity stores the caller's ClientID in the context when the header is
// present. Routes that need it add RequireIdentity.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := entity.ParseClientID(c.GetHeader(IdentityHeader)); err == nil {
			c.Set(clientIDKey, id)
		}
		c.Next()
	}
}

// RequireIdentity aborts with errs.MissingIdentity when no usable header
// was sent.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := entity.ParseClientID(c.GetHeader(IdentityHeader)); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClientIDFrom returns the ClientID stored by Identity, or the zero value.
func ClientIDFrom(c *gin.Context) entity.ClientID {
	v, ok := c.Get(clientIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(entity.ClientID)
	return id
}
