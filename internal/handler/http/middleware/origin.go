package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// OriginAdmission rejects requests from origins the policy denies. It runs
// before CORS so a denied preflight gets a 403 instead of a silent 200.
func OriginAdmission(policy usecasecontract.IOriginPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Admit(c.GetHeader("Origin")); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORS writes the response headers for admitted origins and answers
// preflight requests itself.
func CORS(policy usecasecontract.IOriginPolicy) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:           policy.Allows,
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Authorization", "Accept", IdentityHeader},
		ExposeHeaders:             []string{"Content-Length"},
		AllowCredentials:          true,
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}
