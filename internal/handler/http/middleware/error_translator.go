package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// ErrorTranslator is the only place errors become HTTP responses. Handlers and
// middleware record failures with c.Error and abort; this writes the status
// and body once the chain unwinds.
func ErrorTranslator(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		last := c.Errors.Last()
		status, body := Translate(last)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, last.Err)
		}
		c.AbortWithStatusJSON(status, body)
	}
}

// Translate maps a recorded error to its status and response body.
func Translate(ge *gin.Error) (int, dto.ErrorResponse) {
	err := ge.Err
	if ge.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Error: err.Error()}
	}

	var notReady *errs.NotReadyError
	switch {
	case errors.Is(err, errs.ForbiddenOrigin):
		return http.StatusForbidden, dto.ErrorResponse{Message: errs.ForbiddenOrigin.Public()}
	case errors.Is(err, errs.MissingIdentity):
		return http.StatusBadRequest, dto.ErrorResponse{Message: errs.MissingIdentity.Public()}
	case errors.Is(err, errs.ContentRequired):
		return http.StatusBadRequest, dto.ErrorResponse{Message: errs.ContentRequired.Public()}
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: errs.NotFound.Public()}
	case errors.Is(err, errs.RouteNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: errs.RouteNotFound.Public()}
	case errors.As(err, &notReady):
		state := notReady.State
		return http.StatusServiceUnavailable, dto.ErrorResponse{Message: errs.StorageUnavailable.Public(), Status: &state}
	case errors.Is(err, errs.StorageUnavailable):
		return http.StatusServiceUnavailable, dto.ErrorResponse{Message: errs.StorageUnavailable.Public(), Error: err.Error()}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Message: "Server Error", Error: err.Error()}
	}
}

// Recovery turns a panic into a recorded error so the translator answers 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
