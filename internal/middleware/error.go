package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error once the
// handler chain returns. Binding errors become INVALID_INPUT; anything that
// is not an AppError becomes INTERNAL_ERROR and is logged with its cause.
// Nothing is written if a handler already sent a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		var appErr *apperrors.AppError
		if last.IsType(gin.ErrorTypeBind) {
			appErr = apperrors.WithMessage(apperrors.ErrInvalidInput, last.Error())
		} else {
			appErr = apperrors.From(last.Err)
		}

		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"error", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", RequestID(c),
			)
		}
		abortWithError(c, appErr)
	}
}

// abortWithError stops the chain and writes the standard error body.
func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{"code": appErr.Code, "message": appErr.Message},
	})
}
