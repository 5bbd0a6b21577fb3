package middleware

import (
	"log/slog"
	"net/http"

	"hotel-folio/internal/handler/httperr"
	"hotel-folio/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 8

// ErrorHandler logs the errors handlers attached with httperr.AbortWithError and, when a
// handler attached one without writing, renders the most recent public error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logHandlerError(c, c.Errors.Last())
		}
		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func logHandlerError(c *gin.Context, err *gin.Error) {
	status := c.Writer.Status()
	if resp, ok := err.Meta.(httperr.Response); ok {
		status = resp.Status
	}

	attrs := []any{
		"request_id", GetRequestID(c),
		"status", status,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err.Err.Error(),
	}
	if id := c.Param("id"); id != "" {
		attrs = append(attrs, "reservation_id", id)
	}

	if status >= http.StatusInternalServerError {
		attrs = append(attrs, "stack", errs.ExtractStackLines(err.Err, stackLinesLogged))
		slog.Error("request failed", attrs...)
		return
	}
	slog.Debug("request rejected", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
