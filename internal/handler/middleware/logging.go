package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"hotel-folio/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

// NewLogger builds the process logger (JSON in release mode, text otherwise) and installs it as slog's default.
func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware tags the request with an id (reusing a sane inbound X-Request-ID) and logs
// one line when it starts and one when it completes, with the desk operator and folio path params.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := inboundRequestID(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = l.newRequestID(start)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		// operator claims are only set once auth has run
		if name, role := operatorFromContext(c); name != "" {
			attrs = append(attrs, slog.String("operator", name), slog.String("role", role))
		}
		attrs = appendParam(attrs, c, "id", "reservation_id")
		attrs = appendParam(attrs, c, "source", "charge_source")

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), levelForStatus(status), "Request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func appendParam(attrs []slog.Attr, c *gin.Context, param, key string) []slog.Attr {
	if v := c.Param(param); v != "" {
		return append(attrs, slog.String(key, v))
	}
	return attrs
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func (l *Logger) newRequestID(at time.Time) string {
	return at.In(l.timezone).Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// inboundRequestID accepts a caller-supplied id made of printable ASCII without spaces.
func inboundRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r <= ' ' || r > '~' {
			return ""
		}
	}
	return id
}

func operatorFromContext(c *gin.Context) (name, role string) {
	claims, ok := c.Get(ctxClaimsKey)
	if !ok {
		return "", ""
	}
	m, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	name, _ = m["operator"].(string)
	role, _ = m["role"].(string)
	return name, role
}
