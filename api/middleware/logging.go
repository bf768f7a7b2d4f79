package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type requestLogger struct {
	logger      *slog.Logger
	ignorePaths map[string]struct{}
}

type LoggerOption func(*requestLogger)

func WithIgnorePath(paths []string) LoggerOption {
	return func(l *requestLogger) {
		for _, path := range paths {
			l.ignorePaths[path] = struct{}{}
		}
	}
}

// NewLogging emits one log line per handled request. The level follows the
// response class: 4xx logs at warn (a rejected case or feedback payload is a
// client problem), 5xx at error.
func NewLogging(logger *slog.Logger, options ...LoggerOption) gin.HandlerFunc {
	l := &requestLogger{
		logger:      logger,
		ignorePaths: map[string]struct{}{},
	}
	for _, option := range options {
		option(l)
	}

	return func(c *gin.Context) {
		if _, ok := l.ignorePaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		attributes := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attributes = append(attributes, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, route), attributes...)
	}
}
