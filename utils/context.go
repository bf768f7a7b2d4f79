package utils

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// StoreLoggerInContextMiddleware attaches the logger to every request context
// so that downstream code can retrieve it with LoggerFromContext.
func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		newContext := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return logger
}
