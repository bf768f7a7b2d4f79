package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/riskdesk/riskdesk-backend/api/middleware"
	"github.com/riskdesk/riskdesk-backend/utils"
)

// The API is consumed by a demo front-end that may be served from anywhere, so
// cross-origin requests are accepted from any origin. Preflight requests are
// answered by the cors middleware with a 204.
func corsOption() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost,
		},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
}

func InitRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	loggingOpts := []middleware.LoggerOption{}
	if conf.RequestLoggingLevel != "all" {
		loggingOpts = append(loggingOpts, middleware.WithIgnorePath([]string{"/liveness"}))
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsOption()))
	r.Use(middleware.NewLogging(logger, loggingOpts...))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}
