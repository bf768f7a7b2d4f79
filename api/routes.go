package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	timeout "github.com/vearne/gin-timeout"

	"github.com/riskdesk/riskdesk-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/", handleHealth(uc))
	r.POST("/score", timeoutMiddleware(conf.ScoreTimeout), handleScoreCase(uc))
	r.POST("/feedback", handlePostFeedback(uc))
	r.GET("/analytics", handleOverrideAnalytics(uc))
}
