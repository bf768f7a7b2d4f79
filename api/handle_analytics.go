package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskdesk/riskdesk-backend/dto"
	"github.com/riskdesk/riskdesk-backend/usecases"
)

func handleOverrideAnalytics(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewAnalyticsUseCase()
		summary, err := usecase.OverrideSummary(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptOverrideSummaryDto(summary))
	}
}
