package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskdesk/riskdesk-backend/dto"
	"github.com/riskdesk/riskdesk-backend/usecases"
)

func handleHealth(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewHealthUseCase()
		health := usecase.GetHealthStatus(c.Request.Context())

		c.JSON(http.StatusOK, dto.AdaptHealthDto(health))
	}
}
