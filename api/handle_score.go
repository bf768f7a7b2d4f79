package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskdesk/riskdesk-backend/dto"
	"github.com/riskdesk/riskdesk-backend/models"
	"github.com/riskdesk/riskdesk-backend/usecases"
)

func handleScoreCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateScoreBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
				Error:   models.MissingCaseFieldsMessage,
				Details: dto.ValidationErrorDetails(err),
			})
			return
		}

		riskCase, err := dto.AdaptCase(*body.Case)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
				Error: models.MissingCaseFieldsMessage,
			})
			return
		}

		usecase := uc.NewScoringUseCase()
		result := usecase.ScoreCase(ctx, riskCase)

		c.JSON(http.StatusOK, dto.AdaptScoreResultDto(result))
	}
}
