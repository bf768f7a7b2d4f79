package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/riskdesk/riskdesk-backend/dto"
	"github.com/riskdesk/riskdesk-backend/models"
	"github.com/riskdesk/riskdesk-backend/usecases"
)

func handlePostFeedback(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.FeedbackBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
				Error:   models.InvalidFeedbackMessage,
				Details: dto.ValidationErrorDetails(err),
			})
			return
		}

		usecase := uc.NewFeedbackUseCase()
		err := usecase.SubmitFeedback(ctx, dto.AdaptFeedbackRecord(body))
		if errors.Is(err, models.ErrInvalidFeedback) {
			c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
				Error: models.InvalidFeedbackMessage,
			})
			return
		}
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
