package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskdesk/riskdesk-backend/models"
)

type FeedbackWriterRepository interface {
	Append(ctx context.Context, record models.FeedbackRecord) error
}

type FeedbackUseCase struct {
	repository FeedbackWriterRepository
}

// SubmitFeedback validates the record and appends it to the feedback log with a
// server-assigned ReceivedAt. The log is not keyed by case: submitting feedback
// twice for the same case id creates two independent records. On a validation
// error the log is left untouched.
func (usecase FeedbackUseCase) SubmitFeedback(ctx context.Context, record models.FeedbackRecord) error {
	if err := validateFeedback(record); err != nil {
		return err
	}

	record.ReceivedAt = time.Now()
	return usecase.repository.Append(ctx, record)
}

func validateFeedback(record models.FeedbackRecord) error {
	if record.CaseId == "" {
		return errors.Wrap(models.ErrInvalidFeedback, "case_id is required")
	}
	if record.Reviewer == "" {
		return errors.Wrap(models.ErrInvalidFeedback, "reviewer is required")
	}
	if record.Action == models.UnknownReviewAction {
		return errors.Wrap(models.ErrInvalidFeedback, "action must be one of approve, override")
	}
	if record.FinalVerdict == models.UnknownVerdict {
		return errors.Wrap(models.ErrInvalidFeedback, "final_verdict must be one of approve, review, reject")
	}
	return nil
}
