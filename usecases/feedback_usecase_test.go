package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/riskdesk/riskdesk-backend/mocks"
	"github.com/riskdesk/riskdesk-backend/models"
)

type FeedbackUsecaseTestSuite struct {
	suite.Suite
	repository *mocks.FeedbackRepository
}

func (suite *FeedbackUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.FeedbackRepository)
}

func (suite *FeedbackUsecaseTestSuite) makeUsecase() FeedbackUseCase {
	return FeedbackUseCase{
		repository: suite.repository,
	}
}

func (suite *FeedbackUsecaseTestSuite) AssertExpectations() {
	suite.repository.AssertExpectations(suite.T())
}

func validFeedbackRecord() models.FeedbackRecord {
	return models.FeedbackRecord{
		CaseId:       "case-1",
		Reviewer:     "alex",
		Action:       models.ReviewActionOverride,
		FinalVerdict: models.VerdictApprove,
		ReasonCodes:  []string{"false_positive"},
	}
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_appendsWithReceivedAt() {
	suite.repository.On("Append", mock.MatchedBy(func(record models.FeedbackRecord) bool {
		return record.CaseId == "case-1" &&
			record.Reviewer == "alex" &&
			!record.ReceivedAt.IsZero()
	})).Return(nil)

	err := suite.makeUsecase().SubmitFeedback(context.Background(), validFeedbackRecord())

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_missingCaseId() {
	record := validFeedbackRecord()
	record.CaseId = ""

	err := suite.makeUsecase().SubmitFeedback(context.Background(), record)

	suite.ErrorIs(err, models.ErrInvalidFeedback)
	suite.repository.AssertNotCalled(suite.T(), "Append", mock.Anything)
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_missingReviewer() {
	record := validFeedbackRecord()
	record.Reviewer = ""

	err := suite.makeUsecase().SubmitFeedback(context.Background(), record)

	suite.ErrorIs(err, models.ErrInvalidFeedback)
	suite.repository.AssertNotCalled(suite.T(), "Append", mock.Anything)
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_unknownAction() {
	record := validFeedbackRecord()
	record.Action = models.UnknownReviewAction

	err := suite.makeUsecase().SubmitFeedback(context.Background(), record)

	suite.ErrorIs(err, models.ErrInvalidFeedback)
	suite.repository.AssertNotCalled(suite.T(), "Append", mock.Anything)
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_unknownFinalVerdict() {
	record := validFeedbackRecord()
	record.FinalVerdict = models.UnknownVerdict

	err := suite.makeUsecase().SubmitFeedback(context.Background(), record)

	suite.ErrorIs(err, models.ErrInvalidFeedback)
	suite.repository.AssertNotCalled(suite.T(), "Append", mock.Anything)
}

func (suite *FeedbackUsecaseTestSuite) Test_SubmitFeedback_emptyReasonCodesAllowed() {
	record := validFeedbackRecord()
	record.ReasonCodes = nil
	suite.repository.On("Append", mock.Anything).Return(nil)

	err := suite.makeUsecase().SubmitFeedback(context.Background(), record)

	suite.NoError(err)
	suite.AssertExpectations()
}

func TestFeedbackUsecase(t *testing.T) {
	suite.Run(t, new(FeedbackUsecaseTestSuite))
}
