package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"

	"github.com/riskdesk/riskdesk-backend/api"
	"github.com/riskdesk/riskdesk-backend/repositories"
	"github.com/riskdesk/riskdesk-backend/usecases"
	"github.com/riskdesk/riskdesk-backend/utils"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	conf := api.Configuration{
		Env:            "test",
		AppName:        "riskdesk-backend",
		Port:           "0",
		ScoreTimeout:   5 * time.Second,
		DefaultTimeout: 5 * time.Second,
	}

	// Each test gets its own feedback log, the store is process-wide otherwise.
	repos := repositories.NewRepositories(
		repositories.WithFeedbackRepository(repositories.NewInMemoryFeedbackRepository()),
	)

	uc := usecases.NewUsecases(repos,
		usecases.WithAppName(conf.AppName),
	)

	router := api.InitRouterMiddlewares(ctx, conf)
	server := api.NewServer(router, conf, uc, api.WithLocalTest(true))

	testServer := httptest.NewServer(server.Handler)
	t.Cleanup(testServer.Close)
	return testServer
}

func TestApiEndToEnd(t *testing.T) {
	testServer := setupTestServer(t)
	e := httpexpect.Default(t, testServer.URL)

	e.GET("/liveness").Expect().Status(http.StatusOK)

	// Health lists the endpoints of the service
	health := e.GET("/").
		Expect().Status(http.StatusOK).
		JSON().Object()
	health.Value("ok").Boolean().IsTrue()
	health.Value("service").String().IsEqual("riskdesk-backend")
	health.Value("endpoints").Array().NotEmpty()

	// Score the canonical risky case
	score := e.POST("/score").
		WithJSON(map[string]any{
			"case": map[string]any{
				"id":      "case-123",
				"type":    "transaction",
				"summary": "Urgent wire transfer requested by new vendor",
				"amount":  1200,
			},
		}).
		Expect().Status(http.StatusOK).
		JSON().Object()
	score.Value("case_id").String().IsEqual("case-123")
	score.Value("risk_score").Number().IsEqual(85)
	score.Value("verdict").String().IsEqual("reject")
	score.Value("confidence").Number().IsEqual(0.85)
	score.Value("signals").Array().IsEqual([]string{"high_amount", "urgency_language", "high_risk_payment"})
	score.Value("model").String().IsEqual("heuristic-mvp")
	score.Value("backend").String().IsEqual("local")
	score.Value("timestamp").String().NotEmpty()

	// A benign case keeps the baseline score and gets a generated id
	benign := e.POST("/score").
		WithJSON(map[string]any{
			"case": map[string]any{
				"type":    "transaction",
				"summary": "Low-dollar card purchase at known merchant",
				"amount":  12,
			},
		}).
		Expect().Status(http.StatusOK).
		JSON().Object()
	benign.Value("case_id").String().NotEmpty()
	benign.Value("risk_score").Number().IsEqual(20)
	benign.Value("verdict").String().IsEqual("approve")
	benign.Value("signals").Array().IsEmpty()

	// Missing summary is rejected before scoring
	e.POST("/score").
		WithJSON(map[string]any{
			"case": map[string]any{"type": "transaction"},
		}).
		Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Missing required fields")

	// So is an unparseable payload
	e.POST("/score").
		WithHeader("Content-Type", "application/json").
		WithBytes([]byte("{not json")).
		Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Missing required fields")

	// Analytics starts zeroed
	analytics := e.GET("/analytics").
		Expect().Status(http.StatusOK).
		JSON().Object()
	analytics.Value("total_feedback").Number().IsEqual(0)
	analytics.Value("override_rate").Number().IsEqual(0)
	analytics.Value("top_reasons").Array().IsEmpty()

	// An override and a confirmation
	e.POST("/feedback").
		WithJSON(map[string]any{
			"case_id":       "case-123",
			"reviewer":      "alex",
			"action":        "override",
			"final_verdict": "approve",
			"reason_codes":  []string{"false_positive"},
			"notes":         "known vendor, verified out of band",
			"original": map[string]any{
				"verdict":    "reject",
				"risk_score": 85,
				"confidence": 0.85,
				"model":      "heuristic-mvp",
				"backend":    "local",
			},
		}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("ok").Boolean().IsTrue()

	e.POST("/feedback").
		WithJSON(map[string]any{
			"case_id":       "case-456",
			"reviewer":      "sam",
			"action":        "approve",
			"final_verdict": "reject",
		}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("ok").Boolean().IsTrue()

	// Invalid feedback leaves the store untouched
	e.POST("/feedback").
		WithJSON(map[string]any{
			"case_id": "case-789",
			"action":  "override",
		}).
		Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Invalid feedback payload")

	e.POST("/feedback").
		WithJSON(map[string]any{
			"case_id":       "case-789",
			"reviewer":      "alex",
			"action":        "escalate",
			"final_verdict": "approve",
		}).
		Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("error").String().IsEqual("Invalid feedback payload")

	analytics = e.GET("/analytics").
		Expect().Status(http.StatusOK).
		JSON().Object()
	analytics.Value("total_feedback").Number().IsEqual(2)
	analytics.Value("override_rate").Number().IsEqual(0.5)
	topReasons := analytics.Value("top_reasons").Array()
	topReasons.Length().IsEqual(1)
	topReasons.Value(0).Object().Value("reason").String().IsEqual("false_positive")
	topReasons.Value(0).Object().Value("count").Number().IsEqual(1)
}

func TestApiCorsPreflight(t *testing.T) {
	testServer := setupTestServer(t)
	e := httpexpect.Default(t, testServer.URL)

	preflight := e.OPTIONS("/score").
		WithHeader("Origin", "http://example.com").
		WithHeader("Access-Control-Request-Method", http.MethodPost).
		Expect().Status(http.StatusNoContent)
	preflight.Header("Access-Control-Allow-Origin").IsEqual("*")
}
