package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/riskdesk/riskdesk-backend/api"
	"github.com/riskdesk/riskdesk-backend/infra"
	"github.com/riskdesk/riskdesk-backend/repositories"
	"github.com/riskdesk/riskdesk-backend/usecases"
	"github.com/riskdesk/riskdesk-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "riskdesk-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		ScoreTimeout:        time.Duration(utils.GetEnv("SCORE_TIMEOUT_SECOND", 5)) * time.Second,
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	serverConfig := struct {
		loggingFormat string
		sentryDsn     string
		modelName     string
		backendName   string
	}{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		modelName:     utils.GetEnv("RISK_MODEL_NAME", usecases.DefaultModelName),
		backendName:   utils.GetEnv("RISK_BACKEND_NAME", usecases.DefaultBackendName),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	repos := repositories.NewRepositories()

	uc := usecases.NewUsecases(repos,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithModelName(serverConfig.modelName),
		usecases.WithBackendName(serverConfig.backendName),
	)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrap(err, "Error while shutting down the server"),
		)
		return err
	}

	return nil
}
