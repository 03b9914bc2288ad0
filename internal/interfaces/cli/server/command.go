// Package server implements the `server` CLI command: wire the stack and
// run the HTTP server until interrupted.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"helpdesk/internal/application/gateway"
	appkb "helpdesk/internal/application/knowledge"
	apptk "helpdesk/internal/application/ticket"
	"helpdesk/internal/application/triage"
	appuser "helpdesk/internal/application/user"
	"helpdesk/internal/domain/classification"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP server with the configured store and classifier.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"store_driver", cfg.Database.Driver)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	table, err := classification.LoadTable(cfg.Classifier.TablePath)
	if err != nil {
		return fmt.Errorf("failed to load classification table: %w", err)
	}
	classifier := classification.NewClassifier(table)

	gw := buildGateway(cfg)

	ticketService := apptk.NewService(gw, classifier, logger.NewLogger())
	triageService := triage.NewService(classifier, logger.NewLogger())
	knowledgeService := appkb.NewService(gw, logger.NewLogger())
	userService := appuser.NewService(gw, logger.NewLogger())

	router := httpRouter.NewRouter(ticketService, triageService, knowledgeService, userService, cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildGateway selects the store implementation by driver. Driver "none"
// wires the no-op store so the service runs fully in memoryless mode.
func buildGateway(cfg *config.Config) *gateway.Gateway {
	log := logger.NewLogger()

	db := database.Get()
	if db == nil {
		return gateway.New(
			repository.NewNoopTicketRepository(),
			repository.NewNoopUserRepository(),
			repository.NewNoopKnowledgeRepository(),
			log,
		)
	}

	return gateway.New(
		repository.NewTicketRepository(db),
		repository.NewUserRepository(db),
		repository.NewKnowledgeRepository(db),
		log,
	)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
