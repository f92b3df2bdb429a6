package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"opsdesk/cmd/api/auth"
	"opsdesk/cmd/api/middleware"
	"opsdesk/cmd/api/router"
	"opsdesk/cmd/api/services"
	"opsdesk/cmd/internal/logger"
	"opsdesk/config"
	"opsdesk/db"
	"opsdesk/pagination"
	"opsdesk/repositories"
)

const serviceName = "opsdesk-api"

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Opsdesk back-office API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cfg := config.GetConfig()
			logger.Init(cfg.Logging.Level, serviceName)
		},
		// 서브커맨드 없이 실행하면 serve 로 동작한다.
		RunE: serve.RunE,
	}
	cmd.AddCommand(serve, newEnsureIndexesCmd(), newIssueTokenCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newEnsureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the indexes used by the list endpoints and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, database, err := connect(ctx, config.GetConfig())
			if err != nil {
				return err
			}
			defer disconnect(client)

			if err := db.EnsureIndexes(ctx, database); err != nil {
				return err
			}
			logger.InfoWithFields("indexes ensured", logger.Fields{"database": database.Name()})
			return nil
		},
	}
}

// newIssueTokenCmd 는 로컬 개발용 토큰을 발급한다. 운영 토큰은 인증 서비스가 발급한다.
func newIssueTokenCmd() *cobra.Command {
	var userID, role string
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Sign a development access token with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if config.GetConfig().IsProduction() {
				return errors.New("issue-token is disabled in production")
			}
			tokens, err := auth.NewJWTManagerFromEnv()
			if err != nil {
				return err
			}
			token, err := tokens.Sign(userID, role)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			cmd.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "dev-user", "subject (user id) of the token")
	cmd.Flags().StringVar(&role, "role", auth.RoleAdmin, "role claim of the token")
	return cmd
}

func connect(ctx context.Context, cfg config.AppConfig) (*mongo.Client, *mongo.Database, error) {
	return db.Connect(ctx, cfg.Mongo, func(err error, wait time.Duration) {
		logger.WarnWithFields("mongo not reachable, retrying", logger.Fields{
			"error": err.Error(),
			"wait":  wait.String(),
		})
	})
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.WarnWithFields("mongo disconnect failed", logger.Fields{"error": err.Error()})
	}
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.GetConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		return err
	}

	client, database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer disconnect(client)

	engine := router.New(buildDependencies(cfg, database, tokens))
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{auth.HeaderAuthorization, "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler(engine)

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoWithFields("api listening", logger.Fields{"addr": cfg.App.HTTPAddr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Log.Info("server stopped")
	return nil
}

func buildDependencies(cfg config.AppConfig, database *mongo.Database, tokens middleware.TokenVerifier) router.Dependencies {
	bounds := pagination.Bounds{
		DefaultPage:  1,
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}

	leads := repositories.NewLeadRepository(database, bounds)
	partners := repositories.NewPartnerRepository(database, bounds)
	alerts := repositories.NewAlertRepository(database, bounds)
	templates := repositories.NewSalesTemplateRepository(database, bounds)
	auditLogs := repositories.NewAuditLogRepository(database, bounds)

	return router.Dependencies{
		Config: cfg,
		Health: func(ctx context.Context) error { return db.Ping(ctx, database) },
		Tokens: tokens,
		CRM:    services.NewCRMService(leads, partners, templates),
		Fleet:  services.NewFleetService(alerts),
		Audit:  services.NewAuditService(auditLogs),
	}
}
