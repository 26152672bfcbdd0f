package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/ethicalfolio-backend/internal/adapter/grpc"
	"github.com/simaogato/ethicalfolio-backend/internal/adapter/httpapi"
	"github.com/simaogato/ethicalfolio-backend/internal/adapter/repository/memory"
	"github.com/simaogato/ethicalfolio-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/ethicalfolio-backend/internal/config"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/logger"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/audience"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/riskdial"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/seeder"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/session"
)

const (
	dbConnectAttempts = 5
	dbRetryDelay      = 2 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx := context.Background()

	// 2. Initialize Repositories
	catalogRepo := memory.NewCatalogRepository()
	var portfolioRepo domain.PortfolioRepository = catalogRepo

	if cfg.UseDatabase {
		db, err := connectDB(cfg.ConnString(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare database schema")
		}

		portfolioRepo = postgres.NewPortfolioRepository(db)

		created, err := seeder.NewCatalogSeeder(portfolioRepo).Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to seed portfolios")
		}
		log.Info().Int("created", created).Msg("Portfolio catalog seeded")
	}

	sessionRepo := memory.NewSessionRepository()

	// 3. Initialize Services (Use Cases)
	geometry := ringlayout.Geometry{
		OuterRadius: cfg.RingOuterRadius,
		InnerRadius: cfg.RingInnerRadius,
		Center:      chart.DefaultGeometry.Center,
	}

	chartService := chart.NewChartService(portfolioRepo, catalogRepo)
	dialService := riskdial.NewDialService(catalogRepo)
	matrixService := audience.NewMatrixService(catalogRepo)
	sessionService := session.NewService(sessionRepo, portfolioRepo, catalogRepo)

	// 4. Session janitor
	janitor := session.NewJanitor(sessionRepo, cfg.SessionTTL, log)
	if err := janitor.Schedule(cfg.SessionSweepEvery); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SessionSweepEvery).Msg("Invalid session sweep schedule")
	}
	janitor.Start()

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log.With().Str("component", "grpc").Logger()),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(chartService, dialService, matrixService, geometry)
	grpcadapter.RegisterEthicalFolioServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 6. Start HTTP Server
	httpServer := httpapi.New(httpapi.Config{
		Addr:        cfg.HTTPAddr,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Geometry:    geometry,
	}, httpapi.Services{
		Chart:    chartService,
		Dial:     dialService,
		Matrix:   matrixService,
		Sessions: sessionService,
	})

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, httpServer, janitor)
}

// connectDB opens the database, retrying while Postgres starts up
func connectDB(connStr string, log zerolog.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := postgres.NewDB(connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("Database not ready, retrying")
		time.Sleep(dbRetryDelay)
	}
	return nil, lastErr
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, httpServer *httpapi.Server, janitor *session.Janitor) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")

	janitor.Stop()
}
