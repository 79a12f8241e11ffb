package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SongChangseok/stock-dashboard/internal/config"
	"github.com/SongChangseok/stock-dashboard/internal/database"
	"github.com/SongChangseok/stock-dashboard/internal/modules/holdings"
	"github.com/SongChangseok/stock-dashboard/internal/modules/rebalancing"
	"github.com/SongChangseok/stock-dashboard/internal/modules/targets"
	"github.com/SongChangseok/stock-dashboard/internal/scheduler"
	"github.com/SongChangseok/stock-dashboard/internal/server"
	"github.com/SongChangseok/stock-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error"})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting stock dashboard")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(holdings.Schema, targets.Schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	if err := sched.AddJob("@every 6h", scheduler.NewIntegrityCheckJob(db, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register integrity check job")
	}

	// Wire modules
	holdingsRepo := holdings.NewRepository(db.Conn(), log)
	holdingsService := holdings.NewService(holdingsRepo, log)
	holdingsHandler := holdings.NewHandler(holdingsService, log)

	targetsRepo := targets.NewRepository(db.Conn(), log)
	targetsService := targets.NewService(targetsRepo, log)
	targetsHandler := targets.NewHandler(targetsService, log)

	rebalancingHandler := rebalancing.NewHandler(
		holdingsService,
		targetsService,
		rebalancing.Options{
			MinimumTradingUnit: cfg.MinimumTradingUnit,
			RebalanceThreshold: cfg.RebalanceThreshold,
			Commission:         cfg.Commission,
			ConsiderCommission: cfg.Commission > 0,
		},
		log,
	)

	srv := server.New(server.Config{
		Port:        cfg.Port,
		Log:         log,
		DevMode:     cfg.DevMode,
		Holdings:    holdingsHandler,
		Targets:     targetsHandler,
		Rebalancing: rebalancingHandler,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
