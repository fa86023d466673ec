// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/bvsbharat/ai-agent-platform/api"
	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/db"
	dbmigrations "github.com/bvsbharat/ai-agent-platform/db_migrations"
	"github.com/bvsbharat/ai-agent-platform/signals"
	"github.com/bvsbharat/ai-agent-platform/wiring"
	"github.com/bvsbharat/ai-agent-platform/workers"
)

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // default to INFO
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Logger configured",
		"level", level.String())
}

func main() {
	cfg := config.GetConfig()

	setupLogger(cfg)

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			// Convert printf-style format string to plain message for structured logging
			slog.Info(fmt.Sprintf(format, args...))
		})); err != nil {
			slog.Error("Failed to set maxprocs", "error", err)
			os.Exit(1)
		}
	}
	serverFlag := flag.Bool("server", true, "start the http server")
	migrateFlag := flag.Bool("migrate", false, "migrate the database")

	flag.Parse()

	if *migrateFlag {
		if err := dbmigrations.Migrate(); err != nil {
			slog.Error("error occurred while migrating", "error", err)
			os.Exit(1)
		}
	}

	if !*serverFlag {
		return
	}

	ctx := context.Background()

	// Get the raw DB instance without context - repositories will add context per-operation
	gormDB := db.GetDB()

	svcs, err := wiring.NewServices(cfg, gormDB)
	if err != nil {
		slog.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Separate pgx pool for the job queue
	pool, err := pgxpool.New(ctx, db.DSN(&cfg.POSTGRESQL))
	if err != nil {
		slog.Error("failed to create job queue pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	jobTimeout := time.Duration(cfg.DirectorySync.JobTimeoutSeconds) * time.Second
	queueWorkers := workers.NewWorkers(svcs.MCP, svcs.Hackathon, jobTimeout)
	queueClient, err := workers.NewClient(ctx, pool, queueWorkers)
	if err != nil {
		slog.Error("failed to create job queue client", "error", err)
		os.Exit(1)
	}
	if err := queueClient.Start(ctx); err != nil {
		slog.Error("failed to start job queue", "error", err)
		os.Exit(1)
	}

	dependencies := wiring.NewAppParams(gormDB, svcs, workers.NewEnqueuer(queueClient))

	handler := api.MakeHTTPHandler(dependencies)
	mainServer := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:        handler,
		ReadTimeout:    time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	stopCh := signals.SetupSignalHandler()

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		<-stopCh
		slog.Info("Shutdown signal received, stopping services...")

		// Stop the job queue first so in-flight sync runs finish
		queueCtx, queueCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer queueCancel()
		if err := queueClient.Stop(queueCtx); err != nil {
			slog.Error("job queue forced shutdown after timeout", "error", err)
		}

		mainCtx, mainCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer mainCancel()
		if err := mainServer.Shutdown(mainCtx); err != nil {
			slog.Error("Main server forced shutdown after timeout", "error", err)
		}
		wg.Done()
	}()

	slog.Info("Main API server is running", "address", mainServer.Addr)
	if err := mainServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Failed to start main server", "error", err)
		os.Exit(1)
	}

	wg.Wait()
	slog.Info("All servers shut down successfully")
}
