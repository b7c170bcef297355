package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/featherlane/henhouse-go/internal/adapters/metrics"
	"github.com/featherlane/henhouse-go/internal/adapters/notify"
	"github.com/featherlane/henhouse-go/internal/adapters/persistence"
	"github.com/featherlane/henhouse-go/internal/application/commands"
	"github.com/featherlane/henhouse-go/internal/application/common"
	"github.com/featherlane/henhouse-go/internal/application/engine"
	"github.com/featherlane/henhouse-go/internal/application/queries"
	"github.com/featherlane/henhouse-go/internal/domain/farm"
	"github.com/featherlane/henhouse-go/internal/domain/shared"
	"github.com/featherlane/henhouse-go/internal/infrastructure/config"
	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
	"github.com/featherlane/henhouse-go/internal/infrastructure/pidfile"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	fmt.Println("Henhouse Daemon v0.1.0")
	fmt.Println("======================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configFlag)

	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// 1. Save database
	fmt.Printf("Opening %s save database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open save database: %w", err)
	}
	defer database.Close(db)
	saveRepo := persistence.NewGormSaveRepository(db)
	fmt.Println("Save database ready")

	// 2. Logging and collaborator sinks
	logOut := os.Stdout
	if cfg.Logging.Output == "stderr" {
		logOut = os.Stderr
	}
	gameLog := log.New(logOut, "henhouse ", log.LstdFlags)
	logger := common.NewStdGameLogger(gameLog, cfg.Logging.Level)
	toasts := notify.NewRateLimitedToastSink(notify.NewLogToastSink(gameLog), 2*time.Second)
	sounds := notify.NewLogSoundSink(gameLog)

	// 3. Metrics
	var recorder engine.MetricsRecorder = engine.NopMetrics{}
	var registry *prometheus.Registry
	if cfg.Daemon.MetricsAddr != "" {
		registry = prometheus.NewRegistry()
		recorder = metrics.NewFarmMetricsCollector(registry)
		fmt.Printf("Metrics enabled on %s\n", cfg.Daemon.MetricsAddr)
	}

	// 4. Load or seed the active save
	clock := shared.NewRealClock()
	state, err := saveRepo.Load(context.Background(), cfg.Daemon.SaveName)
	if err != nil {
		// Degraded start: keep playing in memory and let autosave retry.
		log.Printf("Warning: failed to load save %q: %v", cfg.Daemon.SaveName, err)
	}
	if state == nil {
		fmt.Printf("Starting a new farm in slot %q\n", cfg.Daemon.SaveName)
		state = farm.NewGameState(clock.Now())
	} else {
		fmt.Printf("Resuming farm %q (last played %s)\n",
			cfg.Daemon.SaveName, state.LastUpdate.Format(time.RFC3339))
	}

	// 5. Engine, mediator, loop
	eng := engine.NewEngine(state, clock, toasts, sounds, recorder, nil)

	mediator := common.NewMediator()
	if err := commands.RegisterAll(mediator, eng); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	if err := queries.RegisterAll(mediator, eng); err != nil {
		return fmt.Errorf("failed to register queries: %w", err)
	}

	loop := engine.NewLoop(eng, saveRepo, cfg.Daemon.SaveName, toasts, engine.LoopConfig{
		TickInterval:     cfg.Engine.TickInterval,
		CustomerInterval: cfg.Engine.CustomerInterval,
		ExpiryInterval:   cfg.Engine.ExpiryInterval,
		AutosaveInterval: cfg.Engine.AutosaveInterval,
	})

	ctx, cancel := context.WithCancel(common.WithLogger(context.Background(), logger))
	defer cancel()
	loop.Start(ctx)
	fmt.Println("Game loop running")

	// Periodic status line so long-running farms leave a trail in the log.
	go reportStatus(ctx, mediator, logger)

	// 6. Metrics endpoint
	var metricsServer *http.Server
	if registry != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: cfg.Daemon.MetricsAddr, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Warning: metrics server stopped: %v", err)
			}
		}()
	}

	// 7. Wait for shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	fmt.Printf("\nReceived %s, shutting down...\n", sig)

	loop.Stop()
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer shutdownCancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}

	// Final save so no progress is lost between autosaves.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	if err := saveRepo.Save(saveCtx, cfg.Daemon.SaveName, eng.Snapshot()); err != nil {
		log.Printf("Warning: final save failed: %v", err)
	} else {
		fmt.Println("Farm saved")
	}

	return nil
}

// reportStatus logs a one-line farm summary every minute until ctx ends.
func reportStatus(ctx context.Context, m common.Mediator, logger common.GameLogger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resp, err := m.Send(ctx, queries.FarmStatusQuery{})
			if err != nil {
				logger.Log("warn", "status query failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			status, ok := resp.(queries.FarmStatusResult)
			if !ok {
				continue
			}
			logger.Log("info", "farm status", map[string]interface{}{
				"money":      status.State.Money,
				"feed":       status.State.Feed,
				"livestock":  status.State.Livestock(),
				"ready_eggs": status.State.ReadyEggs,
				"orders":     len(status.State.ActiveOrders),
				"paused":     status.Paused,
			})
		}
	}
}
