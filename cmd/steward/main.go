// Steward control plane server: hosts the HTTP API and the oversight
// schedulers that supervise sandboxed worker agents on the project clock.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/steward-io/steward/pkg/api"
	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/checkpoint"
	"github.com/steward-io/steward/pkg/coherence"
	"github.com/steward-io/steward/pkg/config"
	"github.com/steward-io/steward/pkg/control"
	"github.com/steward-io/steward/pkg/database"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/injection"
	"github.com/steward-io/steward/pkg/metrics"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/services"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/tick"
	"github.com/steward-io/steward/pkg/toolgate"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting steward",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"users", stats.Users,
		"injection_policies", stats.InjectionPolicies,
		"ws_origins", stats.WSOrigins)

	// 2. Initialize database
	dbClient, err := database.NewClient(ctx, database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Path:   cfg.Database.Path,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database", "driver", dbClient.Driver())

	// 3. Core runtime services
	ticks, err := tick.NewService(cfg.Tick.Mode, cfg.Tick.Interval)
	if err != nil {
		slog.Error("Failed to initialize project clock", "error", err)
		os.Exit(1)
	}
	eventBus := bus.New()
	modes := control.NewState(cfg.InitialControlMode())

	// 4. Store and trust engine
	st := store.New(dbClient.Client, store.WithQuarantineCap(cfg.Quarantine.MaxEntries))
	engine := trust.NewEngine(trust.DefaultConfig(), st)
	if cfg.Trust.Profile != "" {
		if _, err := engine.ApplyProfile(cfg.Trust.Profile); err != nil {
			slog.Error("Failed to apply trust profile", "profile", cfg.Trust.Profile, "error", err)
			os.Exit(1)
		}
		slog.Info("Trust profile applied", "profile", cfg.Trust.Profile)
	}
	if cfg.Trust.Overrides != nil {
		engine.Reconfigure(*cfg.Trust.Overrides)
	}

	// 5. Oversight services
	queue := decision.NewQueue(decision.Policy{TimeoutTicks: cfg.Decisions.TimeoutTicks})
	cohere := coherence.NewService(st, engine, ticks, eventBus, coherence.Options{
		ScanIntervalTicks: cfg.Coherence.ScanIntervalTicks,
		ScanTimeout:       cfg.Coherence.ScanTimeout,
	})
	appMetrics := metrics.New()
	ingestSvc := services.NewIngestService(st, eventBus, queue, engine, cohere, ticks)
	ingestSvc.SetMetrics(appMetrics)

	// 6. Authentication (disabled without a signing secret)
	var authMgr *auth.Manager
	if cfg.AuthEnabled() {
		authMgr, err = auth.NewManager(*cfg.Auth)
		if err != nil {
			slog.Error("Failed to initialize auth manager", "error", err)
			os.Exit(1)
		}
		slog.Info("Authentication enabled", "users", stats.Users)
	} else {
		slog.Warn("Authentication disabled: no signing secret configured")
	}

	// 7. Sandbox gateway and plugins
	gw := gateway.New(cfg.Gateway.DefaultPlugin, eventBus)
	emit := func(env *models.EventEnvelope) {
		if _, err := ingestSvc.Ingest(context.Background(), env); err != nil {
			slog.Error("Failed to ingest sandbox event",
				"source_event_id", env.SourceEventID,
				"agent_id", env.AgentID,
				"error", err)
		}
	}
	gw.RegisterPlugin(gateway.NewInProcessPlugin(emit))

	if cfg.Gateway.LocalHTTP != nil || cfg.Gateway.Container != nil {
		// tokens must stay a nil interface when auth is off; a typed nil
		// would pass the issuer checks inside the plugins.
		var tokens gateway.TokenIssuer
		if authMgr != nil {
			tokens = authMgr
		}
		ports := gateway.NewPortPool(cfg.Gateway.PortRangeStart, cfg.Gateway.PortRangeEnd)

		if cfg.Gateway.LocalHTTP != nil {
			plugin, err := gateway.NewLocalHTTPPlugin(*cfg.Gateway.LocalHTTP, ports, tokens, emit)
			if err != nil {
				slog.Error("Failed to initialize local_http plugin", "error", err)
				os.Exit(1)
			}
			gw.RegisterPlugin(plugin)
			slog.Info("Sandbox plugin registered", "plugin", plugin.Name())
		}
		if cfg.Gateway.Container != nil {
			plugin, err := gateway.NewContainerPlugin(*cfg.Gateway.Container, ports, tokens, emit)
			if err != nil {
				slog.Error("Failed to initialize container plugin", "error", err)
				os.Exit(1)
			}
			gw.RegisterPlugin(plugin)
			slog.Info("Sandbox plugin registered", "plugin", plugin.Name())
		}
	}

	// 8. Knowledge services
	checks := checkpoint.NewService(gw, st, checkpoint.Options{
		MaxPerAgent:         cfg.Checkpoints.MaxPerAgent,
		SweepIntervalTicks:  cfg.Checkpoints.SweepIntervalTicks,
		SweepCaptureTimeout: cfg.Checkpoints.SweepCaptureTimeout,
	})
	snaps := services.NewSnapshotSource(st, queue)
	sched := injection.NewScheduler(gw, snaps, modes)
	for mode, policy := range cfg.Injection.ModePolicies() {
		sched.SetModePolicy(mode, policy)
	}

	// 9. Agent lifecycle
	agents := services.NewAgentService(gw, st, engine, sched, queue, checks, ticks)
	agents.SetSnapshots(snaps)
	agents.SetMetrics(appMetrics)

	// 10. Tool gate, brakes, and the dashboard hub they broadcast through
	connManager := api.NewConnectionManager(10*time.Second, appMetrics)
	resolver := toolgate.NewResolver(queue, st, engine, ticks, connManager, gw)
	gate := toolgate.NewGate(queue, resolver, gw, modes, engine, ticks, eventBus)
	gate.SetTimeout(cfg.ToolGate.ApprovalTimeout)
	brakes := brake.NewService(agents, queue, ticks, connManager)

	// 11. Cross-service wiring
	queue.OnResolution(func(item decision.Item, res models.Resolution) {
		brakes.OnDecisionResolved(item.Event.DecisionID)
		gate.ObserveResolution(item, res)
		sched.OnDecisionResolved(&item.Event)
	})
	eventBus.Subscribe(bus.Filter{Types: []string{models.EventTypeStatus}}, gate.ObserveStatus)
	eventBus.Subscribe(bus.Filter{}, sched.HandleEvent)

	// Queue timeouts run first so brakes and injection observe the
	// resolutions they produce within the same tick.
	ticks.Subscribe(func(t int64) { queue.OnTick(t) })
	ticks.Subscribe(brakes.OnTick)
	ticks.Subscribe(engine.OnTick)
	ticks.Subscribe(sched.OnTick)
	ticks.Subscribe(checks.OnTick)
	ticks.Subscribe(cohere.OnTick)
	ticks.Subscribe(appMetrics.SetTick)

	// 12. Restore persisted runtime state from the previous run
	if err := agents.RestoreFromStore(ctx); err != nil {
		slog.Error("Failed to restore agent state", "error", err)
		// Non-fatal: agents can still be spawned fresh
	}

	// 13. Create HTTP server
	httpServer := api.NewServer(api.Deps{
		Config:       cfg,
		Store:        st,
		Agents:       agents,
		Ingest:       ingestSvc,
		Projects:     services.NewProjectService(st),
		Snapshots:    snaps,
		Queue:        queue,
		Resolver:     resolver,
		Gate:         gate,
		Brakes:       brakes,
		Checkpoints:  checks,
		Coherence:    cohere,
		Trust:        engine,
		Control:      modes,
		Ticks:        ticks,
		Gateway:      gw,
		Auth:         authMgr,
		Metrics:      appMetrics,
		Bus:          eventBus,
		ConnManager:  connManager,
		DashboardDir: getEnv("DASHBOARD_DIR", ""),
	})
	agents.SetStateNotifier(httpServer)

	// 14. Start the project clock (no-op in manual mode, where ticks
	// advance through the API)
	ticks.Start(ctx)
	slog.Info("Project clock ready", "mode", cfg.Tick.Mode, "tick", ticks.Current())

	// 15. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.ListenAddr()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Steward started",
		"control_mode", modes.Current(),
		"default_plugin", cfg.Gateway.DefaultPlugin)

	// 16. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 17. Graceful shutdown
	ticks.Stop()

	// Checkpoint every live agent so a restart resumes from captured state
	// instead of a brief reconstructed by crash recovery.
	sweepCtx, sweepCancel := context.WithTimeout(ctx, 15*time.Second)
	defer sweepCancel()

	done := make(chan struct{})
	go func() {
		for _, h := range gw.ListHandles() {
			if models.TerminalAgentStatus(h.Status) {
				continue
			}
			if _, err := checks.Capture(sweepCtx, h.AgentID, ""); err != nil {
				slog.Warn("Final checkpoint capture failed", "agent_id", h.AgentID, "error", err)
			}
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Final agent checkpoints captured")
	case <-sweepCtx.Done():
		slog.Warn("Checkpoint sweep timeout exceeded, agents will crash-recover on restart")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
