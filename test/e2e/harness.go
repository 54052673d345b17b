// Package e2e boots the complete control plane against a real sqlite
// database and drives it through the public HTTP and WebSocket surfaces,
// the way a dashboard and a fleet of sandboxed agents would.
package e2e

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/api"
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
)

// TestApp is a fully wired steward instance listening on a random local
// port. The wiring mirrors the production entrypoint step for step so that
// cross-service behavior (resolution hooks, bus subscriptions, tick order)
// is the same thing these tests exercise.
type TestApp struct {
	BaseURL string
	WSURL   string

	Config    *config.Config
	DBPath    string
	EntClient *ent.Client

	Store   *store.Store
	Bus     *bus.Bus
	Ticks   *tick.Service
	Modes   *control.State
	Engine  *trust.Engine
	Queue   *decision.Queue
	Gateway *gateway.Gateway
	Plugin  *gateway.InProcessPlugin
	Checks  *checkpoint.Service
	Sched   *injection.Scheduler
	Agents  *services.AgentService
	Ingest  *services.IngestService
	Cohere  *coherence.Service
	Gate    *toolgate.Gate
	Brakes  *brake.Service
	Metrics *metrics.Metrics
	Server  *api.Server

	db           *database.Client
	shutdownOnce sync.Once
}

type testAppOptions struct {
	cfg    *config.Config
	dbPath string
}

// TestAppOption customizes the app under test.
type TestAppOption func(*testAppOptions)

// WithConfig replaces the default test configuration.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(o *testAppOptions) { o.cfg = cfg }
}

// WithDatabasePath points the app at a specific sqlite file. Restart tests
// boot a second app against the path the first one wrote.
func WithDatabasePath(path string) TestAppOption {
	return func(o *testAppOptions) { o.dbPath = path }
}

// defaultTestConfig is the built-in configuration: manual ticks, adaptive
// control mode, in-process sandbox plugin, auth disabled.
func defaultTestConfig() *config.Config {
	return &config.Config{
		System:      config.DefaultSystemConfig(),
		Server:      config.DefaultServerConfig(),
		Database:    config.DefaultDatabaseConfig(),
		Tick:        config.DefaultTickConfig(),
		Control:     config.DefaultControlConfig(),
		Gateway:     config.DefaultGatewayConfig(),
		Decisions:   config.DefaultDecisionConfig(),
		Trust:       config.DefaultTrustConfig(),
		Injection:   config.DefaultInjectionConfig(),
		ToolGate:    config.DefaultToolGateConfig(),
		Brake:       config.DefaultBrakeConfig(),
		Checkpoints: config.DefaultCheckpointConfig(),
		Coherence:   config.DefaultCoherenceConfig(),
		Quarantine:  config.DefaultQuarantineConfig(),
	}
}

// NewTestApp wires and starts a complete steward instance. Cleanup shuts it
// down; restart tests call Shutdown themselves first.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	options := &testAppOptions{}
	for _, opt := range opts {
		opt(options)
	}
	cfg := options.cfg
	if cfg == nil {
		cfg = defaultTestConfig()
	}
	dbPath := options.dbPath
	if dbPath == "" {
		dbPath = filepath.Join(t.TempDir(), "steward.db")
	}

	// 1. Database on a real file so migrations and restarts are exercised.
	dbClient, err := database.NewClient(ctx, database.Config{
		Driver: database.DriverSQLite,
		Path:   dbPath,
	})
	require.NoError(t, err)

	// 2. Core runtime services.
	ticks, err := tick.NewService(cfg.Tick.Mode, cfg.Tick.Interval)
	require.NoError(t, err)
	eventBus := bus.New()
	modes := control.NewState(cfg.InitialControlMode())

	// 3. Store and trust engine.
	st := store.New(dbClient.Client, store.WithQuarantineCap(cfg.Quarantine.MaxEntries))
	engine := trust.NewEngine(trust.DefaultConfig(), st)
	if cfg.Trust.Profile != "" {
		_, err := engine.ApplyProfile(cfg.Trust.Profile)
		require.NoError(t, err)
	}
	if cfg.Trust.Overrides != nil {
		engine.Reconfigure(*cfg.Trust.Overrides)
	}

	// 4. Oversight services.
	queue := decision.NewQueue(decision.Policy{TimeoutTicks: cfg.Decisions.TimeoutTicks})
	cohere := coherence.NewService(st, engine, ticks, eventBus, coherence.Options{
		ScanIntervalTicks: cfg.Coherence.ScanIntervalTicks,
		ScanTimeout:       cfg.Coherence.ScanTimeout,
	})
	appMetrics := metrics.New()
	ingestSvc := services.NewIngestService(st, eventBus, queue, engine, cohere, ticks)
	ingestSvc.SetMetrics(appMetrics)

	// 5. Gateway with the in-process plugin feeding the ingest pipeline.
	gw := gateway.New(cfg.Gateway.DefaultPlugin, eventBus)
	emit := func(env *models.EventEnvelope) {
		_, _ = ingestSvc.Ingest(context.Background(), env)
	}
	plugin := gateway.NewInProcessPlugin(emit)
	gw.RegisterPlugin(plugin)

	// 6. Knowledge services.
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

	// 7. Agent lifecycle.
	agents := services.NewAgentService(gw, st, engine, sched, queue, checks, ticks)
	agents.SetSnapshots(snaps)
	agents.SetMetrics(appMetrics)

	// 8. Tool gate, brakes, and the WebSocket hub they broadcast through.
	connManager := api.NewConnectionManager(5*time.Second, appMetrics)
	resolver := toolgate.NewResolver(queue, st, engine, ticks, connManager, gw)
	gate := toolgate.NewGate(queue, resolver, gw, modes, engine, ticks, eventBus)
	gate.SetTimeout(cfg.ToolGate.ApprovalTimeout)
	brakes := brake.NewService(agents, queue, ticks, connManager)

	// 9. Cross-service wiring, same order as the production entrypoint.
	queue.OnResolution(func(item decision.Item, res models.Resolution) {
		brakes.OnDecisionResolved(item.Event.DecisionID)
		gate.ObserveResolution(item, res)
		sched.OnDecisionResolved(&item.Event)
	})
	eventBus.Subscribe(bus.Filter{Types: []string{models.EventTypeStatus}}, gate.ObserveStatus)
	eventBus.Subscribe(bus.Filter{}, sched.HandleEvent)

	ticks.Subscribe(func(tk int64) { queue.OnTick(tk) })
	ticks.Subscribe(brakes.OnTick)
	ticks.Subscribe(engine.OnTick)
	ticks.Subscribe(sched.OnTick)
	ticks.Subscribe(checks.OnTick)
	ticks.Subscribe(cohere.OnTick)
	ticks.Subscribe(appMetrics.SetTick)

	// 10. Restore persisted runtime state. Restart tests depend on this
	// running before the server accepts traffic.
	require.NoError(t, agents.RestoreFromStore(ctx))

	// 11. HTTP server on a random port.
	server := api.NewServer(api.Deps{
		Config:      cfg,
		Store:       st,
		Agents:      agents,
		Ingest:      ingestSvc,
		Projects:    services.NewProjectService(st),
		Snapshots:   snaps,
		Queue:       queue,
		Resolver:    resolver,
		Gate:        gate,
		Brakes:      brakes,
		Checkpoints: checks,
		Coherence:   cohere,
		Trust:       engine,
		Control:     modes,
		Ticks:       ticks,
		Gateway:     gw,
		Metrics:     appMetrics,
		Bus:         eventBus,
		ConnManager: connManager,
	})
	agents.SetStateNotifier(server)

	ticks.Start(ctx)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()

	addr := ln.Addr().String()
	app := &TestApp{
		BaseURL:   "http://" + addr,
		WSURL:     "ws://" + addr + "/api/ws",
		Config:    cfg,
		DBPath:    dbPath,
		EntClient: dbClient.Client,
		Store:     st,
		Bus:       eventBus,
		Ticks:     ticks,
		Modes:     modes,
		Engine:    engine,
		Queue:     queue,
		Gateway:   gw,
		Plugin:    plugin,
		Checks:    checks,
		Sched:     sched,
		Agents:    agents,
		Ingest:    ingestSvc,
		Cohere:    cohere,
		Gate:      gate,
		Brakes:    brakes,
		Metrics:   appMetrics,
		Server:    server,
		db:        dbClient,
	}
	t.Cleanup(app.Shutdown)

	app.waitUntilHealthy(t)
	return app
}

// Shutdown stops the HTTP server, the project clock, and the database, in
// that order. Safe to call more than once; restart tests call it mid-test
// and Cleanup calls it again.
func (app *TestApp) Shutdown() {
	app.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Server.Shutdown(ctx)
		app.Ticks.Stop()
		_ = app.db.Close()
	})
}

func (app *TestApp) waitUntilHealthy(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(app.BaseURL + "/api/health")
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 25*time.Millisecond, "server did not become healthy")
}
