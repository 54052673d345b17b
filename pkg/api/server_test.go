package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/checkpoint"
	"github.com/steward-io/steward/pkg/coherence"
	"github.com/steward-io/steward/pkg/config"
	"github.com/steward-io/steward/pkg/control"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/injection"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/services"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/tick"
	"github.com/steward-io/steward/pkg/toolgate"
	"github.com/steward-io/steward/pkg/trust"
	"github.com/steward-io/steward/test/util"
)

// serverEnv wires a full server over an in-memory database: the same service
// graph main assembles, minus auth and the WebSocket hub. Tests drive it
// through the echo router so routing, middleware, and handlers are all
// exercised together.
type serverEnv struct {
	server *Server
	store  *store.Store
	gw     *gateway.Gateway
	plugin *gateway.InProcessPlugin
	agents *services.AgentService
	ingest *services.IngestService
	queue  *decision.Queue
	gate   *toolgate.Gate
	engine *trust.Engine
	ticks  *tick.Service
	modes  *control.State
	brakes *brake.Service
	checks *checkpoint.Service
	cohere *coherence.Service
	sched  *injection.Scheduler
	bus    *bus.Bus
}

func newTestServer(t *testing.T) *serverEnv {
	t.Helper()
	return newTestServerWithAuth(t, nil)
}

// newTestServerWithAuth is the same harness with token verification switched
// on. Most suites run without auth; the auth suite passes a real manager.
func newTestServerWithAuth(t *testing.T, authMgr *auth.Manager) *serverEnv {
	t.Helper()

	client := util.SetupTestDatabase(t)
	st := store.New(client)
	eventBus := bus.New()

	ticks, err := tick.NewService(tick.ModeManual, 0)
	require.NoError(t, err)

	engine := trust.NewEngine(trust.DefaultConfig(), nil)
	queue := decision.NewQueue(decision.Policy{})
	modes := control.NewState(models.ModeOrchestrator)

	gw := gateway.New(gateway.InProcessPluginName, eventBus)
	plugin := gateway.NewInProcessPlugin(nil)
	gw.RegisterPlugin(plugin)

	checks := checkpoint.NewService(gw, st, checkpoint.Options{})
	snaps := services.NewSnapshotSource(st, queue)
	sched := injection.NewScheduler(gw, snaps, modes)

	agents := services.NewAgentService(gw, st, engine, sched, queue, checks, ticks)
	agents.SetSnapshots(snaps)

	cohere := coherence.NewService(st, engine, ticks, eventBus, coherence.Options{})
	ingest := services.NewIngestService(st, eventBus, queue, engine, cohere, ticks)

	resolver := toolgate.NewResolver(queue, st, engine, ticks, nil, gw)
	gate := toolgate.NewGate(queue, resolver, gw, modes, engine, ticks, eventBus)
	gate.SetTimeout(200 * time.Millisecond)

	brakes := brake.NewService(agents, queue, ticks, nil)
	queue.OnResolution(func(item decision.Item, res models.Resolution) {
		brakes.OnDecisionResolved(item.Event.DecisionID)
		gate.ObserveResolution(item, res)
	})

	cfg := &config.Config{
		Brake: &config.BrakeConfig{DefaultBehavior: brake.BehaviorPause},
	}

	s := NewServer(Deps{
		Config:      cfg,
		Store:       st,
		Agents:      agents,
		Ingest:      ingest,
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
		Auth:        authMgr,
		Bus:         eventBus,
	})
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	return &serverEnv{
		server: s,
		store:  st,
		gw:     gw,
		plugin: plugin,
		agents: agents,
		ingest: ingest,
		queue:  queue,
		gate:   gate,
		engine: engine,
		ticks:  ticks,
		modes:  modes,
		brakes: brakes,
		checks: checks,
		cohere: cohere,
		sched:  sched,
		bus:    eventBus,
	}
}

// doJSON sends one request through the full router and returns the recorder.
// body may be nil.
func (env *serverEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(data)
	} else {
		payload = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.server.Echo().ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals a recorder body into out, failing the test on bad JSON.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

// spawnTestAgent spawns one agent through the HTTP surface and returns its id.
func (env *serverEnv) spawnTestAgent(t *testing.T, workstream string) string {
	t.Helper()

	rec := env.doJSON(t, http.MethodPost, "/api/agents/spawn", map[string]any{
		"brief": map[string]any{
			"role":       "implementer",
			"workstream": workstream,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, "spawn failed: %s", rec.Body.String())

	var resp SpawnResponse
	decodeJSON(t, rec, &resp)
	require.NotNil(t, resp.Agent)
	require.NotEmpty(t, resp.Agent.AgentID)
	return resp.Agent.AgentID
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(0), resp.Tick)
}

func TestUnknownAPIRouteReturnsJSONError(t *testing.T) {
	env := newTestServer(t)

	rec := env.doJSON(t, http.MethodGet, "/api/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	decodeJSON(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	env := newTestServer(t)

	// Spawning without a workstream fails brief validation.
	rec := env.doJSON(t, http.MethodPost, "/api/agents/spawn", map[string]any{
		"brief": map[string]any{"role": "implementer"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	decodeJSON(t, rec, &body)
	assert.Equal(t, "Validation failed", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestBuildStateSyncFrame(t *testing.T) {
	ctx := context.Background()
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	_, err := env.store.SaveProject(ctx, store.ProjectInput{Name: "demo"})
	require.NoError(t, err)

	frame := env.server.buildStateSync(ctx)
	require.NotNil(t, frame)
	require.NotNil(t, frame.Snapshot)
	require.Len(t, frame.ActiveAgents, 1)
	assert.Equal(t, agentID, frame.ActiveAgents[0].AgentID)
	assert.Equal(t, 50, frame.TrustScores[agentID])
	assert.Equal(t, models.ModeOrchestrator, frame.ControlMode)
	require.NotNil(t, frame.ProjectConfig)
	assert.Equal(t, "demo", frame.ProjectConfig.Name)
}

func TestClassifyWorkspace(t *testing.T) {
	env := newTestServer(t)
	agentID := env.spawnTestAgent(t, "ws-core")

	t.Run("artifact events follow the artifact workstream", func(t *testing.T) {
		primary, secondary := env.server.classifyWorkspace(&models.EventEnvelope{
			AgentID: agentID,
			Event: models.AgentEvent{
				Type:     models.EventTypeArtifact,
				Artifact: &models.ArtifactEvent{ArtifactID: "a-1", Workstream: "ws-docs"},
			},
		})
		assert.Equal(t, "ws-docs", primary)
		assert.Empty(t, secondary)
	})

	t.Run("coherence events span affected workstreams", func(t *testing.T) {
		primary, secondary := env.server.classifyWorkspace(&models.EventEnvelope{
			AgentID: agentID,
			Event: models.AgentEvent{
				Type: models.EventTypeCoherence,
				Coherence: &models.CoherenceEvent{
					AffectedWorkstreams: []string{"ws-core", "ws-docs"},
				},
			},
		})
		assert.Equal(t, "ws-core", primary)
		assert.Equal(t, []string{"ws-docs"}, secondary)
	})

	t.Run("other events follow the source agent", func(t *testing.T) {
		primary, secondary := env.server.classifyWorkspace(&models.EventEnvelope{
			AgentID: agentID,
			Event:   models.AgentEvent{Type: models.EventTypeStatus, Status: &models.StatusEvent{Message: "hi"}},
		})
		assert.Equal(t, "ws-core", primary)
		assert.Empty(t, secondary)
	})

	t.Run("unknown agent yields no workspace", func(t *testing.T) {
		primary, _ := env.server.classifyWorkspace(&models.EventEnvelope{
			AgentID: "ghost",
			Event:   models.AgentEvent{Type: models.EventTypeStatus, Status: &models.StatusEvent{Message: "hi"}},
		})
		assert.Empty(t, primary)
	})
}

func TestWSOriginPatterns(t *testing.T) {
	cfg := &config.Config{
		System: &config.SystemConfig{
			DashboardURL:     "http://localhost:5173",
			AllowedWSOrigins: []string{"https://steward.example.com", "*.internal.example.com"},
		},
	}
	patterns := wsOriginPatterns(cfg)
	assert.Equal(t, []string{"localhost:5173", "steward.example.com", "*.internal.example.com"}, patterns)

	assert.Nil(t, wsOriginPatterns(&config.Config{}))
}
