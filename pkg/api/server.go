// Package api is the HTTP/WebSocket edge of the control plane: the dashboard
// REST surface, the bridge surface sandboxed agents call back into, and the
// broadcast-only WebSocket hub. Handlers validate and translate; every state
// change runs through the service layer.
package api

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/bus"
	"github.com/steward-io/steward/pkg/checkpoint"
	"github.com/steward-io/steward/pkg/coherence"
	"github.com/steward-io/steward/pkg/config"
	"github.com/steward-io/steward/pkg/control"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/metrics"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/services"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/tick"
	"github.com/steward-io/steward/pkg/toolgate"
	"github.com/steward-io/steward/pkg/trust"
)

const (
	// stateSyncTimeout bounds the store reads behind one state_sync frame.
	stateSyncTimeout = 5 * time.Second

	// wsForwardBuffer is the depth of the bus→WebSocket forwarding channel.
	// Overflow drops frames; clients reconcile through state_sync and the
	// events API.
	wsForwardBuffer = 256
)

// Server is the HTTP server. It owns route registration and the
// bus→WebSocket forwarding loop; domain behavior lives in the services and
// core components it composes.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg *config.Config

	store       *store.Store
	agents      *services.AgentService
	ingest      *services.IngestService
	projects    *services.ProjectService
	snaps       *services.SnapshotSource
	queue       *decision.Queue
	resolver    *toolgate.Resolver
	gate        *toolgate.Gate
	brakes      *brake.Service
	checkpoints *checkpoint.Service
	coherence   *coherence.Service
	trust       *trust.Engine
	control     *control.State
	ticks       *tick.Service
	gateway     *gateway.Gateway
	authMgr     *auth.Manager
	metrics     *metrics.Metrics
	connManager *ConnectionManager

	dashboardDir string
	wsOrigins    []string

	wsEvents chan *models.EventEnvelope
	done     chan struct{}
}

// Deps carries everything the server composes. Config, Store, Agents,
// Ingest, Queue, Ticks, Control, Trust, and Gateway are required; the rest
// degrade gracefully when nil (the matching endpoints return 503).
type Deps struct {
	Config      *config.Config
	Store       *store.Store
	Agents      *services.AgentService
	Ingest      *services.IngestService
	Projects    *services.ProjectService
	Snapshots   *services.SnapshotSource
	Queue       *decision.Queue
	Resolver    *toolgate.Resolver
	Gate        *toolgate.Gate
	Brakes      *brake.Service
	Checkpoints *checkpoint.Service
	Coherence   *coherence.Service
	Trust       *trust.Engine
	Control     *control.State
	Ticks       *tick.Service
	Gateway     *gateway.Gateway
	Auth        *auth.Manager
	Metrics     *metrics.Metrics
	Bus         *bus.Bus
	ConnManager *ConnectionManager

	// DashboardDir, when set, serves a built dashboard bundle with SPA
	// fallback. API routes always win over static files.
	DashboardDir string
}

// NewServer builds the echo application, registers every route, and
// subscribes the WebSocket forwarding loop to the event bus.
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:         echo.New(),
		cfg:          deps.Config,
		store:        deps.Store,
		agents:       deps.Agents,
		ingest:       deps.Ingest,
		projects:     deps.Projects,
		snaps:        deps.Snapshots,
		queue:        deps.Queue,
		resolver:     deps.Resolver,
		gate:         deps.Gate,
		brakes:       deps.Brakes,
		checkpoints:  deps.Checkpoints,
		coherence:    deps.Coherence,
		trust:        deps.Trust,
		control:      deps.Control,
		ticks:        deps.Ticks,
		gateway:      deps.Gateway,
		authMgr:      deps.Auth,
		metrics:      deps.Metrics,
		connManager:  deps.ConnManager,
		dashboardDir: deps.DashboardDir,
		wsEvents:     make(chan *models.EventEnvelope, wsForwardBuffer),
		done:         make(chan struct{}),
	}
	if deps.Config != nil {
		s.wsOrigins = wsOriginPatterns(deps.Config)
	}

	s.echo.Use(securityHeaders(), requestLogger(), renderErrors())
	s.registerRoutes()
	s.setupDashboardRoutes()

	if deps.Bus != nil {
		deps.Bus.Subscribe(bus.Filter{}, s.enqueueWSEvent)
		go s.forwardLoop()
	}
	return s
}

// registerRoutes wires every endpoint. The dashboard surface requires a user
// token, the bridge surface an agent token; with no auth manager configured
// both middlewares pass through.
func (s *Server) registerRoutes() {
	e := s.echo
	user := requireUser(s.authMgr)
	agent := requireAgent(s.authMgr)

	// Unauthenticated: probes, scrapes, and the login flow itself.
	e.GET("/api/health", s.healthHandler)
	e.POST("/api/auth/login", s.loginHandler)
	e.POST("/api/auth/refresh", s.refreshHandler)
	e.GET("/metrics", s.metricsHandler)

	e.GET("/api/auth/me", s.meHandler, user)

	// Agent lifecycle.
	e.GET("/api/agents", s.listAgentsHandler, user)
	e.GET("/api/agents/:id", s.getAgentHandler, user)
	e.POST("/api/agents/spawn", s.spawnAgentHandler, user)
	e.POST("/api/agents/:id/kill", s.killAgentHandler, user)
	e.POST("/api/agents/:id/pause", s.pauseAgentHandler, user)
	e.POST("/api/agents/:id/resume", s.resumeAgentHandler, user)
	e.PATCH("/api/agents/:id/brief", s.patchBriefHandler, user)
	e.POST("/api/agents/:id/checkpoint", s.captureCheckpointHandler, user)
	e.GET("/api/agents/:id/checkpoints", s.listCheckpointsHandler, user)
	e.GET("/api/agents/:id/checkpoints/latest", s.latestCheckpointHandler, user)

	// Decisions and the tool gate.
	e.GET("/api/decisions", s.listDecisionsHandler, user)
	e.POST("/api/decisions/:id/resolve", s.resolveDecisionHandler, user)
	e.POST("/api/tool-gate/request-approval", s.requestApprovalHandler, agent)
	e.GET("/api/tool-gate/stats", s.toolGateStatsHandler, user)

	// Oversight controls.
	e.POST("/api/brake", s.engageBrakeHandler, user)
	e.POST("/api/brake/release", s.releaseBrakeHandler, user)
	e.GET("/api/control-mode", s.getControlModeHandler, user)
	e.PUT("/api/control-mode", s.setControlModeHandler, user)
	e.GET("/api/trust/profiles", s.trustProfilesHandler, user)
	e.GET("/api/trust/:agentId", s.getTrustHandler, user)
	e.POST("/api/trust/profile/:name", s.applyTrustProfileHandler, user)

	// Knowledge store reads and artifact upload.
	e.GET("/api/artifacts", s.listArtifactsHandler, user)
	e.GET("/api/artifacts/:id", s.getArtifactHandler, user)
	e.GET("/api/artifacts/:id/content", s.getArtifactContentHandler, user)
	e.POST("/api/artifacts", s.uploadArtifactHandler, agent)
	e.GET("/api/coherence", s.listCoherenceHandler, user)
	e.POST("/api/coherence/:id/resolve", s.resolveCoherenceHandler, user)
	e.GET("/api/events", s.listEventsHandler, user)

	// Clock and hygiene.
	e.POST("/api/tick/advance", s.advanceTickHandler, user)
	e.GET("/api/quarantine", s.listQuarantineHandler, user)
	e.DELETE("/api/quarantine", s.clearQuarantineHandler, user)

	// Project configuration.
	e.POST("/api/project/seed", s.seedProjectHandler, user)
	e.GET("/api/project", s.getProjectHandler, user)
	e.PATCH("/api/project", s.patchProjectHandler, user)
	e.POST("/api/project/draft-brief", s.draftBriefHandler, user)

	// Bridge surface: sandboxes calling home.
	e.POST("/api/bridge/events", s.bridgeEventsHandler, agent)
	e.POST("/api/bridge/register", s.bridgeRegisterHandler, agent)
	e.GET("/api/bridge/context/:agentId", s.bridgeContextHandler, agent)
	e.GET("/api/bridge/brake/:agentId", s.bridgeBrakeHandler, agent)
	e.POST("/api/token/renew", s.renewTokenHandler, agent)

	e.GET("/api/ws", s.wsHandler, user)
}

// setupDashboardRoutes serves a built dashboard bundle with SPA fallback:
// unknown non-API paths get index.html so client-side routing works after a
// hard refresh. A missing directory or index.html disables the feature.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	index := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		slog.Warn("Dashboard directory has no index.html, static serving disabled",
			"dir", s.dashboardDir)
		return
	}

	s.echo.Static("/assets", filepath.Join(s.dashboardDir, "assets"))
	s.echo.RouteNotFound("/*", func(c *echo.Context) error {
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		// no-cache so browsers pick up new asset hashes after deployments.
		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.File(index)
	})
}

// Start runs the HTTP server on addr. Blocks until Shutdown or a listener
// error; returns http.ErrServerClosed after a clean shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests bind port 0 and
// need the address before the server accepts traffic.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown stops accepting connections, drains in-flight requests until ctx
// expires, and stops the WebSocket forwarding loop.
func (s *Server) Shutdown(ctx context.Context) error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for tests driving the full middleware stack.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// renderErrors converts handler errors into the structured JSON bodies the
// dashboard expects: string messages become {"error": msg}; envelope maps
// (validation failures, internal errors) are written as built.
func renderErrors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)
			if err == nil || c.Response().Committed {
				return err
			}
			he, ok := err.(*echo.HTTPError)
			if !ok {
				he = echo.NewHTTPError(http.StatusInternalServerError, map[string]any{
					"error":   "internal server error",
					"message": err.Error(),
				})
			}
			body := he.Message
			if msg, isString := body.(string); isString {
				body = map[string]any{"error": msg}
			}
			return c.JSON(he.Code, body)
		}
	}
}

// wsOriginPatterns derives the WebSocket origin allowlist from configuration.
// Entries are host patterns; full URLs are reduced to their host.
func wsOriginPatterns(cfg *config.Config) []string {
	if cfg.System == nil {
		return nil
	}
	var patterns []string
	add := func(entry string) {
		if entry == "" {
			return
		}
		if strings.Contains(entry, "://") {
			if u, err := url.Parse(entry); err == nil && u.Host != "" {
				patterns = append(patterns, u.Host)
			}
			return
		}
		patterns = append(patterns, entry)
	}
	add(cfg.System.DashboardURL)
	for _, origin := range cfg.System.AllowedWSOrigins {
		add(origin)
	}
	return patterns
}

// --- WebSocket frames ---

// stateSyncFrame is the state_sync message: the full knowledge snapshot plus
// the live roster, trust scores, and control mode, with project config when
// the project has been seeded.
type stateSyncFrame struct {
	Snapshot      *models.KnowledgeSnapshot `json:"snapshot"`
	ActiveAgents  []models.AgentHandle      `json:"activeAgents"`
	TrustScores   map[string]int            `json:"trustScores"`
	ControlMode   models.ControlMode        `json:"controlMode"`
	ProjectConfig *projectResponse          `json:"projectConfig,omitempty"`
	Tick          int64                     `json:"tick"`
}

// eventFrame is the event message: the stored envelope plus workspace
// routing so the dashboard filters columns without re-deriving ownership.
type eventFrame struct {
	Event               *models.EventEnvelope `json:"event"`
	Workspace           string                `json:"workspace,omitempty"`
	SecondaryWorkspaces []string              `json:"secondaryWorkspaces,omitempty"`
}

// BroadcastStateSync pushes a fresh state_sync frame to every connected
// dashboard client. Implements services.StateNotifier. No-op with no hub or
// no clients, so roster churn on a headless server costs nothing.
func (s *Server) BroadcastStateSync() {
	if s.connManager == nil || s.connManager.ActiveConnections() == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stateSyncTimeout)
	defer cancel()
	s.connManager.Broadcast(models.WSTypeStateSync, s.buildStateSync(ctx))
}

// buildStateSync assembles the frame best-effort: a failed snapshot or
// project read degrades the frame instead of suppressing it.
func (s *Server) buildStateSync(ctx context.Context) *stateSyncFrame {
	frame := &stateSyncFrame{
		ActiveAgents: []models.AgentHandle{},
		TrustScores:  map[string]int{},
	}
	if s.ticks != nil {
		frame.Tick = s.ticks.Current()
	}
	if s.control != nil {
		frame.ControlMode = s.control.Current()
	}
	if s.gateway != nil {
		frame.ActiveAgents = s.gateway.ListHandles()
	}
	if s.trust != nil {
		frame.TrustScores = s.trust.GetAllScores()
	}
	if s.snaps != nil {
		snap, err := s.snaps.Snapshot(ctx)
		if err != nil {
			slog.Warn("State sync without snapshot", "error", err)
		} else {
			frame.Snapshot = snap
		}
	}
	if s.store != nil {
		if project, err := s.store.GetProject(ctx); err == nil {
			frame.ProjectConfig = newProjectResponse(project)
		}
	}
	return frame
}

// enqueueWSEvent hands a bus envelope to the forwarding loop. Bus handlers
// run synchronously in the publisher, so this never blocks: a full buffer
// drops the frame.
func (s *Server) enqueueWSEvent(env *models.EventEnvelope) {
	select {
	case s.wsEvents <- env:
	default:
		slog.Debug("WebSocket forward buffer full, dropping event",
			"source_event_id", env.SourceEventID)
	}
}

// forwardLoop drains the forwarding channel in order and broadcasts each
// envelope as an event frame.
func (s *Server) forwardLoop() {
	for {
		select {
		case env := <-s.wsEvents:
			if s.connManager == nil || s.connManager.ActiveConnections() == 0 {
				continue
			}
			primary, secondary := s.classifyWorkspace(env)
			s.connManager.Broadcast(models.WSTypeEvent, &eventFrame{
				Event:               env,
				Workspace:           primary,
				SecondaryWorkspaces: secondary,
			})
		case <-s.done:
			return
		}
	}
}

// classifyWorkspace computes workspace routing for one envelope: artifact
// events belong to the artifact's workstream, coherence events span their
// affected workstreams, everything else follows the source agent.
func (s *Server) classifyWorkspace(env *models.EventEnvelope) (string, []string) {
	switch {
	case env.Event.Artifact != nil && env.Event.Artifact.Workstream != "":
		return env.Event.Artifact.Workstream, nil
	case env.Event.Coherence != nil && len(env.Event.Coherence.AffectedWorkstreams) > 0:
		affected := env.Event.Coherence.AffectedWorkstreams
		return affected[0], affected[1:]
	}
	if s.agents != nil {
		if ws, ok := s.agents.WorkstreamOf(env.AgentID); ok {
			return ws, nil
		}
	}
	return "", nil
}
