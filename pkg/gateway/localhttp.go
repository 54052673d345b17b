package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/steward-io/steward/pkg/models"
)

// LocalHTTPPluginName runs the adapter shim as a child process on this host.
const LocalHTTPPluginName = "local_http"

// killGraceWait is the SIGTERM-to-SIGKILL window for shim processes.
const killGraceWait = 5 * time.Second

// LocalHTTPConfig describes how to launch the adapter shim.
type LocalHTTPConfig struct {
	// Command is the shim argv; the allocated port is handed to the child via
	// the ADAPTER_PORT environment variable.
	Command []string `yaml:"command"`
	WorkDir string   `yaml:"work_dir"`

	// BackendURL and ArtifactUploadEndpoint land in AGENT_BOOTSTRAP so the
	// sandboxed agent can call home.
	BackendURL             string `yaml:"backend_url"`
	ArtifactUploadEndpoint string `yaml:"artifact_upload_endpoint"`

	// StartupTimeout bounds the wait for the shim's port announcement.
	StartupTimeout time.Duration `yaml:"startup_timeout"`
}

// LocalHTTPPlugin launches one shim child process per agent and speaks the
// adapter control protocol to it.
type LocalHTTPPlugin struct {
	cfg    LocalHTTPConfig
	ports  *PortPool
	tokens TokenIssuer
	emit   EventHandler

	mu    sync.Mutex
	procs map[string]*localProcess
}

type localProcess struct {
	agentID string
	port    int
	cmd     *exec.Cmd
	client  *controlClient
	events  *eventClient
	exited  chan struct{}
}

// NewLocalHTTPPlugin builds the local-process transport. tokens may be nil
// (the bootstrap then carries no backend token); emit may be nil.
func NewLocalHTTPPlugin(cfg LocalHTTPConfig, ports *PortPool, tokens TokenIssuer, emit EventHandler) (*LocalHTTPPlugin, error) {
	if len(cfg.Command) == 0 {
		return nil, fmt.Errorf("local_http plugin requires a shim command")
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = 30 * time.Second
	}
	if ports == nil {
		ports = DefaultPortPool()
	}
	return &LocalHTTPPlugin{
		cfg:    cfg,
		ports:  ports,
		tokens: tokens,
		emit:   emit,
		procs:  make(map[string]*localProcess),
	}, nil
}

func (p *LocalHTTPPlugin) Name() string { return LocalHTTPPluginName }

func (p *LocalHTTPPlugin) Capabilities() Capabilities {
	return Capabilities{
		Pause:            true,
		Resume:           true,
		ContextInjection: true,
		BriefUpdate:      true,
		Checkpoint:       true,
	}
}

// Spawn launches the shim, waits for its port announcement, then posts the
// brief.
func (p *LocalHTTPPlugin) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	proc, err := p.launch(ctx, brief.AgentID)
	if err != nil {
		return nil, err
	}

	handle, err := proc.client.Spawn(ctx, brief)
	if err != nil {
		p.teardown(proc)
		return nil, fmt.Errorf("shim spawn: %w", err)
	}
	p.finishLaunch(ctx, proc)

	handle.AgentID = brief.AgentID
	handle.Status = models.AgentRunning
	return handle, nil
}

// Resume launches a fresh shim and replays the serialized state into it.
func (p *LocalHTTPPlugin) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	proc, err := p.launch(ctx, state.AgentID)
	if err != nil {
		return nil, err
	}

	handle, err := proc.client.Resume(ctx, state)
	if err != nil {
		p.teardown(proc)
		return nil, fmt.Errorf("shim resume: %w", err)
	}
	p.finishLaunch(ctx, proc)

	handle.AgentID = state.AgentID
	handle.Status = models.AgentRunning
	return handle, nil
}

// Pause serializes the agent through the shim, then terminates the child. A
// later Resume starts a new one.
func (p *LocalHTTPPlugin) Pause(ctx context.Context, handle *models.AgentHandle) (*models.SerializedAgentState, error) {
	proc, err := p.take(handle.AgentID)
	if err != nil {
		return nil, err
	}

	state, perr := proc.client.Pause(ctx)
	p.teardown(proc)
	if perr != nil {
		return nil, fmt.Errorf("shim pause: %w", perr)
	}
	if state.AgentID == "" {
		state.AgentID = handle.AgentID
	}
	if state.SerializedBy == "" {
		state.SerializedBy = models.SerializedByPause
	}
	return state, nil
}

// Kill tears the child down. With Grace the shim first gets a chance to
// checkpoint and report extracted artifacts.
func (p *LocalHTTPPlugin) Kill(ctx context.Context, handle *models.AgentHandle, opts models.KillOptions) (*models.KillResult, error) {
	proc, err := p.take(handle.AgentID)
	if err != nil {
		return nil, err
	}

	result := &models.KillResult{}
	if opts.Grace {
		graceCtx := ctx
		if opts.GraceTimeoutMs > 0 {
			var cancel context.CancelFunc
			graceCtx, cancel = context.WithTimeout(ctx, time.Duration(opts.GraceTimeoutMs)*time.Millisecond)
			defer cancel()
		}
		if r, kerr := proc.client.Kill(graceCtx, opts); kerr == nil {
			result = r
			result.CleanShutdown = true
		} else {
			slog.Warn("Shim graceful kill failed, falling back to signal", "agent_id", handle.AgentID, "error", kerr)
		}
	}
	p.teardown(proc)
	return result, nil
}

func (p *LocalHTTPPlugin) ResolveDecision(ctx context.Context, handle *models.AgentHandle, decisionID string, res *models.Resolution) error {
	proc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return proc.client.ResolveDecision(ctx, decisionID, res)
}

func (p *LocalHTTPPlugin) InjectContext(ctx context.Context, handle *models.AgentHandle, injection *models.ContextInjection) error {
	proc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return proc.client.InjectContext(ctx, injection)
}

func (p *LocalHTTPPlugin) UpdateBrief(ctx context.Context, handle *models.AgentHandle, patch map[string]any) error {
	proc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return proc.client.UpdateBrief(ctx, patch)
}

func (p *LocalHTTPPlugin) RequestCheckpoint(ctx context.Context, handle *models.AgentHandle, decisionID string) (*models.SerializedAgentState, error) {
	proc, err := p.lookup(handle.AgentID)
	if err != nil {
		return nil, err
	}
	state, err := proc.client.RequestCheckpoint(ctx, decisionID)
	if err != nil {
		return nil, err
	}
	if state.AgentID == "" {
		state.AgentID = handle.AgentID
	}
	return state, nil
}

// launch starts the child and blocks until it announces its control port.
func (p *LocalHTTPPlugin) launch(ctx context.Context, agentID string) (*localProcess, error) {
	if agentID == "" {
		return nil, fmt.Errorf("brief missing agentId")
	}
	p.mu.Lock()
	if _, exists := p.procs[agentID]; exists {
		p.mu.Unlock()
		return nil, fmt.Errorf("agent %s already has a shim process", agentID)
	}
	p.mu.Unlock()

	port, err := p.ports.Acquire()
	if err != nil {
		return nil, err
	}

	bootstrap, err := buildBootstrap(p.tokens, p.cfg.BackendURL, p.cfg.ArtifactUploadEndpoint, agentID)
	if err != nil {
		p.ports.Release(port)
		return nil, err
	}

	cmd := exec.Command(p.cfg.Command[0], p.cfg.Command[1:]...)
	cmd.Dir = p.cfg.WorkDir
	env := os.Environ()
	env = append(env, fmt.Sprintf("AGENT_BOOTSTRAP=%s", bootstrap))
	env = append(env, fmt.Sprintf("ADAPTER_PORT=%d", port))
	cmd.Env = env
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		p.ports.Release(port)
		return nil, fmt.Errorf("shim stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		p.ports.Release(port)
		return nil, fmt.Errorf("start shim: %w", err)
	}
	slog.Info("Started adapter shim", "agent_id", agentID, "pid", cmd.Process.Pid, "port", port)

	proc := &localProcess{
		agentID: agentID,
		port:    port,
		cmd:     cmd,
		exited:  make(chan struct{}),
	}

	announced := make(chan int, 1)
	go scanAnnouncement(agentID, stdout, announced)
	go func() {
		_ = cmd.Wait()
		close(proc.exited)
	}()

	select {
	case <-ctx.Done():
		p.teardown(proc)
		return nil, ctx.Err()
	case <-proc.exited:
		p.ports.Release(port)
		return nil, fmt.Errorf("shim for agent %s exited before announcing its port", agentID)
	case <-time.After(p.cfg.StartupTimeout):
		p.teardown(proc)
		return nil, fmt.Errorf("shim for agent %s did not announce a port within %s", agentID, p.cfg.StartupTimeout)
	case got := <-announced:
		if got != port {
			// The announcement wins; the lease is kept so nothing else
			// reuses the assigned port while the shim lives.
			slog.Warn("Shim announced unexpected port", "agent_id", agentID, "assigned", port, "announced", got)
		}
		proc.client = newControlClient(fmt.Sprintf("http://127.0.0.1:%d", got))
		proc.events = newEventClient(agentID, fmt.Sprintf("ws://127.0.0.1:%d/events", got), p.handleEvent)
	}

	p.mu.Lock()
	p.procs[agentID] = proc
	p.mu.Unlock()
	return proc, nil
}

// finishLaunch starts the event stream once the control handshake succeeded.
func (p *LocalHTTPPlugin) finishLaunch(ctx context.Context, proc *localProcess) {
	proc.events.Start(context.WithoutCancel(ctx))

	// Crash watcher: a child that dies outside Pause/Kill is cleaned up and
	// surfaced as a fatal error event.
	go func() {
		<-proc.exited
		p.mu.Lock()
		current, ok := p.procs[proc.agentID]
		if !ok || current != proc {
			p.mu.Unlock()
			return
		}
		delete(p.procs, proc.agentID)
		p.mu.Unlock()

		proc.events.Stop()
		p.ports.Release(proc.port)
		slog.Warn("Adapter shim exited unexpectedly", "agent_id", proc.agentID, "port", proc.port)
		emitCrashEvent(p.emit, proc.agentID, "adapter shim exited unexpectedly")
	}()
}

// take removes the proc from the registry so the crash watcher stands down.
func (p *LocalHTTPPlugin) take(agentID string) (*localProcess, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	proc, ok := p.procs[agentID]
	if !ok {
		return nil, fmt.Errorf("no shim process for agent %s", agentID)
	}
	delete(p.procs, agentID)
	return proc, nil
}

func (p *LocalHTTPPlugin) lookup(agentID string) (*localProcess, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	proc, ok := p.procs[agentID]
	if !ok {
		return nil, fmt.Errorf("no shim process for agent %s", agentID)
	}
	return proc, nil
}

// teardown terminates the child (SIGTERM, then SIGKILL after the grace
// window), stops the event stream, and releases the port. Deregistering
// first keeps the crash watcher from double-releasing.
func (p *LocalHTTPPlugin) teardown(proc *localProcess) {
	p.mu.Lock()
	if current, ok := p.procs[proc.agentID]; ok && current == proc {
		delete(p.procs, proc.agentID)
	}
	p.mu.Unlock()

	select {
	case <-proc.exited:
	default:
		_ = proc.cmd.Process.Signal(syscall.SIGTERM)
		select {
		case <-proc.exited:
		case <-time.After(killGraceWait):
			_ = proc.cmd.Process.Kill()
			<-proc.exited
		}
	}
	if proc.events != nil {
		proc.events.Stop()
	}
	p.ports.Release(proc.port)
}

func (p *LocalHTTPPlugin) handleEvent(env *models.EventEnvelope) {
	if p.emit != nil {
		p.emit(env)
	}
}

// scanAnnouncement reads shim stdout until the {"port":N} line appears, then
// keeps draining so the child never blocks on a full pipe.
func scanAnnouncement(agentID string, r io.Reader, announced chan<- int) {
	scanner := bufio.NewScanner(r)
	sent := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !sent {
			var msg struct {
				Port int `json:"port"`
			}
			if err := json.Unmarshal([]byte(line), &msg); err == nil && msg.Port > 0 {
				announced <- msg.Port
				sent = true
				continue
			}
		}
		slog.Debug("Shim stdout", "agent_id", agentID, "line", line)
	}
}
