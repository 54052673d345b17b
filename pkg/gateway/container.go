package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/steward-io/steward/pkg/models"
)

// ContainerPluginName runs the adapter shim inside a docker container.
const ContainerPluginName = "container"

// ContainerConfig describes the sandbox image and its lifecycle budgets.
type ContainerConfig struct {
	Image string `yaml:"image"`

	// AdapterPort is the port the shim listens on inside the container. The
	// host side comes from the port pool.
	AdapterPort int `yaml:"adapter_port"`

	BackendURL             string `yaml:"backend_url"`
	ArtifactUploadEndpoint string `yaml:"artifact_upload_endpoint"`

	// PollInterval and StartupTimeout bound the /health readiness loop.
	PollInterval   time.Duration `yaml:"poll_interval"`
	StartupTimeout time.Duration `yaml:"startup_timeout"`

	// StopTimeout is the SIGTERM window before docker escalates to SIGKILL.
	StopTimeout time.Duration `yaml:"stop_timeout"`

	// Resource limits, zero means unlimited.
	MemoryBytes int64 `yaml:"memory_bytes"`
	NanoCPUs    int64 `yaml:"nano_cpus"`

	Env map[string]string `yaml:"env"`
}

func (c *ContainerConfig) applyDefaults() {
	if c.AdapterPort <= 0 {
		c.AdapterPort = 9200
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.StartupTimeout <= 0 {
		c.StartupTimeout = 60 * time.Second
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = 10 * time.Second
	}
}

// ExitListener is notified when a sandbox container stops on its own.
type ExitListener func(agentID string, exitCode int64)

// ContainerPlugin manages one docker container per agent, each exposing the
// adapter control API on a pooled host port.
type ContainerPlugin struct {
	cfg    ContainerConfig
	docker client.APIClient
	ports  *PortPool
	tokens TokenIssuer
	emit   EventHandler

	mu         sync.Mutex
	containers map[string]*managedContainer
	listeners  []ExitListener
}

type managedContainer struct {
	agentID     string
	containerID string
	hostPort    int
	client      *controlClient
	events      *eventClient
	watchCancel context.CancelFunc
}

// NewContainerPlugin connects to the docker daemon from the environment.
func NewContainerPlugin(cfg ContainerConfig, ports *PortPool, tokens TokenIssuer, emit EventHandler) (*ContainerPlugin, error) {
	if cfg.Image == "" {
		return nil, fmt.Errorf("container plugin requires an image")
	}
	cfg.applyDefaults()
	docker, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	if ports == nil {
		ports = DefaultPortPool()
	}
	return &ContainerPlugin{
		cfg:        cfg,
		docker:     docker,
		ports:      ports,
		tokens:     tokens,
		emit:       emit,
		containers: make(map[string]*managedContainer),
	}, nil
}

func (p *ContainerPlugin) Name() string { return ContainerPluginName }

func (p *ContainerPlugin) Capabilities() Capabilities {
	return Capabilities{
		Pause:            true,
		Resume:           true,
		ContextInjection: true,
		BriefUpdate:      true,
		Checkpoint:       true,
	}
}

// OnExit registers a listener for sandbox containers that stop on their own.
func (p *ContainerPlugin) OnExit(listener ExitListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, listener)
}

// Spawn creates and starts the sandbox, waits for /health, then posts the
// brief.
func (p *ContainerPlugin) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	mc, err := p.launch(ctx, brief.AgentID)
	if err != nil {
		return nil, err
	}

	handle, err := mc.client.Spawn(ctx, brief)
	if err != nil {
		p.destroy(context.WithoutCancel(ctx), mc)
		return nil, fmt.Errorf("sandbox spawn: %w", err)
	}
	p.finishLaunch(ctx, mc)

	handle.AgentID = brief.AgentID
	handle.Status = models.AgentRunning
	return handle, nil
}

// Resume starts a fresh sandbox and replays the serialized state into it.
func (p *ContainerPlugin) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	mc, err := p.launch(ctx, state.AgentID)
	if err != nil {
		return nil, err
	}

	handle, err := mc.client.Resume(ctx, state)
	if err != nil {
		p.destroy(context.WithoutCancel(ctx), mc)
		return nil, fmt.Errorf("sandbox resume: %w", err)
	}
	p.finishLaunch(ctx, mc)

	handle.AgentID = state.AgentID
	handle.Status = models.AgentRunning
	return handle, nil
}

// Pause serializes the agent, then stops and removes its container.
func (p *ContainerPlugin) Pause(ctx context.Context, handle *models.AgentHandle) (*models.SerializedAgentState, error) {
	mc, err := p.take(handle.AgentID)
	if err != nil {
		return nil, err
	}

	state, perr := mc.client.Pause(ctx)
	p.destroy(context.WithoutCancel(ctx), mc)
	if perr != nil {
		return nil, fmt.Errorf("sandbox pause: %w", perr)
	}
	if state.AgentID == "" {
		state.AgentID = handle.AgentID
	}
	if state.SerializedBy == "" {
		state.SerializedBy = models.SerializedByPause
	}
	return state, nil
}

// Kill stops and removes the sandbox. With Grace the shim first checkpoints.
func (p *ContainerPlugin) Kill(ctx context.Context, handle *models.AgentHandle, opts models.KillOptions) (*models.KillResult, error) {
	mc, err := p.take(handle.AgentID)
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
		if r, kerr := mc.client.Kill(graceCtx, opts); kerr == nil {
			result = r
			result.CleanShutdown = true
		} else {
			slog.Warn("Sandbox graceful kill failed, stopping container", "agent_id", handle.AgentID, "error", kerr)
		}
	}
	p.destroy(context.WithoutCancel(ctx), mc)
	return result, nil
}

func (p *ContainerPlugin) ResolveDecision(ctx context.Context, handle *models.AgentHandle, decisionID string, res *models.Resolution) error {
	mc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return mc.client.ResolveDecision(ctx, decisionID, res)
}

func (p *ContainerPlugin) InjectContext(ctx context.Context, handle *models.AgentHandle, injection *models.ContextInjection) error {
	mc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return mc.client.InjectContext(ctx, injection)
}

func (p *ContainerPlugin) UpdateBrief(ctx context.Context, handle *models.AgentHandle, patch map[string]any) error {
	mc, err := p.lookup(handle.AgentID)
	if err != nil {
		return err
	}
	return mc.client.UpdateBrief(ctx, patch)
}

func (p *ContainerPlugin) RequestCheckpoint(ctx context.Context, handle *models.AgentHandle, decisionID string) (*models.SerializedAgentState, error) {
	mc, err := p.lookup(handle.AgentID)
	if err != nil {
		return nil, err
	}
	state, err := mc.client.RequestCheckpoint(ctx, decisionID)
	if err != nil {
		return nil, err
	}
	if state.AgentID == "" {
		state.AgentID = handle.AgentID
	}
	return state, nil
}

// launch creates and starts the container, then polls /health until ready.
func (p *ContainerPlugin) launch(ctx context.Context, agentID string) (*managedContainer, error) {
	if agentID == "" {
		return nil, fmt.Errorf("brief missing agentId")
	}
	p.mu.Lock()
	if _, exists := p.containers[agentID]; exists {
		p.mu.Unlock()
		return nil, fmt.Errorf("agent %s already has a sandbox container", agentID)
	}
	p.mu.Unlock()

	hostPort, err := p.ports.Acquire()
	if err != nil {
		return nil, err
	}

	bootstrap, err := buildBootstrap(p.tokens, p.cfg.BackendURL, p.cfg.ArtifactUploadEndpoint, agentID)
	if err != nil {
		p.ports.Release(hostPort)
		return nil, err
	}

	adapterPort, err := nat.NewPort("tcp", fmt.Sprintf("%d", p.cfg.AdapterPort))
	if err != nil {
		p.ports.Release(hostPort)
		return nil, fmt.Errorf("adapter port: %w", err)
	}

	env := []string{
		fmt.Sprintf("AGENT_BOOTSTRAP=%s", bootstrap),
		fmt.Sprintf("ADAPTER_PORT=%d", p.cfg.AdapterPort),
	}
	for k, v := range p.cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	resp, err := p.docker.ContainerCreate(ctx,
		&container.Config{
			Image:        p.cfg.Image,
			Env:          env,
			ExposedPorts: nat.PortSet{adapterPort: struct{}{}},
			Labels: map[string]string{
				"io.steward.agent": agentID,
			},
		},
		&container.HostConfig{
			PortBindings: nat.PortMap{
				adapterPort: []nat.PortBinding{{
					HostIP:   "127.0.0.1",
					HostPort: fmt.Sprintf("%d", hostPort),
				}},
			},
			Resources: container.Resources{
				Memory:   p.cfg.MemoryBytes,
				NanoCPUs: p.cfg.NanoCPUs,
			},
		},
		nil, nil, fmt.Sprintf("steward-agent-%s", agentID))
	if err != nil {
		p.ports.Release(hostPort)
		return nil, fmt.Errorf("create sandbox container: %w", err)
	}

	mc := &managedContainer{
		agentID:     agentID,
		containerID: resp.ID,
		hostPort:    hostPort,
		client:      newControlClient(fmt.Sprintf("http://127.0.0.1:%d", hostPort)),
	}
	mc.events = newEventClient(agentID, fmt.Sprintf("ws://127.0.0.1:%d/events", hostPort), p.handleEvent)

	if err := p.docker.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		p.destroy(context.WithoutCancel(ctx), mc)
		return nil, fmt.Errorf("start sandbox container: %w", err)
	}
	slog.Info("Started sandbox container", "agent_id", agentID, "container_id", resp.ID[:12], "host_port", hostPort)

	if err := p.awaitHealthy(ctx, mc); err != nil {
		p.destroy(context.WithoutCancel(ctx), mc)
		return nil, err
	}

	p.mu.Lock()
	p.containers[agentID] = mc
	p.mu.Unlock()
	return mc, nil
}

// awaitHealthy polls the shim's /health until it answers 200 or the startup
// budget runs out.
func (p *ContainerPlugin) awaitHealthy(ctx context.Context, mc *managedContainer) error {
	deadline := time.NewTimer(p.cfg.StartupTimeout)
	defer deadline.Stop()
	tick := time.NewTicker(p.cfg.PollInterval)
	defer tick.Stop()

	for {
		probeCtx, cancel := context.WithTimeout(ctx, p.cfg.PollInterval)
		err := mc.client.Health(probeCtx)
		cancel()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("sandbox for agent %s not healthy within %s", mc.agentID, p.cfg.StartupTimeout)
		case <-tick.C:
		}
	}
}

// finishLaunch starts the event stream and the exit watcher.
func (p *ContainerPlugin) finishLaunch(ctx context.Context, mc *managedContainer) {
	base := context.WithoutCancel(ctx)
	mc.events.Start(base)

	watchCtx, cancel := context.WithCancel(base)
	mc.watchCancel = cancel
	go p.watchExit(watchCtx, mc)
}

// watchExit waits for the container to stop on its own and cleans up.
func (p *ContainerPlugin) watchExit(ctx context.Context, mc *managedContainer) {
	waitCh, errCh := p.docker.ContainerWait(ctx, mc.containerID, container.WaitConditionNotRunning)

	var exitCode int64
	select {
	case <-ctx.Done():
		return
	case err := <-errCh:
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Sandbox exit watch failed", "agent_id", mc.agentID, "error", err)
			return
		}
	case status := <-waitCh:
		exitCode = status.StatusCode
	}

	p.mu.Lock()
	current, ok := p.containers[mc.agentID]
	if !ok || current != mc {
		p.mu.Unlock()
		return
	}
	delete(p.containers, mc.agentID)
	listeners := make([]ExitListener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	mc.events.Stop()
	p.removeContainer(context.Background(), mc)
	p.ports.Release(mc.hostPort)
	slog.Warn("Sandbox container exited", "agent_id", mc.agentID, "exit_code", exitCode)
	emitCrashEvent(p.emit, mc.agentID, fmt.Sprintf("sandbox container exited with code %d", exitCode))
	for _, l := range listeners {
		l(mc.agentID, exitCode)
	}
}

func (p *ContainerPlugin) take(agentID string) (*managedContainer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	mc, ok := p.containers[agentID]
	if !ok {
		return nil, fmt.Errorf("no sandbox container for agent %s", agentID)
	}
	delete(p.containers, agentID)
	return mc, nil
}

func (p *ContainerPlugin) lookup(agentID string) (*managedContainer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	mc, ok := p.containers[agentID]
	if !ok {
		return nil, fmt.Errorf("no sandbox container for agent %s", agentID)
	}
	return mc, nil
}

// destroy stops the watcher and event stream, stops and removes the
// container, and releases the host port.
func (p *ContainerPlugin) destroy(ctx context.Context, mc *managedContainer) {
	p.mu.Lock()
	if current, ok := p.containers[mc.agentID]; ok && current == mc {
		delete(p.containers, mc.agentID)
	}
	p.mu.Unlock()

	if mc.watchCancel != nil {
		mc.watchCancel()
	}
	if mc.events != nil {
		mc.events.Stop()
	}
	p.removeContainer(ctx, mc)
	p.ports.Release(mc.hostPort)
}

func (p *ContainerPlugin) removeContainer(ctx context.Context, mc *managedContainer) {
	stopSecs := int(p.cfg.StopTimeout / time.Second)
	if err := p.docker.ContainerStop(ctx, mc.containerID, container.StopOptions{Timeout: &stopSecs}); err != nil {
		slog.Warn("Failed to stop sandbox container", "agent_id", mc.agentID, "error", err)
	}
	if err := p.docker.ContainerRemove(ctx, mc.containerID, container.RemoveOptions{Force: true}); err != nil {
		slog.Warn("Failed to remove sandbox container", "agent_id", mc.agentID, "error", err)
	}
}

func (p *ContainerPlugin) handleEvent(env *models.EventEnvelope) {
	if p.emit != nil {
		p.emit(env)
	}
}
