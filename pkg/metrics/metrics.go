// Package metrics exposes Prometheus instrumentation for the control plane.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the control plane. Everything is
// registered on an instance registry so tests can create collectors freely.
type Metrics struct {
	registry *prometheus.Registry

	// Ingest pipeline
	EventsIngested    *prometheus.CounterVec
	EventsQuarantined prometheus.Counter
	IngestDuration    prometheus.Histogram

	// Oversight
	DecisionsOpen     prometheus.Gauge
	DecisionsResolved *prometheus.CounterVec
	ToolGateOutcomes  *prometheus.CounterVec
	BrakeEngaged      prometheus.Gauge

	// Agents and trust
	Agents          *prometheus.GaugeVec
	AgentTrustScore *prometheus.GaugeVec

	// Context injection
	Injections *prometheus.CounterVec

	// Clock and transport
	CurrentTick prometheus.Gauge
	WSClients   prometheus.Gauge
}

// New creates and registers all control-plane metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		EventsIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steward_events_ingested_total",
				Help: "Total events accepted into the event stream",
			},
			[]string{"event_type"},
		),

		EventsQuarantined: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "steward_events_quarantined_total",
				Help: "Total malformed events diverted to quarantine",
			},
		),

		IngestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "steward_ingest_duration_seconds",
				Help:    "Time spent validating, persisting, and fanning out one event",
				Buckets: prometheus.DefBuckets,
			},
		),

		DecisionsOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "steward_decisions_open",
				Help: "Decisions currently waiting on a human",
			},
		),

		DecisionsResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steward_decisions_resolved_total",
				Help: "Total resolved decisions",
			},
			[]string{"resolution"}, // resolution: selected, dismissed, timeout
		),

		ToolGateOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steward_tool_gate_outcomes_total",
				Help: "Total tool-gate policy evaluations",
			},
			[]string{"outcome"}, // outcome: allowed, denied, approved, rejected, timeout
		),

		BrakeEngaged: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "steward_brake_engaged",
				Help: "Whether the emergency brake is engaged (1) or released (0)",
			},
		),

		Agents: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "steward_agents",
				Help: "Registered agents by lifecycle status",
			},
			[]string{"status"},
		),

		AgentTrustScore: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "steward_agent_trust_score",
				Help: "Current global trust score per agent",
			},
			[]string{"agent_id"},
		),

		Injections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steward_context_injections_total",
				Help: "Total context injections delivered to agents",
			},
			[]string{"reason"}, // reason: periodic, reactive, staleness, brief_updated
		),

		CurrentTick: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "steward_tick",
				Help: "Current logical clock value",
			},
		),

		WSClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "steward_ws_clients",
				Help: "Connected dashboard websocket clients",
			},
		),
	}
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordIngest records one accepted event and the time the pipeline spent on it.
func (m *Metrics) RecordIngest(eventType string, seconds float64) {
	m.EventsIngested.WithLabelValues(eventType).Inc()
	m.IngestDuration.Observe(seconds)
}

// RecordQuarantine records one rejected payload.
func (m *Metrics) RecordQuarantine() {
	m.EventsQuarantined.Inc()
}

// RecordDecisionResolved records a resolution outcome and the new queue depth.
func (m *Metrics) RecordDecisionResolved(resolution string, openCount int) {
	m.DecisionsResolved.WithLabelValues(resolution).Inc()
	m.DecisionsOpen.Set(float64(openCount))
}

// SetOpenDecisions updates the pending-decision gauge.
func (m *Metrics) SetOpenDecisions(n int) {
	m.DecisionsOpen.Set(float64(n))
}

// RecordToolGateOutcome records one policy evaluation result.
func (m *Metrics) RecordToolGateOutcome(outcome string) {
	m.ToolGateOutcomes.WithLabelValues(outcome).Inc()
}

// SetBrakeEngaged flips the brake gauge.
func (m *Metrics) SetBrakeEngaged(engaged bool) {
	v := 0.0
	if engaged {
		v = 1.0
	}
	m.BrakeEngaged.Set(v)
}

// SetAgentCount sets the gauge for one lifecycle status.
func (m *Metrics) SetAgentCount(status string, n int) {
	m.Agents.WithLabelValues(status).Set(float64(n))
}

// SetTrustScore updates one agent's trust gauge.
func (m *Metrics) SetTrustScore(agentID string, score int) {
	m.AgentTrustScore.WithLabelValues(agentID).Set(float64(score))
}

// DropAgent removes per-agent series once the agent is gone.
func (m *Metrics) DropAgent(agentID string) {
	m.AgentTrustScore.DeleteLabelValues(agentID)
}

// RecordInjection records one delivered context injection.
func (m *Metrics) RecordInjection(reason string) {
	m.Injections.WithLabelValues(reason).Inc()
}

// SetTick updates the logical clock gauge.
func (m *Metrics) SetTick(tick int64) {
	m.CurrentTick.Set(float64(tick))
}

// WSClientConnected increments the websocket client gauge.
func (m *Metrics) WSClientConnected() {
	m.WSClients.Inc()
}

// WSClientDisconnected decrements the websocket client gauge.
func (m *Metrics) WSClientDisconnected() {
	m.WSClients.Dec()
}
