package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIngest(t *testing.T) {
	m := New()

	m.RecordIngest("artifact_produced", 0.01)
	m.RecordIngest("artifact_produced", 0.02)
	m.RecordIngest("status_update", 0.005)
	m.RecordQuarantine()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsIngested.WithLabelValues("artifact_produced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsIngested.WithLabelValues("status_update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsQuarantined))
}

func TestGauges(t *testing.T) {
	m := New()

	m.SetTick(42)
	m.SetBrakeEngaged(true)
	m.SetAgentCount("running", 3)
	m.SetTrustScore("agent-1", 61)
	m.WSClientConnected()
	m.WSClientConnected()
	m.WSClientDisconnected()

	assert.Equal(t, 42.0, testutil.ToFloat64(m.CurrentTick))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BrakeEngaged))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Agents.WithLabelValues("running")))
	assert.Equal(t, 61.0, testutil.ToFloat64(m.AgentTrustScore.WithLabelValues("agent-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSClients))

	m.SetBrakeEngaged(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BrakeEngaged))

	m.DropAgent("agent-1")
	assert.Equal(t, 0, testutil.CollectAndCount(m.AgentTrustScore))
}

func TestRecordDecisionResolved(t *testing.T) {
	m := New()

	m.SetOpenDecisions(4)
	m.RecordDecisionResolved("selected", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DecisionsResolved.WithLabelValues("selected")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DecisionsOpen))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.SetTick(7)
	m.RecordToolGateOutcome("allowed")
	m.RecordInjection("periodic")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), "steward_tick 7")
	assert.Contains(t, string(body), `steward_tool_gate_outcomes_total{outcome="allowed"} 1`)
	assert.Contains(t, string(body), `steward_context_injections_total{reason="periodic"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

// Two instances must not collide; each owns its registry.
func TestIndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.SetTick(1)
	b.SetTick(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CurrentTick))
	assert.Equal(t, 2.0, testutil.ToFloat64(b.CurrentTick))
}
