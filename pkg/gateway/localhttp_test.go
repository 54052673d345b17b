package gateway

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAnnouncement(t *testing.T) {
	t.Run("finds the port line among noise", func(t *testing.T) {
		out := strings.NewReader("booting shim\nloading provider config\n{\"port\": 9207}\n{\"port\": 9999}\nsteady state\n")
		announced := make(chan int, 1)
		scanAnnouncement("a1", out, announced)

		select {
		case port := <-announced:
			assert.Equal(t, 9207, port)
		default:
			t.Fatal("no port announced")
		}
		// Only the first announcement counts.
		select {
		case port := <-announced:
			t.Fatalf("unexpected second announcement %d", port)
		default:
		}
	})

	t.Run("no announcement", func(t *testing.T) {
		announced := make(chan int, 1)
		scanAnnouncement("a1", strings.NewReader("just logs\n"), announced)
		select {
		case <-announced:
			t.Fatal("announced a port from plain logs")
		default:
		}
	})
}

func TestNewLocalHTTPPlugin(t *testing.T) {
	t.Run("requires a command", func(t *testing.T) {
		_, err := NewLocalHTTPPlugin(LocalHTTPConfig{}, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		p, err := NewLocalHTTPPlugin(LocalHTTPConfig{Command: []string{"steward-shim"}}, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, LocalHTTPPluginName, p.Name())
		assert.Equal(t, 30*time.Second, p.cfg.StartupTimeout)
		assert.True(t, p.Capabilities().Checkpoint)
	})
}

func TestBuildBootstrap(t *testing.T) {
	t.Run("without issuer", func(t *testing.T) {
		raw, err := buildBootstrap(nil, "http://127.0.0.1:8080", "http://127.0.0.1:8080/api/artifacts", "a1")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &got))
		assert.Equal(t, "a1", got["agentId"])
		assert.Equal(t, "http://127.0.0.1:8080", got["backendUrl"])
		assert.NotContains(t, got, "backendToken")
	})

	t.Run("with issuer", func(t *testing.T) {
		issuer := tokenIssuerFunc(func(agentID string) (string, int64, error) {
			return "tok-" + agentID, 1756200000, nil
		})
		raw, err := buildBootstrap(issuer, "http://127.0.0.1:8080", "", "a2")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &got))
		assert.Equal(t, "tok-a2", got["backendToken"])
		assert.Equal(t, float64(1756200000), got["tokenExpiresAt"])
	})
}

type tokenIssuerFunc func(agentID string) (string, int64, error)

func (f tokenIssuerFunc) IssueAgentToken(agentID string) (string, int64, error) {
	return f(agentID)
}
