package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDashboardBundle(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
		[]byte("<html><body>steward dashboard</body></html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"),
		[]byte("console.log('steward');"), 0o644))
	return dir
}

func TestDashboardSPAFallback(t *testing.T) {
	s := NewServer(Deps{DashboardDir: writeDashboardBundle(t)})

	serve := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.Echo().ServeHTTP(rec, req)
		return rec
	}

	t.Run("client-side routes get index.html", func(t *testing.T) {
		for _, path := range []string{"/", "/agents", "/decisions/dec-1"} {
			rec := serve(path)
			require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
			assert.Contains(t, rec.Body.String(), "steward dashboard")
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		}
	})

	t.Run("static assets served directly", func(t *testing.T) {
		rec := serve("/assets/app.js")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "console.log")
	})

	t.Run("api misses stay json 404s", func(t *testing.T) {
		rec := serve("/api/nonexistent")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "not found"}`, rec.Body.String())
	})
}

func TestDashboardDisabledWithoutIndex(t *testing.T) {
	s := NewServer(Deps{DashboardDir: t.TempDir()})

	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
