package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/tick"
)

func TestAdvanceTick(t *testing.T) {
	env := newTestServer(t)

	t.Run("empty body advances one tick", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/tick/advance", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp map[string]int64
		decodeJSON(t, rec, &resp)
		assert.Equal(t, int64(1), resp["tick"])
		assert.Equal(t, int64(1), env.ticks.Current())
	})

	t.Run("explicit tick count", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/tick/advance", map[string]any{"ticks": 5})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]int64
		decodeJSON(t, rec, &resp)
		assert.Equal(t, int64(6), resp["tick"])
	})

	t.Run("negative count rejected", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/tick/advance", map[string]any{"ticks": -3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "ticks must be positive")
	})
}

func TestAdvanceTickRequiresManualMode(t *testing.T) {
	timerTicks, err := tick.NewService(tick.ModeTimer, time.Minute)
	require.NoError(t, err)
	s := &Server{ticks: timerTicks}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/tick/advance", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	herr := s.advanceTickHandler(c)
	require.Error(t, herr)
	he, ok := herr.(*echo.HTTPError)
	require.True(t, ok, "expected echo.HTTPError")
	assert.Equal(t, http.StatusConflict, he.Code)
	assert.Contains(t, he.Message, "not manual")
}
