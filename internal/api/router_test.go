package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"clockalert/internal/commands"
	"clockalert/internal/events"
	"clockalert/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "alarms.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Initialize())

	r := gin.New()
	RegisterRoutes(r, commands.New(st, nil), events.NewHub(nil))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPing(t *testing.T) {
	w := get(newRouter(t), "/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestAlarmRoutes(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/alarms", strings.NewReader(`{"time":"18:37:27"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/v1/alarms")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time":"18:37:27"`)
}

func TestEventsRouteRequiresUpgrade(t *testing.T) {
	w := get(newRouter(t), "/v1/events")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	w := get(newRouter(t), "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/v1/alarms/{id}")
}
