package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"clockalert/internal/api"
	"clockalert/internal/commands"
	"clockalert/internal/events"
	"clockalert/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDaemon(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "alarms.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Initialize())

	r := gin.New()
	api.RegisterRoutes(r, commands.New(st, nil), events.NewHub(nil))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, addr string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(context.Background(), &out).Run(append([]string{"alarmctl", "--addr", addr}, args...))
	return out.String(), err
}

func TestAddListRemove(t *testing.T) {
	addr := newDaemon(t)

	out, err := run(t, addr, "ls")
	require.NoError(t, err)
	assert.Equal(t, "no alarms\n", out)

	out, err = run(t, addr, "add", "07:15:00")
	require.NoError(t, err)
	assert.Equal(t, "alarm set for 07:15:00\n", out)

	out, err = run(t, addr, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "07:15:00")

	_, err = run(t, addr, "rm", "1")
	require.NoError(t, err)

	out, err = run(t, addr, "ls")
	require.NoError(t, err)
	assert.Equal(t, "no alarms\n", out)
}

func TestArgumentErrors(t *testing.T) {
	addr := newDaemon(t)

	_, err := run(t, addr, "add")
	assert.ErrorIs(t, err, errUsage)

	_, err = run(t, addr, "rm", "x")
	assert.Error(t, err)
}
