package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"clockalert/internal/models"
	"clockalert/internal/store"
	"clockalert/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Add(string) error              { return f.err }
func (f failingStore) Remove(int64) error            { return f.err }
func (f failingStore) List() ([]models.Alarm, error) { return nil, f.err }

func newCommands(t *testing.T) (*Commands, *bytes.Buffer) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "alarms.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Initialize())

	var buf bytes.Buffer
	return New(st, logger.NewWithWriter(&buf, "info", "dev")), &buf
}

func TestAddListRemove(t *testing.T) {
	c, logs := newCommands(t)

	c.AddAlarm("18:39:27")
	c.AddAlarm("14:34:23")

	alarms := c.ListAlarms()
	require.Len(t, alarms, 2)
	assert.Equal(t, "14:34:23", alarms[0].Time)

	c.RemoveAlarm(alarms[0].ID)
	c.RemoveAlarm(424242)

	alarms = c.ListAlarms()
	require.Len(t, alarms, 1)
	assert.Equal(t, "18:39:27", alarms[0].Time)
	assert.Empty(t, logs.String())
}

func TestDuplicateAddIsLoggedAndSwallowed(t *testing.T) {
	c, logs := newCommands(t)

	c.AddAlarm("14:34:23")
	c.AddAlarm("14:34:23")

	assert.Len(t, c.ListAlarms(), 1)
	assert.Contains(t, logs.String(), "add_alarm failed")
	assert.Contains(t, logs.String(), "UNIQUE constraint failed: alarms.time")
}

func TestListFailureLooksEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := New(failingStore{err: errors.New("disk I/O error")}, logger.NewWithWriter(&buf, "info", "dev"))

	alarms := c.ListAlarms()
	assert.NotNil(t, alarms)
	assert.Empty(t, alarms)
	assert.Contains(t, buf.String(), "list_alarms failed")
}

func TestFailedMutationsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	c := New(failingStore{err: errors.New("disk I/O error")}, logger.NewWithWriter(&buf, "info", "dev"))

	assert.NotPanics(t, func() {
		c.AddAlarm("09:00:00")
		c.RemoveAlarm(1)
	})
	assert.Contains(t, buf.String(), "add_alarm failed")
	assert.Contains(t, buf.String(), "remove_alarm failed")
	assert.Contains(t, buf.String(), `"id":1`)
}
