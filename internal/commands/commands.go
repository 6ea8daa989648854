// Package commands is the boundary between the UI and the alarm store.
//
// Store errors stop here: they are logged and the caller gets a
// success-shaped result, so a failed add or remove looks like nothing
// happened and a failed list looks like an empty store. Callers cannot tell
// an empty list from a failed one.
package commands

import (
	"log/slog"

	"clockalert/internal/models"
	"clockalert/pkg/logger"
)

// Store is the subset of the alarm store the commands need.
type Store interface {
	Add(alarmTime string) error
	Remove(id int64) error
	List() ([]models.Alarm, error)
}

type Commands struct {
	store Store
	log   *logger.Logger
}

func New(store Store, l *logger.Logger) *Commands {
	if l == nil {
		l = logger.Discard()
	}
	return &Commands{store: store, log: l}
}

// AddAlarm is the add_alarm command.
func (c *Commands) AddAlarm(alarmTime string) {
	c.softFail("add_alarm", c.store.Add(alarmTime), slog.String("time", alarmTime))
}

// RemoveAlarm is the remove_alarm command. Unknown ids are a no-op.
func (c *Commands) RemoveAlarm(id int64) {
	c.softFail("remove_alarm", c.store.Remove(id), slog.Int64("id", id))
}

// ListAlarms is the list_alarms command; it never returns nil.
func (c *Commands) ListAlarms() []models.Alarm {
	alarms, err := c.store.List()
	if c.softFail("list_alarms", err) {
		return []models.Alarm{}
	}
	return alarms
}

// softFail logs err, if any, and reports whether the command failed.
func (c *Commands) softFail(command string, err error, attrs ...any) bool {
	if err == nil {
		return false
	}
	c.log.Error(command+" failed", append(attrs, logger.Err(err))...)
	return true
}
