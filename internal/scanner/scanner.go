// Package scanner fires alarm_triggered events for stored alarms whose time
// matches the local wall clock.
//
// Matching is a string comparison on HH:MM:SS, once per interval. Fired alarms
// are neither deduplicated nor deleted: an alarm keeps firing on every tick
// whose formatted time equals its own, which in practice is one tick unless
// a tick runs late enough to land twice inside the same second.
package scanner

import (
	"context"
	"log/slog"
	"time"

	"clockalert/internal/models"
	"clockalert/pkg/logger"
	"clockalert/pkg/protocol"
)

const defaultInterval = time.Second

// Lister is the read side of the alarm store.
type Lister interface {
	List() ([]models.Alarm, error)
}

// Emitter delivers an event to the UI.
type Emitter interface {
	Emit(event protocol.Event, alarmID int64)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(event protocol.Event, alarmID int64)

func (f EmitterFunc) Emit(event protocol.Event, alarmID int64) { f(event, alarmID) }

type Scanner struct {
	alarms   Lister
	sink     Emitter
	interval time.Duration
	now      func() time.Time
	log      *logger.Logger
}

type Option func(*Scanner)

func WithInterval(d time.Duration) Option {
	return func(s *Scanner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces time.Now; tests use it to pin the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

func New(alarms Lister, sink Emitter, opts ...Option) *Scanner {
	s := &Scanner{
		alarms:   alarms,
		sink:     sink,
		interval: defaultInterval,
		now:      time.Now,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick checks the alarms once against now and returns how many fired. A
// failing List skips the tick.
func (s *Scanner) Tick(now time.Time) int {
	current := models.FormatTime(now.Local())

	alarms, err := s.alarms.List()
	if err != nil {
		s.log.Debug("scanner: skipping tick", slog.String("now", current), logger.Err(err))
		return 0
	}

	fired := 0
	for _, a := range alarms {
		if a.Time == current {
			s.log.Info("alarm triggered", slog.Int64("alarm_id", a.ID), slog.String("time", a.Time))
			s.sink.Emit(protocol.EventAlarmTriggered, a.ID)
			fired++
		}
	}
	return fired
}

// Run ticks, then sleeps one interval, until ctx is cancelled. The daemon
// only cancels it on process shutdown.
func (s *Scanner) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		s.Tick(s.now())
		timer.Reset(s.interval)
	}
}
