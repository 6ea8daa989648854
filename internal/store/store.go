package store

import (
	"sync"
	"time"

	"clockalert/internal/models"
	"clockalert/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const createTableQuery = `CREATE TABLE IF NOT EXISTS alarms (
	id    INTEGER PRIMARY KEY,
	time  TEXT NOT NULL UNIQUE
)`

// SQLiteStore owns the single connection to the alarm database. Every
// operation holds mu for its whole duration and runs one statement.
type SQLiteStore struct {
	DB *gorm.DB
	mu sync.Mutex
}

type Option func(*gorm.Config)

// WithLogger routes gorm's statement log through l.
func WithLogger(l *logger.Logger) Option {
	return func(c *gorm.Config) {
		c.Logger = gormlogger.New(l, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
}

func NewSQLiteStore(path string, opts ...Option) (*SQLiteStore, error) {
	cfg := &gorm.Config{Logger: gormlogger.Discard}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, wrap("open", CodeOpen, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, wrap("open", CodeOpen, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{DB: db}, nil
}

// Initialize creates the alarms table if it does not exist yet. It must run
// before any other operation and is safe to call repeatedly.
func (s *SQLiteStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrap("initialize", CodeSchema, s.DB.Exec(createTableQuery).Error)
}

// Add inserts an alarm at alarmTime; the id is assigned by the database.
func (s *SQLiteStore) Add(alarmTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.DB.Create(&models.Alarm{Time: alarmTime}).Error
	if isUniqueViolation(err) {
		return wrap("add", CodeDuplicateTime, err)
	}
	return wrap("add", CodeQuery, err)
}

// Remove deletes the alarm with id. Removing an unknown id is a no-op.
func (s *SQLiteStore) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return wrap("remove", CodeQuery, s.DB.Delete(&models.Alarm{}, id).Error)
}

// List returns every alarm ordered by time. An empty store yields an empty,
// non-nil slice.
func (s *SQLiteStore) List() ([]models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Alarm{}
	if err := s.DB.Order("time asc").Find(&out).Error; err != nil {
		return nil, wrap("list", CodeQuery, err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.DB.DB()
	if err != nil {
		return wrap("close", CodeOpen, err)
	}
	return wrap("close", CodeOpen, sqlDB.Close())
}
