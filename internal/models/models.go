package models

import "time"

// TimeLayout is the HH:MM:SS wall-clock format alarms are stored and matched in.
const TimeLayout = "15:04:05"

// Alarm is a stored alarm. Both fields are immutable once the row exists.
type Alarm struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Time string `gorm:"column:time;not null;unique" json:"time"`
}

func (Alarm) TableName() string { return "alarms" }

// FormatTime renders t the way alarm times are stored, in t's own location.
func FormatTime(t time.Time) string { return t.Format(TimeLayout) }
