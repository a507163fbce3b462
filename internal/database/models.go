// Package database stores suite run history in PostgreSQL through GORM.
package database

import "time"

// Run is one execution of the feature suite.
// Statuses: running, passed, failed.
type Run struct {
	ID         uint      `gorm:"primaryKey"`
	Browser    string    `gorm:"type:varchar(32);not null"`
	BaseURL    string    `gorm:"type:text;not null"`
	Tags       string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(16);not null;default:'running'"`
	ExitCode   int       `gorm:"not null;default:0"`
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time
}

// ScenarioResult is the outcome of one scenario within a run.
type ScenarioResult struct {
	ID             uint      `gorm:"primaryKey"`
	RunID          uint      `gorm:"index;not null"`
	Feature        string    `gorm:"type:text;not null"`
	Scenario       string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(16);not null"` // passed, failed
	Error          string    `gorm:"type:text"`
	ScreenshotPath string    `gorm:"type:text"`
	DurationMs     int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
