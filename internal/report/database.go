package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"frtSuite/internal/database"
)

// RunStore is the subset of database.RunRepository the recorder needs.
type RunStore interface {
	CreateRun(run *database.Run) error
	FinishRun(id uint, status string, exitCode int, finishedAt time.Time) error
	AddScenarioResult(result *database.ScenarioResult) error
}

// DatabaseRecorder persists runs and scenario results.
type DatabaseRecorder struct {
	store RunStore
	log   *zap.Logger
	runID uint
}

func NewDatabaseRecorder(store RunStore, log *zap.Logger) *DatabaseRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &DatabaseRecorder{store: store, log: log}
}

func (r *DatabaseRecorder) StartRun(info RunInfo) error {
	run := &database.Run{
		Browser:   info.Browser,
		BaseURL:   info.BaseURL,
		Tags:      info.Tags,
		Status:    StatusRunning,
		StartedAt: info.StartedAt,
	}
	if err := r.store.CreateRun(run); err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	r.runID = run.ID
	r.log.Info("run started", zap.Uint("run_id", run.ID))
	return nil
}

func (r *DatabaseRecorder) RecordScenario(outcome ScenarioOutcome) error {
	if r.runID == 0 {
		return fmt.Errorf("record scenario %q: run not started", outcome.Scenario)
	}

	result := &database.ScenarioResult{
		RunID:          r.runID,
		Feature:        outcome.Feature,
		Scenario:       outcome.Scenario,
		Status:         outcome.Status(),
		ScreenshotPath: outcome.Screenshot,
		DurationMs:     outcome.Duration.Milliseconds(),
	}
	if outcome.Err != nil {
		result.Error = outcome.Err.Error()
	}
	if err := r.store.AddScenarioResult(result); err != nil {
		return fmt.Errorf("record scenario %q: %w", outcome.Scenario, err)
	}
	return nil
}

func (r *DatabaseRecorder) FinishRun(exitCode int) error {
	if r.runID == 0 {
		return nil
	}

	status := StatusPassed
	if exitCode != 0 {
		status = StatusFailed
	}
	if err := r.store.FinishRun(r.runID, status, exitCode, time.Now()); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	r.log.Info("run finished", zap.Uint("run_id", r.runID), zap.String("status", status))
	return nil
}
