package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frtSuite/internal/database"
)

// MockRunStore is a mock implementation of RunStore for testing
type MockRunStore struct {
	CreateRunFunc         func(*database.Run) error
	FinishRunFunc         func(uint, string, int, time.Time) error
	AddScenarioResultFunc func(*database.ScenarioResult) error

	results []*database.ScenarioResult
}

func (m *MockRunStore) CreateRun(run *database.Run) error {
	if m.CreateRunFunc != nil {
		return m.CreateRunFunc(run)
	}
	run.ID = 7
	return nil
}

func (m *MockRunStore) FinishRun(id uint, status string, exitCode int, finishedAt time.Time) error {
	if m.FinishRunFunc != nil {
		return m.FinishRunFunc(id, status, exitCode, finishedAt)
	}
	return nil
}

func (m *MockRunStore) AddScenarioResult(result *database.ScenarioResult) error {
	m.results = append(m.results, result)
	if m.AddScenarioResultFunc != nil {
		return m.AddScenarioResultFunc(result)
	}
	return nil
}

func TestDatabaseRecorder(t *testing.T) {
	var finishedStatus string
	var finishedID uint
	store := &MockRunStore{
		FinishRunFunc: func(id uint, status string, exitCode int, _ time.Time) error {
			finishedID, finishedStatus = id, status
			return nil
		},
	}
	rec := NewDatabaseRecorder(store, nil)

	require.NoError(t, rec.StartRun(RunInfo{Browser: "chromium", StartedAt: time.Now()}))
	require.NoError(t, rec.RecordScenario(ScenarioOutcome{Feature: "f", Scenario: "ok", Duration: 1500 * time.Millisecond}))
	require.NoError(t, rec.RecordScenario(ScenarioOutcome{Feature: "f", Scenario: "bad", Err: errors.New("assertion mismatch"), Screenshot: "bad.png"}))
	require.NoError(t, rec.FinishRun(1))

	require.Len(t, store.results, 2)
	assert.Equal(t, uint(7), store.results[0].RunID)
	assert.Equal(t, StatusPassed, store.results[0].Status)
	assert.Equal(t, int64(1500), store.results[0].DurationMs)
	assert.Equal(t, StatusFailed, store.results[1].Status)
	assert.Equal(t, "assertion mismatch", store.results[1].Error)
	assert.Equal(t, "bad.png", store.results[1].ScreenshotPath)
	assert.Equal(t, uint(7), finishedID)
	assert.Equal(t, StatusFailed, finishedStatus)
}

func TestDatabaseRecorder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		store *MockRunStore
		run   func(r *DatabaseRecorder) error
	}{
		{
			name:  "create run fails",
			store: &MockRunStore{CreateRunFunc: func(*database.Run) error { return errors.New("db down") }},
			run:   func(r *DatabaseRecorder) error { return r.StartRun(RunInfo{}) },
		},
		{
			name:  "record before start",
			store: &MockRunStore{},
			run:   func(r *DatabaseRecorder) error { return r.RecordScenario(ScenarioOutcome{Scenario: "s"}) },
		},
		{
			name:  "add result fails",
			store: &MockRunStore{AddScenarioResultFunc: func(*database.ScenarioResult) error { return errors.New("db down") }},
			run: func(r *DatabaseRecorder) error {
				if err := r.StartRun(RunInfo{}); err != nil {
					return err
				}
				return r.RecordScenario(ScenarioOutcome{Scenario: "s"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.run(NewDatabaseRecorder(tt.store, nil)))
		})
	}
}

func TestTallySummary(t *testing.T) {
	tally := &Tally{}
	rec := Multi(NopRecorder{}, tally)

	require.NoError(t, rec.StartRun(RunInfo{StartedAt: time.Now().Add(-time.Second)}))
	require.NoError(t, rec.RecordScenario(ScenarioOutcome{Scenario: "a"}))
	require.NoError(t, rec.RecordScenario(ScenarioOutcome{Scenario: "b", Err: errors.New("boom")}))
	require.NoError(t, rec.FinishRun(1))

	s := tally.Summary()
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.ExitCode)
	assert.GreaterOrEqual(t, s.Elapsed, time.Second)
	require.Len(t, s.Failures, 1)
	assert.Equal(t, "b", s.Failures[0].Scenario)
}

func TestMultiReturnsFirstError(t *testing.T) {
	failing := NewDatabaseRecorder(&MockRunStore{CreateRunFunc: func(*database.Run) error { return errors.New("db down") }}, nil)
	tally := &Tally{}

	err := Multi(failing, tally).StartRun(RunInfo{Browser: "firefox"})
	assert.ErrorContains(t, err, "db down")
	assert.Equal(t, "firefox", tally.info.Browser)
}
