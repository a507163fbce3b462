// Package report collects scenario outcomes of a suite run.
package report

import (
	"sync"
	"time"
)

const (
	StatusRunning = "running"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

type RunInfo struct {
	Browser   string
	BaseURL   string
	Tags      string
	StartedAt time.Time
}

type ScenarioOutcome struct {
	Feature    string
	Scenario   string
	Err        error
	Duration   time.Duration
	Screenshot string
}

func (o ScenarioOutcome) Status() string {
	if o.Err != nil {
		return StatusFailed
	}
	return StatusPassed
}

type Recorder interface {
	StartRun(info RunInfo) error
	RecordScenario(outcome ScenarioOutcome) error
	FinishRun(exitCode int) error
}

type NopRecorder struct{}

func (NopRecorder) StartRun(RunInfo) error               { return nil }
func (NopRecorder) RecordScenario(ScenarioOutcome) error { return nil }
func (NopRecorder) FinishRun(int) error                  { return nil }

// Tally keeps outcomes in memory for the end-of-run summary.
type Tally struct {
	mu       sync.Mutex
	info     RunInfo
	outcomes []ScenarioOutcome
	exitCode int
	finished time.Time
}

func (t *Tally) StartRun(info RunInfo) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = info
	t.outcomes = nil
	return nil
}

func (t *Tally) RecordScenario(outcome ScenarioOutcome) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outcomes = append(t.outcomes, outcome)
	return nil
}

func (t *Tally) FinishRun(exitCode int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exitCode = exitCode
	t.finished = time.Now()
	return nil
}

type Summary struct {
	Passed   int
	Failed   int
	ExitCode int
	Elapsed  time.Duration
	Failures []ScenarioOutcome
}

func (t *Tally) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{ExitCode: t.exitCode}
	if !t.info.StartedAt.IsZero() && !t.finished.IsZero() {
		s.Elapsed = t.finished.Sub(t.info.StartedAt)
	}
	for _, o := range t.outcomes {
		if o.Err != nil {
			s.Failed++
			s.Failures = append(s.Failures, o)
		} else {
			s.Passed++
		}
	}
	return s
}

// Multi fans every call out to all recorders and returns the first error.
func Multi(recorders ...Recorder) Recorder {
	return multi(recorders)
}

type multi []Recorder

func (m multi) StartRun(info RunInfo) error {
	var first error
	for _, r := range m {
		if err := r.StartRun(info); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m multi) RecordScenario(outcome ScenarioOutcome) error {
	var first error
	for _, r := range m {
		if err := r.RecordScenario(outcome); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m multi) FinishRun(exitCode int) error {
	var first error
	for _, r := range m {
		if err := r.FinishRun(exitCode); err != nil && first == nil {
			first = err
		}
	}
	return first
}
