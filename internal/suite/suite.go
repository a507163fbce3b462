// Package suite runs the freerangetesters features with godog. Every
// scenario gets its own browser session, which is released when the scenario
// ends whatever its outcome.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"frtSuite/internal/browser"
	"frtSuite/internal/report"
	"frtSuite/internal/steps"
)

type SessionFactory interface {
	NewSession(ctx context.Context) (*browser.Session, error)
}

// Lifecycle is implemented by factories that hold suite-wide resources,
// such as browser.Launcher.
type Lifecycle interface {
	Start(ctx context.Context) error
	Stop() error
}

// FactoryFunc adapts a function to SessionFactory.
type FactoryFunc func(ctx context.Context) (*browser.Session, error)

func (f FactoryFunc) NewSession(ctx context.Context) (*browser.Session, error) {
	return f(ctx)
}

type Options struct {
	Name          string
	BaseURL       string
	Paths         []string
	Tags          string
	Format        string
	Browser       string
	ScreenshotDir string
	Output        io.Writer
	TestingT      *testing.T
}

type Suite struct {
	opts     Options
	factory  SessionFactory
	recorder report.Recorder
	log      *zap.Logger

	mu       sync.Mutex
	startErr error
}

func New(opts Options, factory SessionFactory, recorder report.Recorder, log *zap.Logger) *Suite {
	if opts.Name == "" {
		opts.Name = "freerangetesters"
	}
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"features"}
	}
	if opts.Format == "" {
		opts.Format = "pretty"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if recorder == nil {
		recorder = report.NopRecorder{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Suite{
		opts:     opts,
		factory:  factory,
		recorder: recorder,
		log:      log,
	}
}

// Run executes the features and returns the godog exit status.
func (s *Suite) Run(ctx context.Context) int {
	if err := s.recorder.StartRun(report.RunInfo{
		Browser:   s.opts.Browser,
		BaseURL:   s.opts.BaseURL,
		Tags:      s.opts.Tags,
		StartedAt: time.Now(),
	}); err != nil {
		s.log.Warn("start run record", zap.Error(err))
	}

	status := godog.TestSuite{
		Name:                 s.opts.Name,
		TestSuiteInitializer: func(tsc *godog.TestSuiteContext) { s.InitializeTestSuite(ctx, tsc) },
		ScenarioInitializer:  s.InitializeScenario,
		Options: &godog.Options{
			Format:         s.opts.Format,
			Paths:          s.opts.Paths,
			Tags:           s.opts.Tags,
			Output:         s.opts.Output,
			TestingT:       s.opts.TestingT,
			DefaultContext: ctx,
			Strict:         true,
			Concurrency:    1,
		},
	}.Run()

	if err := s.recorder.FinishRun(status); err != nil {
		s.log.Warn("finish run record", zap.Error(err))
	}
	return status
}

func (s *Suite) InitializeTestSuite(ctx context.Context, tsc *godog.TestSuiteContext) {
	lifecycle, ok := s.factory.(Lifecycle)
	if !ok {
		return
	}

	tsc.BeforeSuite(func() {
		if err := lifecycle.Start(ctx); err != nil {
			s.log.Error("start browser", zap.Error(err))
			s.setStartErr(err)
		}
	})
	tsc.AfterSuite(func() {
		if err := lifecycle.Stop(); err != nil {
			s.log.Warn("stop browser", zap.Error(err))
		}
	})
}

func (s *Suite) setStartErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startErr = err
}

func (s *Suite) getStartErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startErr
}

func (s *Suite) InitializeScenario(sc *godog.ScenarioContext) {
	st := steps.New(s.opts.BaseURL)
	var started time.Time

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		started = time.Now()
		if err := s.getStartErr(); err != nil {
			return ctx, fmt.Errorf("browser unavailable: %w", err)
		}
		if s.factory == nil {
			return ctx, errors.New("no session factory configured")
		}

		session, err := s.factory.NewSession(ctx)
		if err != nil {
			return ctx, fmt.Errorf("open session: %w", err)
		}
		st.Bind(session)
		s.log.Info("scenario started", zap.String("scenario", scenario.Name))
		return ctx, nil
	})

	sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
		outcome := report.ScenarioOutcome{
			Feature:  featureName(scenario.Uri),
			Scenario: scenario.Name,
			Err:      err,
			Duration: time.Since(started),
		}

		if session := st.Session(); session != nil {
			if err != nil {
				outcome.Screenshot = s.captureFailure(session, scenario)
			}
			if closeErr := session.Close(); closeErr != nil {
				s.log.Warn("close session", zap.String("scenario", scenario.Name), zap.Error(closeErr))
			}
		}

		if recErr := s.recorder.RecordScenario(outcome); recErr != nil {
			s.log.Warn("record scenario", zap.String("scenario", scenario.Name), zap.Error(recErr))
		}

		fields := []zap.Field{
			zap.String("scenario", scenario.Name),
			zap.String("status", outcome.Status()),
			zap.Duration("elapsed", outcome.Duration),
		}
		if err != nil {
			s.log.Error("scenario finished", append(fields, zap.Error(err))...)
		} else {
			s.log.Info("scenario finished", fields...)
		}
		return ctx, nil
	})

	st.Register(sc)
}

// captureFailure stores a screenshot of the failed scenario and returns its
// path, or "" when screenshots are disabled or the capture failed.
func (s *Suite) captureFailure(session *browser.Session, scenario *godog.Scenario) string {
	if s.opts.ScreenshotDir == "" || session.State() != browser.StateOpen {
		return ""
	}
	if err := os.MkdirAll(s.opts.ScreenshotDir, 0o755); err != nil {
		s.log.Warn("screenshot dir", zap.Error(err))
		return ""
	}

	path := filepath.Join(s.opts.ScreenshotDir, fmt.Sprintf("%s-%s.png", slug(scenario.Name), scenario.Id))
	if err := session.Screenshot(path); err != nil {
		s.log.Warn("screenshot", zap.String("scenario", scenario.Name), zap.Error(err))
		return ""
	}
	return path
}

func featureName(uri string) string {
	return strings.TrimSuffix(filepath.Base(uri), filepath.Ext(uri))
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
