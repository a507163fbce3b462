package suite

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frtSuite/internal/browser"
	"frtSuite/internal/browser/browsertest"
	"frtSuite/internal/pages"
	"frtSuite/internal/pages/pagestest"
	"frtSuite/internal/report"
)

const featuresPath = "../../features"

var testPolicy = browser.WaitPolicy{Timeout: 50 * time.Millisecond, PollInterval: 5 * time.Millisecond}

// fakeFactory serves a fresh fake site per scenario and remembers them.
type fakeFactory struct {
	mu      sync.Mutex
	plans   []browsertest.Option
	sites   []*pagestest.Site
	started int
	stopped int
	err     error
}

func (f *fakeFactory) NewSession(ctx context.Context) (*browser.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	site := pagestest.NewSite(f.plans...)
	f.sites = append(f.sites, site)
	return browser.NewSession(site, browser.WithWaitPolicy(testPolicy)), nil
}

func (f *fakeFactory) Start(ctx context.Context) error {
	f.started++
	return nil
}

func (f *fakeFactory) Stop() error {
	f.stopped++
	return nil
}

func runSuite(t *testing.T, factory SessionFactory, opts Options) (int, report.Summary) {
	t.Helper()

	tally := &report.Tally{}
	opts.BaseURL = pages.LandingURL
	opts.Paths = []string{featuresPath}
	opts.Format = "progress"
	opts.Output = io.Discard

	status := New(opts, factory, tally, nil).Run(context.Background())
	return status, tally.Summary()
}

func TestSuite_AllScenariosPass(t *testing.T) {
	factory := &fakeFactory{}

	status, summary := runSuite(t, factory, Options{})

	assert.Equal(t, 0, status)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 8, summary.Passed)
	assert.Equal(t, 1, factory.started)
	assert.Equal(t, 1, factory.stopped)

	require.Len(t, factory.sites, 8)
	for _, site := range factory.sites {
		assert.True(t, site.Closed(), "every scenario session is released")
	}
}

func TestSuite_Tags(t *testing.T) {
	factory := &fakeFactory{}

	status, summary := runSuite(t, factory, Options{Tags: "@Plans"})

	assert.Equal(t, 0, status)
	assert.Equal(t, 2, summary.Passed)
}

func TestSuite_FailedScenarioReleasesSessionAndCapturesScreenshot(t *testing.T) {
	factory := &fakeFactory{plans: []browsertest.Option{
		{Value: "free", Text: "Free: Gratis • 3 productos"},
	}}
	dir := t.TempDir()

	status, summary := runSuite(t, factory, Options{Tags: "@Plans", ScreenshotDir: dir})

	assert.Equal(t, 1, status)
	assert.Equal(t, 2, summary.Failed)
	for _, failure := range summary.Failures {
		assert.Contains(t, failure.Err.Error(), "assertion mismatch")
		assert.NotEmpty(t, failure.Screenshot)
		assert.Equal(t, "freerangetesters", failure.Feature)
	}
	for _, site := range factory.sites {
		assert.True(t, site.Closed())
		assert.Len(t, site.Screenshots, 1)
	}

	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestSuite_SessionFactoryError(t *testing.T) {
	factory := &fakeFactory{err: errors.New("no browser")}

	status, summary := runSuite(t, factory, Options{Tags: "@Plans"})

	assert.Equal(t, 1, status)
	assert.Zero(t, summary.Passed)
}

func TestSuite_PlainFactoryFunc(t *testing.T) {
	factory := FactoryFunc(func(ctx context.Context) (*browser.Session, error) {
		return browser.NewSession(pagestest.NewSite(), browser.WithWaitPolicy(testPolicy)), nil
	})

	status, _ := runSuite(t, factory, Options{Tags: "@Plans"})
	assert.Equal(t, 0, status)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "users-can-select-a-plan", slug("Users can select a plan!"))
	assert.Equal(t, "introducción-al-testing", slug("  Introducción al Testing "))
}

func TestFeatureName(t *testing.T) {
	assert.Equal(t, "freerangetesters", featureName("../../features/freerangetesters.feature"))
}
