package browser

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Launcher owns the playwright runtime and one launched browser. Each call
// to NewSession opens an isolated browser context with its own page.
type Launcher struct {
	mu      sync.RWMutex
	cfg     Config
	log     *zap.Logger
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewLauncher(cfg Config, log *zap.Logger) *Launcher {
	if cfg.Name == "" {
		cfg.Name = "chromium"
	}
	cfg.Wait = cfg.Wait.withDefaults()
	if cfg.NavigateTimeout == 0 {
		cfg.NavigateTimeout = DefaultNavigateTimeout
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		cfg.Viewport = Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Launcher{
		cfg: cfg,
		log: log,
	}
}

func (l *Launcher) getBrowserArgs() []string {
	args := []string{"--no-sandbox"}
	if strings.EqualFold(l.cfg.Name, "chromium") {
		args = append(args, "--start-maximized")
	}
	return append(args, l.cfg.Args...)
}

func (l *Launcher) getEnvMap() map[string]string {
	if l.cfg.Display != "" {
		return map[string]string{
			"DISPLAY": l.cfg.Display,
		}
	}
	return nil
}

func (l *Launcher) browserType(pw *playwright.Playwright) (playwright.BrowserType, error) {
	switch strings.ToLower(l.cfg.Name) {
	case "chromium", "chrome":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser %q", l.cfg.Name)
	}
}

// Start runs the playwright driver and launches the configured browser.
func (l *Launcher) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.browser != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if l.cfg.BrowsersPath != "" {
		if err := os.Setenv("PLAYWRIGHT_BROWSERS_PATH", l.cfg.BrowsersPath); err != nil {
			return fmt.Errorf("set browsers path: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}

	browserType, err := l.browserType(pw)
	if err != nil {
		_ = pw.Stop()
		return err
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.cfg.Headless),
		Args:     l.getBrowserArgs(),
	}
	if env := l.getEnvMap(); env != nil {
		opts.Env = env
	}

	started := time.Now()
	br, err := browserType.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("launch %s: %w", l.cfg.Name, err)
	}

	l.pw = pw
	l.browser = br
	l.log.Info("browser launched",
		zap.String("browser", l.cfg.Name),
		zap.Bool("headless", l.cfg.Headless),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// NewSession opens a fresh context and page and wraps them in an Open Session.
func (l *Launcher) NewSession(ctx context.Context) (*Session, error) {
	l.mu.RLock()
	br := l.browser
	l.mu.RUnlock()

	if br == nil {
		return nil, fmt.Errorf("new session: %w", ErrSessionClosed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browserContext, err := br.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  l.cfg.Viewport.Width,
			Height: l.cfg.Viewport.Height,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		_ = browserContext.Close()
		return nil, fmt.Errorf("new page: %w", err)
	}

	driver := NewPlaywrightDriver(browserContext, page, l.cfg.Wait.Timeout, l.cfg.NavigateTimeout)
	return NewSession(driver,
		WithWaitPolicy(l.cfg.Wait),
		WithViewport(l.cfg.Viewport),
		WithLogger(l.log),
	), nil
}

// Stop closes the browser and the playwright runtime. It is safe to call
// more than once.
func (l *Launcher) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.browser != nil {
		if err := l.browser.Close(); err != nil {
			return fmt.Errorf("close browser: %w", err)
		}
		l.browser = nil
	}
	if l.pw != nil {
		if err := l.pw.Stop(); err != nil {
			return fmt.Errorf("stop playwright: %w", err)
		}
		l.pw = nil
	}
	l.log.Info("browser stopped")
	return nil
}
