package suite

import (
	"strings"

	"frtSuite/internal/browser"
	"frtSuite/internal/config"
)

// BrowserConfig maps the loaded browser settings onto a launcher config.
func BrowserConfig(cfg config.Browser) browser.Config {
	return browser.Config{
		Name:         cfg.Name,
		Headless:     cfg.Headless,
		BrowsersPath: cfg.BrowsersPath,
		Display:      cfg.Display,
		Wait: browser.WaitPolicy{
			Timeout:      cfg.WaitTimeout,
			PollInterval: cfg.PollInterval,
		},
		NavigateTimeout: cfg.NavigateTimeout,
		Viewport: browser.Viewport{
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
		},
	}
}

// OptionsFromConfig builds suite options from cfg. Empty paths fall back to
// the comma separated FEATURES_PATH.
func OptionsFromConfig(cfg *config.Cfg, paths []string) Options {
	if len(paths) == 0 {
		paths = splitPaths(cfg.Suite.FeaturesPath)
	}

	return Options{
		BaseURL:       cfg.Suite.BaseURL,
		Paths:         paths,
		Tags:          cfg.Suite.Tags,
		Format:        cfg.Suite.Format,
		Browser:       cfg.Browser.Name,
		ScreenshotDir: cfg.Browser.ScreenshotDir,
	}
}

func splitPaths(value string) []string {
	var paths []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
