package pages

import (
	"context"
	"fmt"
	"strings"

	"frtSuite/internal/browser"
)

type LandingPage struct {
	session *browser.Session
	url     string
}

// NewLandingPage returns the landing page at url, or at LandingURL when url is empty.
func NewLandingPage(session *browser.Session, url string) *LandingPage {
	if url == "" {
		url = LandingURL
	}
	return &LandingPage{session: session, url: url}
}

func (p *LandingPage) URL() string {
	return p.url
}

func (p *LandingPage) NavigateToFreeRangeTesters(ctx context.Context) error {
	return p.session.Navigate(ctx, p.url)
}

// ClickOnSectionNavigationBar follows the navigation bar link named section.
func (p *LandingPage) ClickOnSectionNavigationBar(ctx context.Context, section string) error {
	if strings.ContainsAny(section, `'"`) {
		return fmt.Errorf("section %q: quotes are not allowed", section)
	}
	return p.session.Click(ctx, fmt.Sprintf(SectionLinkLocator, section))
}

func (p *LandingPage) ClickOnElegirPlanButton(ctx context.Context) error {
	return p.session.Click(ctx, ElegirPlanButtonLocator)
}

// IsCurrent reports whether the session is open and showing the landing page.
func (p *LandingPage) IsCurrent() (bool, error) {
	if p.session.State() != browser.StateOpen {
		return false, nil
	}
	current, err := p.session.CurrentURL()
	if err != nil {
		return false, err
	}
	return SameURL(current, p.url), nil
}

// SameURL compares two URLs ignoring a trailing slash.
func SameURL(a, b string) bool {
	return strings.TrimSuffix(a, "/") == strings.TrimSuffix(b, "/")
}
