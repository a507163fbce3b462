package pages

import (
	"context"

	"frtSuite/internal/browser"
)

type CoursesPage struct {
	session *browser.Session
}

func NewCoursesPage(session *browser.Session) *CoursesPage {
	return &CoursesPage{session: session}
}

func (p *CoursesPage) ClickFundamentosTestingLink(ctx context.Context) error {
	return p.session.Click(ctx, FundamentosTestingLinkLocator)
}

type FundamentosTestingPage struct {
	session *browser.Session
}

func NewFundamentosTestingPage(session *browser.Session) *FundamentosTestingPage {
	return &FundamentosTestingPage{session: session}
}

func (p *FundamentosTestingPage) ClickIntroduccionTestingLink(ctx context.Context) error {
	return p.session.Click(ctx, IntroduccionTestingLinkLocator)
}
