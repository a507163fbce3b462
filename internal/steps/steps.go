// Package steps binds the Gherkin steps of the freerangetesters features to
// page object calls.
package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"frtSuite/internal/browser"
	"frtSuite/internal/pages"
)

// ExpectedCheckoutPlans is the plan list the checkout dropdown must offer.
var ExpectedCheckoutPlans = []string{
	"Academia: $16.99 / mes • 13 productos",
	"Academia: $300 / año • 13 productos",
	"Free: Gratis • 3 productos",
}

// Steps holds the page objects of one scenario. Bind must be called with the
// scenario session before any step runs.
type Steps struct {
	landingURL string
	session    *browser.Session

	landing      *pages.LandingPage
	courses      *pages.CoursesPage
	fundamentos  *pages.FundamentosTestingPage
	registration *pages.RegistrationPage
}

func New(landingURL string) *Steps {
	return &Steps{landingURL: landingURL}
}

func (s *Steps) Bind(session *browser.Session) {
	s.session = session
	s.landing = pages.NewLandingPage(session, s.landingURL)
	s.courses = pages.NewCoursesPage(session)
	s.fundamentos = pages.NewFundamentosTestingPage(session)
	s.registration = pages.NewRegistrationPage(session)
}

func (s *Steps) Session() *browser.Session {
	return s.session
}

func (s *Steps) Register(sc *godog.ScenarioContext) {
	sc.Step(`^I navigate to www\.freerangetesters\.com$`, s.INavigateToFRT)
	sc.Step(`^I go to (\S+) using the navigation bar$`, s.NavigationBarUse)
	sc.Step(`^I select Elegir Plan$`, s.SelectElegirPlan)
	sc.Step(`^select Introducción al Testing$`, s.NavigateToIntro)
	sc.Step(`^I can validate the options in the checkout page$`, s.ValidateCheckoutPlans)
	sc.Step(`^I am on the landing page$`, s.OnLandingPage)
	sc.Step(`^the checkout plan dropdown has (\d+) options$`, s.CheckoutPlanCount)
}

func (s *Steps) bound() error {
	if s.session == nil {
		return fmt.Errorf("no session bound to steps: %w", browser.ErrSessionClosed)
	}
	return nil
}

func (s *Steps) INavigateToFRT(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.landing.NavigateToFreeRangeTesters(ctx)
}

func (s *Steps) NavigationBarUse(ctx context.Context, section string) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.landing.ClickOnSectionNavigationBar(ctx, section)
}

func (s *Steps) SelectElegirPlan(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.landing.ClickOnElegirPlanButton(ctx)
}

func (s *Steps) NavigateToIntro(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	if err := s.courses.ClickFundamentosTestingLink(ctx); err != nil {
		return err
	}
	return s.fundamentos.ClickIntroduccionTestingLink(ctx)
}

func (s *Steps) ValidateCheckoutPlans(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	plans, err := s.registration.PlanDropdownValues(ctx)
	if err != nil {
		return err
	}
	return assertEqualStrings("checkout plans", ExpectedCheckoutPlans, plans)
}

func (s *Steps) OnLandingPage(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	if err := assertEqualString("session state", browser.StateOpen.String(), s.session.State().String()); err != nil {
		return err
	}

	ok, err := s.landing.IsCurrent()
	if err != nil {
		return err
	}
	if !ok {
		current, _ := s.session.CurrentURL()
		return assertEqualString("current url", s.landing.URL(), current)
	}
	return nil
}

func (s *Steps) CheckoutPlanCount(ctx context.Context, want int) error {
	if err := s.bound(); err != nil {
		return err
	}
	got, err := s.registration.PlanDropdownSize(ctx)
	if err != nil {
		return err
	}
	return assertEqualString("checkout plan count", strconv.Itoa(want), strconv.Itoa(got))
}
