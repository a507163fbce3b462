package pages

import (
	"context"

	"frtSuite/internal/browser"
)

// RegistrationPage is the checkout form reached after choosing a plan.
type RegistrationPage struct {
	session *browser.Session
}

func NewRegistrationPage(session *browser.Session) *RegistrationPage {
	return &RegistrationPage{session: session}
}

func (p *RegistrationPage) PlanDropdownValues(ctx context.Context) ([]string, error) {
	return p.session.DropdownOptionTexts(ctx, PlanDropdownLocator)
}

func (p *RegistrationPage) PlanDropdownSize(ctx context.Context) (int, error) {
	return p.session.DropdownOptionCount(ctx, PlanDropdownLocator)
}

func (p *RegistrationPage) SelectPlan(ctx context.Context, value string) error {
	return p.session.SelectDropdownByValue(ctx, PlanDropdownLocator, value)
}
