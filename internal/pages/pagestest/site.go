// Package pagestest serves an in-memory copy of the freerangetesters.com
// flows exercised by the suite.
package pagestest

import (
	"fmt"

	"frtSuite/internal/browser/browsertest"
	"frtSuite/internal/pages"
)

const (
	CoursesURL     = pages.LandingURL + "/cursos"
	FundamentosURL = pages.LandingURL + "/fundamentos-del-testing"
	CheckoutURL    = pages.LandingURL + "/checkout"
)

var Sections = []string{"Cursos", "Recursos", "Mentorías", "Udemy", "Blog"}

var Plans = []browsertest.Option{
	{Value: "academia-mensual", Text: "Academia: $16.99 / mes • 13 productos"},
	{Value: "academia-anual", Text: "Academia: $300 / año • 13 productos"},
	{Value: "free", Text: "Free: Gratis • 3 productos"},
}

// Site is a fake driver preloaded with the landing, courses, course and
// checkout pages. PlanDropdown is the checkout <select>.
type Site struct {
	*browsertest.Driver
	PlanDropdown *browsertest.Element
}

func NewSite(plans ...browsertest.Option) *Site {
	if len(plans) == 0 {
		plans = Plans
	}

	d := browsertest.NewDriver()
	landing := d.AddPage(pages.LandingURL)
	for _, section := range Sections {
		href := pages.LandingURL + "/" + section
		if section == "Cursos" {
			href = CoursesURL
		}
		d.AddPage(href)
		landing.Add(fmt.Sprintf(pages.SectionLinkLocator, section), &browsertest.Element{Tag: "a", Content: section, Href: href})
	}
	landing.Add(pages.ElegirPlanButtonLocator, &browsertest.Element{Tag: "a", Content: "Elegir Plan", Href: CheckoutURL})

	d.AddPage(CoursesURL).Add(pages.FundamentosTestingLinkLocator,
		&browsertest.Element{Tag: "a", Content: "Fundamentos del Testing", Href: FundamentosURL})
	d.AddPage(FundamentosURL).Add(pages.IntroduccionTestingLinkLocator,
		&browsertest.Element{Tag: "a", Content: "Introducción al Testing de Software", Href: CheckoutURL})

	dropdown := browsertest.Select(plans...)
	d.AddPage(CheckoutURL).Add(pages.PlanDropdownLocator, dropdown)

	return &Site{Driver: d, PlanDropdown: dropdown}
}
