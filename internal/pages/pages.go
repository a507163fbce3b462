// Package pages holds the page objects of www.freerangetesters.com. Each page
// keeps a reference to a shared browser.Session and exposes only the
// interactions its section of the site needs.
package pages

const LandingURL = "https://www.freerangetesters.com"

const (
	SectionLinkLocator      = "//a[normalize-space()='%s' and @href]"
	ElegirPlanButtonLocator = "//a[normalize-space()='Elegir Plan' and @href]"

	FundamentosTestingLinkLocator  = "//a[normalize-space()='Fundamentos del Testing' and @href]"
	IntroduccionTestingLinkLocator = "//a[normalize-space()='Introducción al Testing de Software' and @href]"

	PlanDropdownLocator = "//select[@id='purchase_plan']"
)
