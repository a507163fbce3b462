package pages_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frtSuite/internal/browser"
	"frtSuite/internal/pages"
	"frtSuite/internal/pages/pagestest"
)

func newSession(site *pagestest.Site) *browser.Session {
	return browser.NewSession(site, browser.WithWaitPolicy(browser.WaitPolicy{
		Timeout:      50 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	}))
}

func TestLandingPage_Navigate(t *testing.T) {
	site := pagestest.NewSite()
	session := newSession(site)
	landing := pages.NewLandingPage(session, "")
	ctx := context.Background()

	require.NoError(t, landing.NavigateToFreeRangeTesters(ctx))

	ok, err := landing.IsCurrent()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, pages.LandingURL, site.URL())
}

func TestLandingPage_SectionNavigation(t *testing.T) {
	ctx := context.Background()

	for _, section := range pagestest.Sections {
		t.Run(section, func(t *testing.T) {
			site := pagestest.NewSite()
			landing := pages.NewLandingPage(newSession(site), "")
			require.NoError(t, landing.NavigateToFreeRangeTesters(ctx))

			require.NoError(t, landing.ClickOnSectionNavigationBar(ctx, section))
			assert.NotEqual(t, pages.LandingURL, site.URL())
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		site := pagestest.NewSite()
		landing := pages.NewLandingPage(newSession(site), "")
		require.NoError(t, landing.NavigateToFreeRangeTesters(ctx))

		assert.ErrorIs(t, landing.ClickOnSectionNavigationBar(ctx, "Podcast"), browser.ErrElementNotFound)
	})

	t.Run("quoted section", func(t *testing.T) {
		landing := pages.NewLandingPage(newSession(pagestest.NewSite()), "")
		assert.Error(t, landing.ClickOnSectionNavigationBar(ctx, "it's"))
	})
}

func TestCheckoutFlowThroughCourses(t *testing.T) {
	site := pagestest.NewSite()
	session := newSession(site)
	ctx := context.Background()

	require.NoError(t, pages.NewLandingPage(session, "").NavigateToFreeRangeTesters(ctx))
	require.NoError(t, pages.NewLandingPage(session, "").ClickOnSectionNavigationBar(ctx, "Cursos"))
	require.NoError(t, pages.NewCoursesPage(session).ClickFundamentosTestingLink(ctx))
	require.NoError(t, pages.NewFundamentosTestingPage(session).ClickIntroduccionTestingLink(ctx))
	assert.Equal(t, pagestest.CheckoutURL, site.URL())

	registration := pages.NewRegistrationPage(session)
	values, err := registration.PlanDropdownValues(ctx)
	require.NoError(t, err)
	assert.Len(t, values, len(pagestest.Plans))

	size, err := registration.PlanDropdownSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(values), size)

	require.NoError(t, registration.SelectPlan(ctx, "free"))
	assert.Equal(t, 2, site.PlanDropdown.Selected)
	assert.ErrorIs(t, registration.SelectPlan(ctx, "enterprise"), browser.ErrOptionNotFound)
	assert.Equal(t, 2, site.PlanDropdown.Selected)
}

func TestSameURL(t *testing.T) {
	assert.True(t, pages.SameURL("https://www.freerangetesters.com/", pages.LandingURL))
	assert.False(t, pages.SameURL("https://www.freerangetesters.com/cursos", pages.LandingURL))
}
