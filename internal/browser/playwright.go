package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightDriver implements Driver on top of a single playwright page and
// the browser context that owns it.
type PlaywrightDriver struct {
	context         playwright.BrowserContext
	page            playwright.Page
	actionTimeout   time.Duration
	navigateTimeout time.Duration
}

func NewPlaywrightDriver(context playwright.BrowserContext, page playwright.Page, actionTimeout, navigateTimeout time.Duration) *PlaywrightDriver {
	if actionTimeout <= 0 {
		actionTimeout = DefaultWaitTimeout
	}
	if navigateTimeout <= 0 {
		navigateTimeout = DefaultNavigateTimeout
	}
	page.SetDefaultTimeout(float64(actionTimeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(navigateTimeout.Milliseconds()))

	return &PlaywrightDriver{
		context:         context,
		page:            page,
		actionTimeout:   actionTimeout,
		navigateTimeout: navigateTimeout,
	}
}

func (d *PlaywrightDriver) Navigate(url string) error {
	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(d.navigateTimeout.Milliseconds())),
	})
	return err
}

func (d *PlaywrightDriver) URL() string {
	return d.page.URL()
}

func (d *PlaywrightDriver) SetViewport(width, height int) error {
	return d.page.SetViewportSize(width, height)
}

func (d *PlaywrightDriver) FindElements(locator string) ([]Element, error) {
	handles, err := d.page.QuerySelectorAll(NormalizeLocator(locator))
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(handles))
	for _, handle := range handles {
		elements = append(elements, &playwrightElement{handle: handle, timeout: d.actionTimeout})
	}
	return elements, nil
}

func (d *PlaywrightDriver) Screenshot(path string) error {
	_, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// Close closes the page and its browser context. The launched browser is
// owned by the Launcher and stays up.
func (d *PlaywrightDriver) Close() error {
	if err := d.page.Close(); err != nil {
		return fmt.Errorf("close page: %w", err)
	}
	if d.context != nil {
		if err := d.context.Close(); err != nil {
			return fmt.Errorf("close browser context: %w", err)
		}
	}
	return nil
}

type playwrightElement struct {
	handle  playwright.ElementHandle
	timeout time.Duration
}

func (e *playwrightElement) timeoutMs() *float64 {
	return playwright.Float(float64(e.timeout.Milliseconds()))
}

func (e *playwrightElement) Click() error {
	return e.handle.Click(playwright.ElementHandleClickOptions{Timeout: e.timeoutMs()})
}

func (e *playwrightElement) Clear() error {
	return e.handle.Fill("", playwright.ElementHandleFillOptions{Timeout: e.timeoutMs()})
}

func (e *playwrightElement) Type(text string) error {
	return e.handle.Type(text, playwright.ElementHandleTypeOptions{Timeout: e.timeoutMs()})
}

func (e *playwrightElement) Text() (string, error) {
	text, err := e.handle.InnerText()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// <option> elements inside a collapsed <select> report no rendered text in some engines.
	content, err := e.handle.TextContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (e *playwrightElement) TagName() (string, error) {
	tag, err := e.handle.Evaluate("el => el.tagName.toLowerCase()")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", tag), nil
}

func (e *playwrightElement) Value() (string, error) {
	value, err := e.handle.Evaluate("el => el.value || ''")
	if err != nil {
		return "", err
	}
	if str, ok := value.(string); ok {
		return str, nil
	}
	return fmt.Sprintf("%v", value), nil
}

func (e *playwrightElement) Options() ([]Element, error) {
	handles, err := e.handle.QuerySelectorAll("option")
	if err != nil {
		return nil, err
	}

	options := make([]Element, 0, len(handles))
	for _, handle := range handles {
		options = append(options, &playwrightElement{handle: handle, timeout: e.timeout})
	}
	return options, nil
}

func (e *playwrightElement) SelectByValue(value string) error {
	_, err := e.handle.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}},
		playwright.ElementHandleSelectOptionOptions{Timeout: e.timeoutMs()})
	return err
}

func (e *playwrightElement) SelectByIndex(index int) error {
	_, err := e.handle.SelectOption(playwright.SelectOptionValues{Indexes: &[]int{index}},
		playwright.ElementHandleSelectOptionOptions{Timeout: e.timeoutMs()})
	return err
}
