// Package browsertest provides an in-memory browser.Driver for tests. Pages
// are registered by URL and elements by the exact locator string that the
// code under test will query.
package browsertest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"frtSuite/internal/browser"
)

type Driver struct {
	mu          sync.Mutex
	pages       map[string]*Page
	current     *Page
	url         string
	navigatedAt time.Time
	closed      bool

	Width, Height int
	ViewportCalls int
	CloseCalls    int
	FindCalls     int
	Screenshots   []string

	// NavigateErr, FindErr and CloseErr are returned by the matching call when set.
	NavigateErr error
	FindErr     error
	CloseErr    error

	// FindErrs are returned one per FindElements call, before FindErr.
	FindErrs []error
}

func NewDriver() *Driver {
	return &Driver{pages: make(map[string]*Page)}
}

// AddPage registers a page served at url.
func (d *Driver) AddPage(url string) *Page {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := &Page{driver: d, url: url, elements: make(map[string][]*Element)}
	d.pages[url] = p
	return p
}

func (d *Driver) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Driver) Navigate(url string) error {
	if d.NavigateErr != nil {
		return d.NavigateErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.navigateLocked(url)
}

func (d *Driver) navigateLocked(url string) error {
	if d.closed {
		return errors.New("target closed")
	}
	d.url = url
	d.current = d.pages[url]
	d.navigatedAt = time.Now()
	return nil
}

func (d *Driver) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url
}

func (d *Driver) SetViewport(width, height int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Width, d.Height = width, height
	d.ViewportCalls++
	return nil
}

func (d *Driver) FindElements(locator string) ([]browser.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.FindCalls++
	if len(d.FindErrs) > 0 {
		err := d.FindErrs[0]
		d.FindErrs = d.FindErrs[1:]
		return nil, err
	}
	if d.FindErr != nil {
		return nil, d.FindErr
	}
	if d.current == nil {
		return nil, nil
	}

	elapsed := time.Since(d.navigatedAt)
	var found []browser.Element
	for _, el := range d.current.elements[locator] {
		if el.AppearAfter <= elapsed {
			found = append(found, el)
		}
	}
	return found, nil
}

func (d *Driver) Screenshot(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Screenshots = append(d.Screenshots, path)
	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.CloseCalls++
	d.closed = true
	return d.CloseErr
}

type Page struct {
	driver   *Driver
	url      string
	elements map[string][]*Element
}

// Add registers elements under locator, in document order.
func (p *Page) Add(locator string, elements ...*Element) *Page {
	p.driver.mu.Lock()
	defer p.driver.mu.Unlock()
	for _, el := range elements {
		el.driver = p.driver
		p.elements[locator] = append(p.elements[locator], el)
	}
	return p
}

// AddLink registers an anchor found by browser.LinkTextLocator(text) that
// navigates to href when clicked.
func (p *Page) AddLink(text, href string) *Element {
	link := &Element{Tag: "a", Content: text, Href: href}
	p.Add(browser.LinkTextLocator(text), link)
	return link
}

type Element struct {
	driver *Driver

	Tag         string
	Content     string
	ValueAttr   string
	Href        string
	Disabled    bool
	AppearAfter time.Duration
	Opts        []*Element

	Selected int
	Clicks   int
	Clears   int
	Input    string
}

type Option struct {
	Value string
	Text  string
}

// Select builds a <select> whose first option is selected.
func Select(options ...Option) *Element {
	sel := &Element{Tag: "select"}
	for _, o := range options {
		sel.Opts = append(sel.Opts, &Element{Tag: "option", Content: o.Text, ValueAttr: o.Value})
	}
	return sel
}

func (e *Element) lock() func() {
	if e.driver == nil {
		return func() {}
	}
	e.driver.mu.Lock()
	return e.driver.mu.Unlock
}

func (e *Element) Click() error {
	defer e.lock()()
	if e.Disabled {
		return fmt.Errorf("element is not enabled")
	}
	e.Clicks++
	if e.Href != "" && e.driver != nil {
		return e.driver.navigateLocked(e.Href)
	}
	return nil
}

func (e *Element) Clear() error {
	defer e.lock()()
	if e.Disabled {
		return fmt.Errorf("element is not editable")
	}
	e.Clears++
	e.Input = ""
	return nil
}

func (e *Element) Type(text string) error {
	defer e.lock()()
	if e.Disabled {
		return fmt.Errorf("element is not editable")
	}
	e.Input += text
	return nil
}

func (e *Element) Text() (string, error) {
	return e.Content, nil
}

func (e *Element) TagName() (string, error) {
	return e.Tag, nil
}

func (e *Element) Value() (string, error) {
	if e.ValueAttr == "" {
		return e.Content, nil
	}
	return e.ValueAttr, nil
}

func (e *Element) Options() ([]browser.Element, error) {
	options := make([]browser.Element, 0, len(e.Opts))
	for _, o := range e.Opts {
		options = append(options, o)
	}
	return options, nil
}

func (e *Element) SelectByValue(value string) error {
	defer e.lock()()
	for i, o := range e.Opts {
		v, _ := o.Value()
		if v == value {
			e.Selected = i
			return nil
		}
	}
	return fmt.Errorf("no option with value %q", value)
}

func (e *Element) SelectByIndex(index int) error {
	defer e.lock()()
	if index < 0 || index >= len(e.Opts) {
		return fmt.Errorf("no option at index %d", index)
	}
	e.Selected = index
	return nil
}

var _ browser.Driver = (*Driver)(nil)
var _ browser.Element = (*Element)(nil)
