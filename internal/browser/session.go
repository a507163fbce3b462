package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Session drives one browser page. It starts Open and becomes Closed after
// Close; every interaction on a Closed session fails with ErrSessionClosed.
type Session struct {
	mu       sync.RWMutex
	driver   Driver
	state    State
	wait     WaitPolicy
	viewport Viewport
	log      *zap.Logger
}

type SessionOption func(*Session)

func WithWaitPolicy(policy WaitPolicy) SessionOption {
	return func(s *Session) {
		s.wait = policy
	}
}

func WithViewport(viewport Viewport) SessionOption {
	return func(s *Session) {
		s.viewport = viewport
	}
}

func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

func NewSession(driver Driver, opts ...SessionOption) *Session {
	s := &Session{
		driver:   driver,
		state:    StateOpen,
		wait:     DefaultWaitPolicy(),
		viewport: Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wait = s.wait.withDefaults()
	if s.viewport.Width <= 0 || s.viewport.Height <= 0 {
		s.viewport = Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if driver == nil {
		s.state = StateClosed
	}
	return s
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) WaitPolicy() WaitPolicy {
	return s.wait
}

func (s *Session) activeDriver() (Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateOpen || s.driver == nil {
		return nil, ErrSessionClosed
	}
	return s.driver, nil
}

// Close terminates the session. Closing a Closed session is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed

	if s.driver == nil {
		return nil
	}
	if err := s.driver.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	s.log.Info("session closed")
	return nil
}

func (s *Session) CurrentURL() (string, error) {
	driver, err := s.activeDriver()
	if err != nil {
		return "", opError("current url", "", err)
	}
	return driver.URL(), nil
}

// Navigate loads url and then maximizes the viewport.
func (s *Session) Navigate(ctx context.Context, url string) error {
	driver, err := s.activeDriver()
	if err != nil {
		return opError("navigate", url, err)
	}
	if err := ctx.Err(); err != nil {
		return opError("navigate", url, err)
	}

	s.log.Info("navigate", zap.String("url", url))
	if err := driver.Navigate(url); err != nil {
		return opError("navigate", url, err)
	}

	return s.MaximizeWindow(ctx)
}

func (s *Session) MaximizeWindow(ctx context.Context) error {
	driver, err := s.activeDriver()
	if err != nil {
		return opError("maximize window", "", err)
	}
	if err := driver.SetViewport(s.viewport.Width, s.viewport.Height); err != nil {
		return opError("maximize window", "", err)
	}
	return nil
}

func (s *Session) Click(ctx context.Context, locator string, opts ...LookupOption) error {
	element, err := s.locate(ctx, "click", locator, resolveLookup(true, opts))
	if err != nil {
		return err
	}
	return opError("click", locator, classifyActionError(element.Click()))
}

// Write replaces the content of the input matched by locator with text. The
// element is resolved once and the same handle is cleared and typed into.
func (s *Session) Write(ctx context.Context, locator, text string, opts ...LookupOption) error {
	element, err := s.locate(ctx, "write", locator, resolveLookup(true, opts))
	if err != nil {
		return err
	}
	if err := element.Clear(); err != nil {
		return opError("write", locator, classifyActionError(err))
	}
	return opError("write", locator, classifyActionError(element.Type(text)))
}

// ClickByLinkText clicks the anchor whose visible text is exactly text. It
// does not wait unless WithWait is passed.
func (s *Session) ClickByLinkText(ctx context.Context, text string, opts ...LookupOption) error {
	element, err := s.locate(ctx, "click link", LinkTextLocator(text), resolveLookup(false, opts))
	if err != nil {
		return err
	}
	return opError("click link", text, classifyActionError(element.Click()))
}

// ClickNth clicks the index-th (zero based) element matching locator. It
// snapshots the current page unless WithWait is passed.
func (s *Session) ClickNth(ctx context.Context, locator string, index int, opts ...LookupOption) error {
	elements, err := s.findAll(ctx, "click nth", locator, resolveLookup(false, opts))
	if err != nil {
		return err
	}
	if index < 0 || index >= len(elements) {
		return opErrorf("click nth", locator, ErrIndexOutOfRange, "index %d, %d matches", index, len(elements))
	}
	return opError("click nth", locator, classifyActionError(elements[index].Click()))
}

func (s *Session) TextOf(ctx context.Context, locator string, opts ...LookupOption) (string, error) {
	element, err := s.locate(ctx, "text", locator, resolveLookup(true, opts))
	if err != nil {
		return "", err
	}
	text, err := element.Text()
	if err != nil {
		return "", opError("text", locator, classifyActionError(err))
	}
	return text, nil
}

// dropdown resolves locator and checks that it is a selection-list control.
func (s *Session) dropdown(ctx context.Context, op, locator string) (Element, error) {
	element, err := s.locate(ctx, op, locator, resolveLookup(true, nil))
	if err != nil {
		return nil, err
	}
	tag, err := element.TagName()
	if err != nil {
		return nil, opError(op, locator, classifyActionError(err))
	}
	if !strings.EqualFold(tag, "select") {
		return nil, opErrorf(op, locator, ErrElementNotInteractable, "element is <%s>, not <select>", strings.ToLower(tag))
	}
	return element, nil
}

func (s *Session) dropdownOptions(ctx context.Context, op, locator string) (Element, []Element, error) {
	element, err := s.dropdown(ctx, op, locator)
	if err != nil {
		return nil, nil, err
	}
	options, err := element.Options()
	if err != nil {
		return nil, nil, opError(op, locator, classifyActionError(err))
	}
	return element, options, nil
}

// SelectDropdownByValue chooses the option whose value attribute equals
// value. An unknown value fails with ErrOptionNotFound and leaves the
// current selection untouched.
func (s *Session) SelectDropdownByValue(ctx context.Context, locator, value string) error {
	const op = "select by value"
	element, options, err := s.dropdownOptions(ctx, op, locator)
	if err != nil {
		return err
	}

	found := false
	for _, option := range options {
		v, err := option.Value()
		if err != nil {
			return opError(op, locator, classifyActionError(err))
		}
		if v == value {
			found = true
			break
		}
	}
	if !found {
		return opErrorf(op, locator, ErrOptionNotFound, "no option with value %q", value)
	}

	return opError(op, locator, classifyActionError(element.SelectByValue(value)))
}

// SelectDropdownByIndex chooses the index-th (zero based) option.
func (s *Session) SelectDropdownByIndex(ctx context.Context, locator string, index int) error {
	const op = "select by index"
	element, options, err := s.dropdownOptions(ctx, op, locator)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(options) {
		return opErrorf(op, locator, fmt.Errorf("%w: %w", ErrOptionNotFound, ErrIndexOutOfRange),
			"index %d, %d options", index, len(options))
	}
	return opError(op, locator, classifyActionError(element.SelectByIndex(index)))
}

func (s *Session) DropdownOptionCount(ctx context.Context, locator string) (int, error) {
	_, options, err := s.dropdownOptions(ctx, "option count", locator)
	if err != nil {
		return 0, err
	}
	return len(options), nil
}

// DropdownOptionTexts returns the visible text of every option in document
// order. Each call reads the live page.
func (s *Session) DropdownOptionTexts(ctx context.Context, locator string) ([]string, error) {
	const op = "option texts"
	_, options, err := s.dropdownOptions(ctx, op, locator)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(options))
	for _, option := range options {
		text, err := option.Text()
		if err != nil {
			return nil, opError(op, locator, classifyActionError(err))
		}
		texts = append(texts, strings.TrimSpace(text))
	}
	return texts, nil
}

// Screenshot stores a full-page capture of the current page at path.
func (s *Session) Screenshot(path string) error {
	driver, err := s.activeDriver()
	if err != nil {
		return opError("screenshot", "", err)
	}
	return opError("screenshot", path, driver.Screenshot(path))
}
