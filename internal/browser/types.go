package browser

import (
	"time"
)

const (
	DefaultWaitTimeout     = 5 * time.Second
	DefaultPollInterval    = 500 * time.Millisecond
	DefaultNavigateTimeout = 60 * time.Second
	DefaultViewportWidth   = 1920
	DefaultViewportHeight  = 1080
)

// Driver is the set of engine primitives the interaction layer is built on.
type Driver interface {
	Navigate(url string) error
	URL() string
	SetViewport(width, height int) error
	FindElements(locator string) ([]Element, error)
	Screenshot(path string) error
	Close() error
}

// Element is a handle to one node of the rendered page.
type Element interface {
	Click() error
	Clear() error
	Type(text string) error
	Text() (string, error)
	TagName() (string, error)
	Value() (string, error)
	// Options returns the <option> children of a <select>, in document order.
	Options() ([]Element, error)
	SelectByValue(value string) error
	SelectByIndex(index int) error
}

// WaitPolicy bounds every waiting lookup of a session.
type WaitPolicy struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

func DefaultWaitPolicy() WaitPolicy {
	return WaitPolicy{
		Timeout:      DefaultWaitTimeout,
		PollInterval: DefaultPollInterval,
	}
}

func (p WaitPolicy) withDefaults() WaitPolicy {
	if p.Timeout <= 0 {
		p.Timeout = DefaultWaitTimeout
	}
	if p.PollInterval <= 0 {
		p.PollInterval = DefaultPollInterval
	}
	if p.PollInterval > p.Timeout {
		p.PollInterval = p.Timeout
	}
	return p
}

type Viewport struct {
	Width  int
	Height int
}

type Config struct {
	// Name is chromium, firefox or webkit.
	Name            string
	Headless        bool
	BrowsersPath    string
	Display         string
	Args            []string
	Wait            WaitPolicy
	NavigateTimeout time.Duration
	Viewport        Viewport
}

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
