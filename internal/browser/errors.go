package browser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrElementNotFound        = errors.New("element not found")
	ErrElementNotInteractable = errors.New("element not interactable")
	ErrOptionNotFound         = errors.New("option not found")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrSessionClosed          = errors.New("session closed")
)

// InteractionError describes a failed interaction: the operation, the
// locator (or link text) it targeted and the underlying cause.
type InteractionError struct {
	Op      string
	Locator string
	Message string
	Err     error
}

func (e *InteractionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Locator != "" {
		fmt.Fprintf(&b, " %q", e.Locator)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

func opError(op, locator string, err error) error {
	if err == nil {
		return nil
	}
	return &InteractionError{Op: op, Locator: locator, Err: err}
}

func opErrorf(op, locator string, err error, format string, args ...any) error {
	return &InteractionError{Op: op, Locator: locator, Message: fmt.Sprintf(format, args...), Err: err}
}

// classifyActionError maps raw engine errors from element actions onto the
// interaction taxonomy. Errors that already carry a sentinel are kept.
func classifyActionError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrElementNotFound, ErrElementNotInteractable, ErrOptionNotFound, ErrIndexOutOfRange, ErrSessionClosed} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not attached") ||
		strings.Contains(msg, "detached") ||
		strings.Contains(msg, "no element"):
		return fmt.Errorf("%w: %v", ErrElementNotFound, err)
	case isTargetClosed(err):
		return fmt.Errorf("%w: %v", ErrSessionClosed, err)
	default:
		return fmt.Errorf("%w: %v", ErrElementNotInteractable, err)
	}
}

// classifyLookupError maps raw engine errors from element lookups. A closed
// target ends the session, anything else counts as no match.
func classifyLookupError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSessionClosed) || errors.Is(err, ErrElementNotFound) {
		return err
	}
	if isTargetClosed(err) {
		return fmt.Errorf("%w: %v", ErrSessionClosed, err)
	}
	return fmt.Errorf("%w: %v", ErrElementNotFound, err)
}

func isTargetClosed(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "target closed") ||
		strings.Contains(msg, "has been closed") ||
		strings.Contains(msg, "browser has disconnected")
}
