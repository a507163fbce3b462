package browser

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type lookupOptions struct {
	wait bool
}

// LookupOption selects how a locator is resolved for a single call.
type LookupOption func(*lookupOptions)

// WithWait resolves the locator through the session WaitPolicy.
func WithWait() LookupOption {
	return func(opts *lookupOptions) {
		opts.wait = true
	}
}

// WithoutWait resolves the locator against the current page once, without polling.
func WithoutWait() LookupOption {
	return func(opts *lookupOptions) {
		opts.wait = false
	}
}

func resolveLookup(waitByDefault bool, options []LookupOption) lookupOptions {
	opts := lookupOptions{wait: waitByDefault}
	for _, opt := range options {
		opt(&opts)
	}
	return opts
}

// locate returns the first element matching locator. With waiting enabled it
// polls until a match is present or the WaitPolicy timeout has elapsed.
func (s *Session) locate(ctx context.Context, op, locator string, opts lookupOptions) (Element, error) {
	elements, err := s.findAll(ctx, op, locator, opts)
	if err != nil {
		return nil, err
	}
	return elements[0], nil
}

// findAll returns every element matching locator, never an empty slice
// without an error.
func (s *Session) findAll(ctx context.Context, op, locator string, opts lookupOptions) ([]Element, error) {
	if err := ValidateLocator(locator); err != nil {
		return nil, opErrorf(op, locator, ErrElementNotFound, "invalid locator: %v", err)
	}

	driver, err := s.activeDriver()
	if err != nil {
		return nil, opError(op, locator, err)
	}

	if !opts.wait {
		elements, err := driver.FindElements(locator)
		if err != nil {
			return nil, opError(op, locator, classifyLookupError(err))
		}
		if len(elements) == 0 {
			return nil, opErrorf(op, locator, ErrElementNotFound, "no match")
		}
		return elements, nil
	}

	start := time.Now()
	deadline := start.Add(s.wait.Timeout)
	var lastErr error
	for {
		elements, err := driver.FindElements(locator)
		switch {
		case err != nil && isTargetClosed(err):
			return nil, opError(op, locator, classifyLookupError(err))
		case err != nil:
			// Lookups fail while the page is navigating; keep polling.
			lastErr = err
			s.log.Debug("lookup not ready",
				zap.String("op", op),
				zap.String("locator", locator),
				zap.Error(err),
			)
		case len(elements) > 0:
			s.log.Debug("element located",
				zap.String("op", op),
				zap.String("locator", locator),
				zap.Duration("elapsed", time.Since(start)),
			)
			return elements, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			if lastErr != nil {
				return nil, opErrorf(op, locator, classifyLookupError(lastErr), "no match after %v", s.wait.Timeout)
			}
			return nil, opErrorf(op, locator, ErrElementNotFound, "no match after %v", s.wait.Timeout)
		}

		delay := s.wait.PollInterval
		if delay > remaining {
			delay = remaining
		}

		select {
		case <-ctx.Done():
			return nil, opError(op, locator, ctx.Err())
		case <-time.After(delay):
		}

		// The session may be closed while we were sleeping.
		if driver, err = s.activeDriver(); err != nil {
			return nil, opError(op, locator, err)
		}
	}
}
