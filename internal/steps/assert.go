package steps

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

var ErrAssertionMismatch = errors.New("assertion mismatch")

// AssertionError fails a scenario with the expected and observed values and
// a unified diff between them.
type AssertionError struct {
	What     string
	Expected []string
	Actual   []string
	Diff     string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %v\nexpected: %q\nactual:   %q\n%s", e.What, ErrAssertionMismatch, e.Expected, e.Actual, e.Diff)
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionMismatch
}

func assertEqualStrings(what string, expected, actual []string) error {
	if slices.Equal(expected, actual) {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(expected),
		B:        lines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
	if err != nil {
		diff = fmt.Sprintf("diff unavailable: %v", err)
	}

	return &AssertionError{
		What:     what,
		Expected: expected,
		Actual:   actual,
		Diff:     diff,
	}
}

func assertEqualString(what, expected, actual string) error {
	return assertEqualStrings(what, []string{expected}, []string{actual})
}

func lines(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimRight(v, "\n") + "\n"
	}
	return out
}
