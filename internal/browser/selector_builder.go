package browser

import (
	"fmt"
	"strings"
)

// ValidateLocator rejects locators that can never match an element.
func ValidateLocator(locator string) error {
	trimmed := strings.TrimSpace(locator)
	if trimmed == "" {
		return fmt.Errorf("locator must not be empty")
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") || strings.Contains(trimmed, "://") {
		return fmt.Errorf("locator must not be a URL, use Navigate for %s", locator)
	}

	return nil
}

// NormalizeLocator prefixes bare XPath expressions with the playwright
// xpath engine. Locators that already name an engine are returned as is.
func NormalizeLocator(locator string) string {
	trimmed := strings.TrimSpace(locator)
	for _, engine := range []string{"xpath=", "css=", "text=", "id=", "data-testid="} {
		if strings.HasPrefix(trimmed, engine) {
			return trimmed
		}
	}

	if strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "(") || strings.HasPrefix(trimmed, "./") {
		return "xpath=" + trimmed
	}

	return trimmed
}

// LinkTextLocator builds an XPath matching anchors whose visible text is
// exactly text.
func LinkTextLocator(text string) string {
	return "//a[normalize-space(.)=" + xpathLiteral(strings.TrimSpace(text)) + "]"
}

// xpathLiteral quotes s as an XPath 1.0 string literal. XPath has no escape
// sequences, so strings holding both quote kinds are built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, "'"+part+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
