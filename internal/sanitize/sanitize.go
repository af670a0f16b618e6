// Package sanitize strips markup from user-entered plain-text fields (display
// names, reminder titles) before they are stored. Uses bluemonday's strict
// policy, which removes every tag and attribute.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared strict policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text removes all HTML from input and trims surrounding whitespace.
// bluemonday escapes the surviving text for HTML output; the API returns
// JSON, so entities are decoded back (a title like "Tea & toast" stays as typed).
func Text(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(getPolicy().Sanitize(input)))
}
