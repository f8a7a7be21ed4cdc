package util

import (
	"html"
	"strings"

	"github.com/pkg/errors"
)

// FixURL reverses the HTML entity escaping the upstream API applies to
// media URLs (mostly &amp; inside query strings).
func FixURL(url string) string {
	return html.UnescapeString(url)
}

// NormalizeSubreddit strips an optional r/ prefix and lowercases the name.
func NormalizeSubreddit(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "r/")
	return strings.ToLower(name)
}

func GetLastError(err error) error {
	var lastErr = err
	for {
		unwrapped := errors.Unwrap(lastErr)
		if unwrapped == nil {
			break
		}
		lastErr = unwrapped
	}
	return lastErr
}
