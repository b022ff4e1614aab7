// Package sanitize strips free-form user input down to a prompt-safe subset.
package sanitize

import "regexp"

// unsafe matches every rune outside the allowed word/whitespace/punctuation set.
var unsafe = regexp.MustCompile(`[^\w\s\-,.]`)

// Clean removes every character that is not a word character, whitespace,
// hyphen, comma, or period. The result is lossy and only used as a
// display/prompt-safe token, never to reconstruct the original. Clean is
// total and idempotent.
func Clean(text string) string {
	return unsafe.ReplaceAllString(text, "")
}
