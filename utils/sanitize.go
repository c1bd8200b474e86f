package utils

import "github.com/microcosm-cc/bluemonday"

var titlePolicy = bluemonday.StrictPolicy()

// SanitizeTitle strips all markup from a user-supplied title. Titles are
// plain text; anything tag-shaped is dropped before validation.
func SanitizeTitle(input string) string {
	return titlePolicy.Sanitize(input)
}
