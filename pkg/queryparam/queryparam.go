// Package queryparam reads a single named parameter out of a URL query string.
//
// Matching is looser than net/url.ParseQuery. A value may be terminated by
// '&', ';' or '#' (a leading '#' belongs to the value), a '+' always decodes
// to a space, and a pair with an empty value is skipped in favour of a later
// pair with the same name. Values must decode to valid UTF-8.
package queryparam

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrNotFound is returned when the parameter has no non-empty value
var ErrNotFound = errors.New("parameter not found")

// ErrMalformed is returned when a value has invalid percent-encoding
var ErrMalformed = errors.New("malformed parameter value")

const valueTerminators = "&;#"

// Parse returns the decoded value of the first non-empty name=value pair in query
func Parse(query, name string) (string, error) {
	if !strings.HasPrefix(query, "?") {
		query = "?" + query
	}

	needle := name + "="
	for i := 0; i < len(query); i++ {
		if query[i] != '?' && query[i] != '&' {
			continue
		}

		rest := query[i+1:]
		if !strings.HasPrefix(rest, needle) {
			continue
		}

		raw := valueOf(rest[len(needle):])
		if raw == "" {
			continue
		}

		return decode(raw)
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Get returns the decoded value of name in query. The boolean is false when
// the parameter is absent or its value cannot be decoded.
func Get(query, name string) (string, bool) {
	val, err := Parse(query, name)
	if err != nil {
		return "", false
	}

	return val, true
}

// FromURL returns the value of name in the query part of rawURL
func FromURL(rawURL, name string) (string, bool) {
	return Get(queryOf(rawURL), name)
}

// queryOf returns everything from the first '?' up to the fragment
func queryOf(rawURL string) string {
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL = rawURL[:i]
	}

	i := strings.IndexByte(rawURL, '?')
	if i < 0 {
		return ""
	}

	return rawURL[i:]
}

// valueOf returns the raw value at the start of s. The value holds at least
// one character and runs until a terminator, so a leading '#' is part of it.
func valueOf(s string) string {
	if s == "" || s[0] == '&' || s[0] == ';' {
		return ""
	}

	if end := strings.IndexAny(s[1:], valueTerminators); end >= 0 {
		return s[:end+1]
	}

	return s
}

func decode(raw string) (string, error) {
	val, err := url.PathUnescape(strings.ReplaceAll(raw, "+", "%20"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !utf8.ValidString(val) {
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrMalformed, raw)
	}

	return val, nil
}
