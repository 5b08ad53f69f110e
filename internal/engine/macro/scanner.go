// Package macro finds delimited macros in description templates.
//
// Two delimiters are in use: '&' wraps locale references (&Bleed&) and '$'
// wraps semantic placeholders ($eDuration1$). A macro body is the text strictly
// between the first and second delimiter; an unpaired trailing delimiter is
// ordinary text and ends scanning.
package macro

import "strings"

// Delimiters used by description templates
const (
	Locale      byte = '&'
	Placeholder byte = '$'
)

// Macro is one delimited span found in a template
type Macro struct {
	// Body is the text between the delimiters
	Body string
	// Before is the template text preceding the opening delimiter
	Before string
	delim  byte
}

// Literal returns the macro as it appears in the template, delimiters included
func (m Macro) Literal() string {
	d := string(m.delim)
	return d + m.Body + d
}

// Next returns the first macro in s delimited by delim.
// It reports false when fewer than two delimiters remain.
func Next(s string, delim byte) (Macro, bool) {
	open := strings.IndexByte(s, delim)
	if open < 0 {
		return Macro{}, false
	}

	end := strings.IndexByte(s[open+1:], delim)
	if end < 0 {
		return Macro{}, false
	}

	return Macro{
		Body:   s[open+1 : open+1+end],
		Before: s[:open],
		delim:  delim,
	}, true
}

// Count returns the number of delim bytes in s
func Count(s string, delim byte) int {
	return strings.Count(s, string(delim))
}

// Replace substitutes every occurrence of the macro's literal form in s
func Replace(s string, m Macro, replacement string) string {
	return strings.ReplaceAll(s, m.Literal(), replacement)
}
