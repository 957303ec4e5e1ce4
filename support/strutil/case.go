package strutil

import (
	"unicode"
	"unicode/utf8"
)

// LowerFirst lower-cases the first rune of s:
//
//	Engine    -> engine
//	HTTPCache -> hTTPCache
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// EqualFoldFirst reports whether a and b are equal
// ignoring the case of their first rune.
func EqualFoldFirst(a string, b string) bool {
	return LowerFirst(a) == LowerFirst(b)
}
