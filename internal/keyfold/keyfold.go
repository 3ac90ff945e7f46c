// Package keyfold normalizes member keys for case-insensitive registries.
//
// Keys are first put into Unicode NFC form and then case folded, so "GET",
// "get" and "Get" collapse to the same lookup key, and so do composed and
// decomposed spellings of the same accented name.
package keyfold

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// A cases.Caser carries transformer state and must not be shared between
// goroutines, so folders are pooled.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// Fold returns the canonical lookup form of key.
func Fold(key string) string {
	if isLowerASCII(key) {
		return key
	}
	if isASCII(key) {
		return strings.ToLower(key)
	}

	c := folders.Get().(*cases.Caser)
	out := c.String(norm.NFC.String(key))
	folders.Put(c)
	return out
}

// Equal reports whether a and b fold to the same key.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= utf8.RuneSelf || ('A' <= b && b <= 'Z') {
			return false
		}
	}
	return true
}
