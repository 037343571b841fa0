// Package strutil provides the display-width and tokenizing helpers
// shared by the renderer and the word-motion and yank commands. The
// caret-notation helpers have no caller outside this package's tests.
package strutil

import (
	"github.com/acarl005/stripansi"
	"github.com/reiver/go-caret"
)

// RealLength returns the number of terminal columns s would occupy,
// ignoring embedded ANSI escapes (spec §4.6 "Column math": prompt
// width is computed on the stripped string).
func RealLength(s string) int {
	return len([]rune(stripansi.Strip(s)))
}

// StripANSI removes embedded ANSI escapes from s, used to compute the
// display width of the prompt tail (spec §4.6).
func StripANSI(s string) string {
	return stripansi.Strip(s)
}

// CaretWidth returns the number of visible columns a single code
// point occupies when echoed in caret notation: "^X" for control
// characters, "M-" + the caret form of the low seven bits for
// high-bit characters, and a tab expands to the next multiple-of-8
// column (spec §4.2).
func CaretWidth(r rune, column int) int {
	switch {
	case r == '\t':
		return 8 - column%8
	case r >= 0x80:
		return 2 + len(caret.Encode(rune(r&0x7f)))
	default:
		return len(caret.Encode(r))
	}
}

// Caret renders r in caret notation for display: the caret form of r,
// or "M-" plus the caret form of the low seven bits for high-bit
// characters.
func Caret(r rune) string {
	if r >= 0x80 {
		return "M-" + caret.Encode(rune(r&0x7f))
	}

	return caret.Encode(r)
}
