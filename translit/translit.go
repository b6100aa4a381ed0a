// Package translit turns Unicode text into the byte stream the Arduino
// keyboard sketch types: ASCII goes through the layout table on the board,
// Hebrew letters are sent as raw layout.Key codes.
package translit

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"hebkbd/layout"
)

// Result is the outcome of transliterating a text.
type Result struct {
	Bytes   []byte
	Skipped []rune // characters with no key, in input order
}

// Points drops Hebrew points and cantillation marks (and any other
// combining mark), which have no key of their own on SI-1452.
func Points(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// String transliterates s.
func String(s string) Result {
	s = Points(s)
	res := Result{Bytes: make([]byte, 0, len(s))}
	prevCR := false
	for _, r := range s {
		if b, ok := Rune(r); ok {
			if r == '\n' && prevCR {
				prevCR = false
				continue
			}
			res.Bytes = append(res.Bytes, b)
			prevCR = r == '\r'
			continue
		}
		prevCR = false
		res.Skipped = append(res.Skipped, r)
	}
	return res
}

// Rune transliterates one character. CR is sent as LF, because the table
// only maps LF to Enter.
func Rune(r rune) (byte, bool) {
	switch {
	case r == '\n', r == '\r':
		return '\n', true
	case r == '\t':
		return '\t', true
	case r >= ' ' && r <= '~':
		return byte(r), true
	}
	if k, ok := layout.KeyForRune(r); ok {
		return byte(k), true
	}
	if b, ok := punctuation[r]; ok {
		return b, true
	}
	return 0, false
}

// Hebrew punctuation typed with its ASCII look-alike.
var punctuation = map[rune]byte{
	'\u05BE': '-',  // maqaf
	'\u05C0': '|',  // paseq
	'\u05C3': ':',  // sof pasuq
	'\u05F3': '\'', // geresh
	'\u05F4': '"',  // gershayim
}
