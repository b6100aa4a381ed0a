package layout

import (
	"errors"
	"fmt"
	"strings"
)

// TableSize is the number of entries in a layout table, one per ASCII code.
const TableSize = 128

// Table maps ASCII codes 0x00-0x7F to entries. Unsupported characters hold
// the zero Entry.
type Table [TableSize]Entry

// Lookup returns the entry for an ASCII code. ok is false for codes above
// 0x7F and for characters the table cannot produce.
func (t Table) Lookup(c byte) (e Entry, ok bool) {
	if int(c) >= TableSize {
		return 0, false
	}
	e = t[c]
	return e, e != 0
}

// Bytes returns the table in the form the Arduino Keyboard library takes.
func (t Table) Bytes() []byte {
	b := make([]byte, TableSize)
	for i, e := range t {
		b[i] = byte(e)
	}
	return b
}

// Variant names one of the compiled-in SI-1452 tables. The variants disagree
// on the punctuation layer, so entries are never mixed between them.
type Variant int

// Known variants.
const (
	// PC follows the desktop SI-1452 assignment and needs no AltGr. The
	// caret, backtick and tilde are reachable with Shift or directly.
	PC Variant = iota

	// Notebook reaches # @ [ \ ] { | } through AltGr, uses the ISO key for
	// < and >, and declines the dead-key glyphs ^ ` ~.
	Notebook
)

// DefaultVariant is used when nothing else is configured.
const DefaultVariant = PC

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("unknown layout variant")

var variantNames = [...]string{
	PC:       "pc",
	Notebook: "notebook",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a variant by name, case-insensitively. "alt" is
// accepted for Notebook.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pc", "desktop":
		return PC, nil
	case "notebook", "alt":
		return Notebook, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Variants lists every compiled-in variant.
func Variants() []Variant {
	return []Variant{PC, Notebook}
}

// Table returns a copy of the variant's table. The compiled-in data itself
// is never handed out.
func (v Variant) Table() Table {
	switch v {
	case Notebook:
		return notebookTable
	}
	return pcTable
}

// Default returns a copy of the default variant's table.
func Default() Table {
	return DefaultVariant.Table()
}
