package layout

import (
	"errors"
	"fmt"
)

// Entry is one byte of a layout table: a scan code OR-ed with modifier bits,
// in the encoding of the Arduino Keyboard library's KeyboardLayout.h.
// The zero Entry means "no mapping, send nothing".
type Entry uint8

// Modifier bits of an Entry. AltGr covers the Shift bit as well, so AltGr
// entries carry a six bit scan code and cannot be combined with Shift.
const (
	Shift Entry = 0x80
	AltGr Entry = 0xC0
)

// Modifier is the logical set of modifiers held down with a key.
type Modifier uint8

// Modifier set members.
const (
	ModShift Modifier = 1 << iota
	ModAltGr
)

func (m Modifier) String() string {
	switch m {
	case 0:
		return ""
	case ModShift:
		return "Shift"
	case ModAltGr:
		return "AltGr"
	case ModShift | ModAltGr:
		return "Shift+AltGr"
	}
	return fmt.Sprintf("Modifier(%#x)", uint8(m))
}

var (
	// ErrModifierCombination is returned when Shift and AltGr are requested
	// together, which the entry encoding cannot express.
	ErrModifierCombination = errors.New("shift and altgr cannot be combined")

	// ErrScanCodeRange is returned when a scan code does not fit the bits
	// left over by the requested modifiers.
	ErrScanCodeRange = errors.New("scan code out of range for modifier")
)

// Encode packs a scan code and modifier set into an Entry.
func Encode(u Usage, m Modifier) (Entry, error) {
	switch m {
	case 0:
		if u >= 0x80 {
			return 0, fmt.Errorf("%w: 0x%02x", ErrScanCodeRange, uint8(u))
		}
		return Entry(u), nil
	case ModShift, ModAltGr:
		// Both share bit 7, so bit 6 is what tells them apart on decode.
		if u >= 0x40 {
			return 0, fmt.Errorf("%w: 0x%02x with %s", ErrScanCodeRange, uint8(u), m)
		}
		if m == ModAltGr {
			return Entry(u) | AltGr, nil
		}
		return Entry(u) | Shift, nil
	case ModShift | ModAltGr:
		return 0, ErrModifierCombination
	}
	return 0, fmt.Errorf("unknown modifier %#x", uint8(m))
}

// MustEncode is like Encode but panics on error.
func MustEncode(u Usage, m Modifier) Entry {
	e, err := Encode(u, m)
	if err != nil {
		panic(err)
	}
	return e
}

// Decode splits an Entry into its scan code and modifier set the same way
// the Arduino Keyboard library does when it sends a character.
func (e Entry) Decode() (Usage, Modifier) {
	switch {
	case e&AltGr == AltGr:
		return Usage(e & 0x3F), ModAltGr
	case e&Shift == Shift:
		return Usage(e & 0x7F), ModShift
	}
	return Usage(e), 0
}

// Usage returns the scan code with modifier bits stripped.
func (e Entry) Usage() Usage {
	u, _ := e.Decode()
	return u
}

// Modifiers returns the modifier set of the entry.
func (e Entry) Modifiers() Modifier {
	_, m := e.Decode()
	return m
}

// IsZero reports whether the entry is the "send nothing" entry.
func (e Entry) IsZero() bool { return e == 0 }

// String renders the entry the way the Arduino layout sources spell it,
// e.g. "0x1e|SHIFT".
func (e Entry) String() string {
	u, m := e.Decode()
	switch m {
	case ModShift:
		return fmt.Sprintf("0x%02x|SHIFT", uint8(u))
	case ModAltGr:
		return fmt.Sprintf("0x%02x|ALT_GR", uint8(u))
	}
	return fmt.Sprintf("0x%02x", uint8(u))
}
