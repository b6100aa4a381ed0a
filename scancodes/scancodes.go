// Package scancodes computes the HID keystrokes an Arduino running the
// Keyboard library sends when it is asked to type a byte stream through a
// layout table.
package scancodes

import (
	"errors"
	"fmt"
	"strings"

	"hebkbd/layout"
)

var (
	// ErrUnmapped is returned for characters the table cannot produce.
	ErrUnmapped = errors.New("no key for character")

	// ErrReserved is returned for 0x80-0x87, which the Keyboard library
	// reserves for its own modifier keys.
	ErrReserved = errors.New("reserved modifier code")

	// ErrUnknownKey is returned by ForSequence for names it cannot resolve.
	ErrUnknownKey = errors.New("unknown keyboard key")
)

// Keystroke is one key press together with the modifiers held for it.
type Keystroke struct {
	Usage layout.Usage
	Mods  layout.Modifier
}

// String renders the keystroke as a chord, e.g. "LShift+A" or "AltGr+3".
func (k Keystroke) String() string {
	name := keyName(k.Usage)
	switch k.Mods {
	case layout.ModShift:
		return shiftNames[0] + "+" + name
	case layout.ModAltGr:
		return altGrNames[0] + "+" + name
	case layout.ModShift | layout.ModAltGr:
		return shiftNames[0] + "+" + altGrNames[0] + "+" + name
	}
	return name
}

// Entry packs the keystroke back into the table encoding. The ISO key is
// folded back onto its replacement code.
func (k Keystroke) Entry() (layout.Entry, error) {
	u := k.Usage
	if u == layout.ISOKey {
		u = layout.ISOReplacement
	}
	return layout.Encode(u, k.Mods)
}

func keyName(u layout.Usage) string {
	if int(u) < len(baseCodes) {
		return baseCodes[u]
	}
	for name, code := range extraCodes {
		if int(u) == code {
			return name
		}
	}
	return fmt.Sprintf("0x%02x", uint8(u))
}

// ForByte obtains the keystroke for one byte: an ASCII code translated
// through the table, or a raw layout.Key.
func ForByte(t layout.Table, b byte) (Keystroke, error) {
	switch {
	case layout.IsKey(b):
		return Keystroke{Usage: layout.Key(b).Usage()}, nil
	case b >= layout.TableSize:
		return Keystroke{}, fmt.Errorf("%w: %#x", ErrReserved, b)
	}
	e, ok := t.Lookup(b)
	if !ok {
		return Keystroke{}, fmt.Errorf("%w %q", ErrUnmapped, b)
	}
	u, m := e.Decode()
	if u == layout.ISOReplacement {
		u = layout.ISOKey
	}
	return Keystroke{Usage: u, Mods: m}, nil
}

// ForBytes obtains the series of keystrokes needed to type a byte stream.
func ForBytes(t layout.Table, input []byte) ([]Keystroke, error) {
	keys := make([]Keystroke, 0, len(input))
	for _, b := range input {
		k, err := ForByte(t, b)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ForString obtains the series of keystrokes needed to type an ASCII string.
func ForString(t layout.Table, input string) ([]Keystroke, error) {
	for i, r := range input {
		if r >= layout.TableSize {
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnmapped, r, i)
		}
	}
	return ForBytes(t, []byte(input))
}

// SequenceForString converts an ASCII string into a space separated
// sequence of chords.
func SequenceForString(t layout.Table, input string) (string, error) {
	keys, err := ForString(t, input)
	if err != nil {
		return "", err
	}
	return Sequence(keys), nil
}

// Sequence renders keystrokes as a space separated sequence of chords.
func Sequence(keys []Keystroke) string {
	sequence := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			sequence.WriteByte(' ')
		}
		sequence.WriteString(k.String())
	}
	return sequence.String()
}

// ForSequence parses a sequence of chords as written by Sequence.
func ForSequence(sequence string) ([]Keystroke, error) {
	chords := strings.Fields(sequence)
	keys := make([]Keystroke, 0, len(chords))
	for _, chord := range chords {
		k := Keystroke{}
		parts := strings.Split(chord, "+")
		// "+" is not a key name, so a trailing empty part is an error too.
	modLoop:
		for _, mod := range parts[:len(parts)-1] {
			for _, name := range shiftNames {
				if mod == name {
					k.Mods |= layout.ModShift
					continue modLoop
				}
			}
			for _, name := range altGrNames {
				if mod == name {
					k.Mods |= layout.ModAltGr
					continue modLoop
				}
			}
			return nil, fmt.Errorf("%w %s", ErrUnknownKey, mod)
		}
		key := parts[len(parts)-1]
		code, ok := lookupName(key)
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnknownKey, key)
		}
		k.Usage = layout.Usage(code)
		keys = append(keys, k)
	}
	return keys, nil
}

func lookupName(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for code, name := range baseCodes {
		if key == name {
			return code, true
		}
	}
	code, ok := extraCodes[key]
	return code, ok
}
