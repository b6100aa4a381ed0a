package scancodes

import (
	"testing"

	"hebkbd/layout"
)

func TestBaseTable(t *testing.T) {
	if len(baseCodes) != 0x3a {
		t.Errorf("Table misses %d entries", 0x3a-len(baseCodes))
	}
	if baseCodes[0x04] != "A" {
		t.Error("Misalignment before A")
	}
	if baseCodes[0x1e] != "1" {
		t.Error("Misalignment between A-1")
	}
	if baseCodes[0x2c] != "Space" {
		t.Error("Misalignment between 1-Space")
	}
	if baseCodes[0x38] != "/" {
		t.Error("Misalignment between Space-/")
	}
}

func TestNamesAgreeWithLayout(t *testing.T) {
	for code, name := range baseCodes {
		u := layout.Usage(code)
		if s := u.String(); s[0] != '0' || u == layout.Usage0 {
			if s != name {
				t.Errorf("usage %#x: layout says %q, table says %q", code, s, name)
			}
		}
	}
	if keyName(layout.ISOKey) != layout.ISOKey.String() {
		t.Error("ISO key name mismatch")
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	for _, v := range layout.Variants() {
		table := v.Table()
		var input []byte
		for c := byte(' '); c <= '~'; c++ {
			if _, ok := table.Lookup(c); ok {
				input = append(input, c)
			}
		}
		keys, err := ForBytes(table, input)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		parsed, err := ForSequence(Sequence(keys))
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if len(parsed) != len(keys) {
			t.Fatalf("%s: parsed %d keystrokes, want %d", v, len(parsed), len(keys))
		}
		for i := range keys {
			if parsed[i] != keys[i] {
				t.Errorf("%s %q: parsed %v, want %v", v, input[i], parsed[i], keys[i])
			}
			e, err := parsed[i].Entry()
			if err != nil {
				t.Errorf("%s %q: %v", v, input[i], err)
			}
			if e != table[input[i]] {
				t.Errorf("%s %q: entry %s, want %s", v, input[i], e, table[input[i]])
			}
		}
	}
}

func TestForByteReserved(t *testing.T) {
	for b := 0x80; b < layout.KeyOffset; b++ {
		if _, err := ForByte(layout.Default(), byte(b)); err == nil {
			t.Errorf("%#x accepted", b)
		}
	}
}
