package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableControlCodes(t *testing.T) {
	for _, v := range Variants() {
		table := v.Table()
		for c := 0; c < 0x20; c++ {
			switch c {
			case '\b':
				assert.Equal(t, Entry(0x2a), table[c], "%s backspace", v)
			case '\t':
				assert.Equal(t, Entry(0x2b), table[c], "%s tab", v)
			case '\n':
				assert.Equal(t, Entry(0x28), table[c], "%s enter", v)
			default:
				assert.Zero(t, table[c], "%s control code %#x", v, c)
			}
		}
		assert.Equal(t, Entry(0x2c), table[' '], "%s space", v)
		assert.Zero(t, table[' '].Modifiers())
		assert.Zero(t, table[0x7f], "%s DEL", v)
	}
}

func TestTableDigits(t *testing.T) {
	for _, v := range Variants() {
		table := v.Table()
		assert.Equal(t, Entry(Usage0), table['0'])
		for c := '1'; c <= '9'; c++ {
			assert.Equal(t, Entry(Usage1)+Entry(c-'1'), table[c], "%s digit %c", v, c)
		}
	}
}

func TestTableLetters(t *testing.T) {
	for _, v := range Variants() {
		table := v.Table()
		for c := 'a'; c <= 'z'; c++ {
			lower, upper := table[c], table[c-'a'+'A']
			if lower.Modifiers() != 0 {
				t.Errorf("%s %c carries %s", v, c, lower.Modifiers())
			}
			if upper.Modifiers() != ModShift {
				t.Errorf("%s %c carries %q, want Shift", v, c-'a'+'A', upper.Modifiers())
			}
			if lower.Usage() != upper.Usage() {
				t.Errorf("%s %c and its capital use different keys", v, c)
			}
			if upper != lower|Shift {
				t.Errorf("%s Table[%c] = %s, want %s", v, c-'a'+'A', upper, lower|Shift)
			}
			if lower.Usage() != UsageA+Usage(c-'a') {
				t.Errorf("%s %c is not on its own key", v, c)
			}
		}
	}
}

func TestNotebookDeadKeys(t *testing.T) {
	table := Notebook.Table()
	for _, c := range []byte{'^', '`', '~'} {
		_, ok := table.Lookup(c)
		assert.False(t, ok, "%c", c)
		assert.Zero(t, table[c])
	}
}

func TestPCSymbols(t *testing.T) {
	table := PC.Table()
	for c, want := range map[byte]Entry{
		'!':  0x1e | Shift,
		'\'': 0x33,
		',':  0x34,
		'.':  0x38,
		'/':  0x37,
		';':  0x1d | Shift,
		'^':  0x23 | Shift,
		'`':  0x35,
		'~':  0x35 | Shift,
	} {
		assert.Equal(t, want, table[c], "%c", c)
	}
}

func TestNotebookSymbols(t *testing.T) {
	table := Notebook.Table()
	for c, want := range map[byte]Entry{
		'#':  0x20 | AltGr,
		'@':  0x1f | AltGr,
		'\'': 0x2d,
		'<':  0x32,
		'>':  0x32 | Shift,
		'[':  0x2f | AltGr,
		'\\': 0x35 | AltGr,
		'{':  0x34 | AltGr,
		'|':  0x1e | AltGr,
		'}':  0x31 | AltGr,
	} {
		assert.Equal(t, want, table[c], "%c", c)
	}
}

func TestOnlyNotebookUsesAltGr(t *testing.T) {
	for _, e := range PC.Table() {
		if e.Modifiers() == ModAltGr {
			t.Fatalf("PC table holds AltGr entry %s", e)
		}
	}
	n := 0
	for _, e := range Notebook.Table() {
		if e.Modifiers() == ModAltGr {
			n++
		}
	}
	assert.Equal(t, 8, n)
}

func TestTablePrintableCoverage(t *testing.T) {
	unsupported := map[Variant]string{
		PC:       "",
		Notebook: "^`~",
	}
	for _, v := range Variants() {
		table := v.Table()
		missing := ""
		for c := byte(' '); c <= '~'; c++ {
			if _, ok := table.Lookup(c); !ok {
				missing += string(c)
			}
		}
		assert.Equal(t, unsupported[v], missing, "%s", v)
	}
}

func TestTableRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		for c, e := range v.Table() {
			u, m := e.Decode()
			got, err := Encode(u, m)
			require.NoError(t, err, "%s %#x", v, c)
			assert.Equal(t, e, got, "%s %#x", v, c)
		}
	}
}

func TestLookup(t *testing.T) {
	table := Default()
	e, ok := table.Lookup('A')
	assert.True(t, ok)
	assert.Equal(t, table['a']|Shift, e)

	_, ok = table.Lookup(0)
	assert.False(t, ok)
	_, ok = table.Lookup(0x80)
	assert.False(t, ok)
	_, ok = table.Lookup(0xff)
	assert.False(t, ok)

	again, _ := table.Lookup('A')
	assert.Equal(t, e, again)
}

func TestTableIsCopied(t *testing.T) {
	table := PC.Table()
	table['a'] = 0
	assert.Equal(t, Entry(UsageA), PC.Table()['a'])
}

func TestBytes(t *testing.T) {
	table := Notebook.Table()
	b := table.Bytes()
	require.Len(t, b, TableSize)
	assert.Equal(t, byte(0x20|0xc0), b['#'])
	assert.Equal(t, byte(0x04), b['a'])
}

func TestParseVariant(t *testing.T) {
	for name, want := range map[string]Variant{
		"":         PC,
		"pc":       PC,
		"PC":       PC,
		"desktop":  PC,
		"notebook": Notebook,
		" Alt ":    Notebook,
	} {
		got, err := ParseVariant(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseVariant("dvorak")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	assert.Equal(t, "pc", PC.String())
	assert.Equal(t, "notebook", Notebook.String())
	assert.Equal(t, "Variant(7)", Variant(7).String())
}
