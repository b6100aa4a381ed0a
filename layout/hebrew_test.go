package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysMatchLetterRows(t *testing.T) {
	for _, v := range Variants() {
		table := v.Table()
		for _, info := range Keys() {
			if info.Label < 'a' || info.Label > 'z' {
				continue
			}
			e := table[info.Label]
			if info.Key.Usage() != e.Usage() {
				t.Errorf("%s: %s on %c is 0x%02x, table says 0x%02x",
					v, info.Key, info.Label, uint8(info.Key.Usage()), uint8(e.Usage()))
			}
		}
	}
}

func TestKeyOffset(t *testing.T) {
	assert.Equal(t, Key(136+0x17), KeyHeAlef)
	assert.Equal(t, Key(136+0x04), KeyHeShin)
	assert.Equal(t, Key(136+0x38), KeyHePeriod)
	for _, info := range Keys() {
		assert.True(t, IsKey(byte(info.Key)), "%s", info.Key)
		assert.Equal(t, Usage(info.Key-KeyOffset), info.Key.Usage())
	}
	assert.Equal(t, UsageNone, Key('a').Usage())
}

func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]string)
	for _, info := range Keys() {
		if prev, ok := seen[info.Key]; ok {
			t.Errorf("%s and %s share a key", prev, info.Name)
		}
		seen[info.Key] = info.Name
	}
	assert.Len(t, seen, 31)
}

func TestKeyForRune(t *testing.T) {
	n := 0
	for r := 'א'; r <= 'ת'; r++ {
		k, ok := KeyForRune(r)
		if !assert.True(t, ok, "%c", r) {
			continue
		}
		info, ok := k.Info()
		assert.True(t, ok)
		assert.Equal(t, r, info.Glyph)
		n++
	}
	assert.Equal(t, 27, n)

	for _, r := range []rune{'a', '/', '.', ',', 'ְ', 'װ'} {
		_, ok := KeyForRune(r)
		assert.False(t, ok, "%c", r)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "KEY_HE_ALEF", KeyHeAlef.String())
	assert.Equal(t, "KEY_HE_COMMA_HEBREW", KeyHeComma.String())
	assert.Equal(t, "KEY(Space)", Key(KeyOffset+Key(UsageSpace)).String())
}

func TestFinalForms(t *testing.T) {
	for r, label := range map[rune]byte{
		'ם': 'o',
		'ן': 'i',
		'ף': ';',
		'ץ': '.',
		'ך': 'l',
		'ת': ',',
	} {
		k, _ := KeyForRune(r)
		info, _ := k.Info()
		assert.Equal(t, label, info.Label, "%c", r)
	}
}
