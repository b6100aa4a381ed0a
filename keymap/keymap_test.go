package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebkbd/layout"
)

func TestEveryTableKeyIsMapped(t *testing.T) {
	for _, v := range layout.Variants() {
		for c, e := range v.Table() {
			if e == 0 {
				continue
			}
			_, ok := Evdev(e.Usage())
			assert.True(t, ok, "%s %#x uses unmapped %s", v, c, e.Usage())
		}
	}
	for _, info := range layout.Keys() {
		_, ok := Evdev(info.Key.Usage())
		assert.True(t, ok, "%s", info.Key)
	}
}

func TestRoundTrip(t *testing.T) {
	for u := range hidToEvdev {
		if u == layout.UsageNonUSHash {
			continue
		}
		code, ok := Evdev(u)
		require.True(t, ok)
		back, ok := Usage(code)
		require.True(t, ok, "%s", u)
		assert.Equal(t, u, back)
	}
	back, _ := Usage(30)
	assert.Equal(t, layout.UsageA, back)

	_, ok := Usage(LeftShift)
	assert.False(t, ok)
}

func TestModifiers(t *testing.T) {
	assert.True(t, IsShift(42))
	assert.True(t, IsShift(54))
	assert.True(t, IsAltGr(100))
	assert.False(t, IsAltGr(56))
}
