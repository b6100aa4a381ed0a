package verify

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebkbd/keymap"
	"hebkbd/layout"
	"hebkbd/scancodes"
)

// board plays the part of the Arduino and the host input layer: every byte
// it is sent comes back as evdev events, typed through its own table.
type board struct {
	table  layout.Table
	events chan *evdev.InputEvent
	once   sync.Once
	done   chan struct{}
}

func newBoard(t layout.Table) *board {
	return &board{table: t, events: make(chan *evdev.InputEvent, 1024), done: make(chan struct{})}
}

func (b *board) ReadOne() (*evdev.InputEvent, error) {
	select {
	case ev := <-b.events:
		return ev, nil
	case <-b.done:
		return nil, io.EOF
	}
}

func (b *board) Close() error {
	b.once.Do(func() { close(b.done) })
	return nil
}

func (b *board) emit(code int, value int32) {
	b.events <- &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.EvCode(code), Value: value}
	b.events <- &evdev.InputEvent{Type: evdev.EV_SYN}
}

func (b *board) send(_ context.Context, data []byte) error {
	for _, c := range data {
		k, err := scancodes.ForByte(b.table, c)
		if err != nil {
			continue
		}
		b.press(k)
	}
	return nil
}

func (b *board) press(k scancodes.Keystroke) {
	code, _ := keymap.Evdev(k.Usage)
	if k.Mods&layout.ModShift != 0 {
		b.emit(keymap.LeftShift, 1)
	}
	if k.Mods&layout.ModAltGr != 0 {
		b.emit(keymap.RightAlt, 1)
	}
	b.emit(code, 1)
	b.emit(code, 0)
	if k.Mods&layout.ModAltGr != 0 {
		b.emit(keymap.RightAlt, 0)
	}
	if k.Mods&layout.ModShift != 0 {
		b.emit(keymap.LeftShift, 0)
	}
}

const probe = "Hello, World! #<>[]{}|\\@"

func TestRunMatchingTable(t *testing.T) {
	for _, v := range layout.Variants() {
		b := newBoard(v.Table())
		rep, err := Run(context.Background(), b, b.send, v.Table(), probe, nil)
		require.NoError(t, err, v)
		assert.True(t, rep.OK(), "%s: %v", v, rep.Mismatches)
		assert.Len(t, rep.Got, len(rep.Expected))
	}
}

func TestRunOtherTable(t *testing.T) {
	b := newBoard(layout.Notebook.Table())
	rep, err := Run(context.Background(), b, b.send, layout.PC.Table(), "a#", nil)
	require.NoError(t, err)
	require.Len(t, rep.Mismatches, 1)
	m := rep.Mismatches[0]
	assert.Equal(t, byte('#'), m.Char)
	assert.Equal(t, "LShift+3", m.Want.String())
	assert.Equal(t, "AltGr+3", m.Got.String())
}

func TestRunTimeout(t *testing.T) {
	b := newBoard(layout.PC.Table())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	silent := func(context.Context, []byte) error { return nil }
	rep, err := Run(ctx, b, silent, layout.PC.Table(), "ab", nil)
	require.NoError(t, err)
	require.Len(t, rep.Mismatches, 2)
	assert.True(t, rep.Mismatches[0].Missing)
	assert.Equal(t, `#0 'a': want A, got nothing`, rep.Mismatches[0].String())
}

func TestRunSendError(t *testing.T) {
	b := newBoard(layout.PC.Table())
	boom := errors.New("port gone")
	failing := func(context.Context, []byte) error { return boom }
	_, err := Run(context.Background(), b, failing, layout.PC.Table(), "ab", nil)
	assert.ErrorIs(t, err, boom)
}

func TestRunUnmappedText(t *testing.T) {
	b := newBoard(layout.Notebook.Table())
	_, err := Run(context.Background(), b, b.send, layout.Notebook.Table(), "^~", nil)
	assert.Error(t, err)
}

func TestExpectSkipsDeadKeys(t *testing.T) {
	exp, skipped := Expect(layout.Notebook.Table(), "a^b")
	require.Len(t, exp, 2)
	assert.Equal(t, byte('a'), exp[0].Char)
	assert.Equal(t, byte('b'), exp[1].Char)
	assert.Equal(t, []rune{'^'}, skipped)
}

func TestExpectHebrew(t *testing.T) {
	exp, skipped := Expect(layout.PC.Table(), "ש")
	require.Len(t, exp, 1)
	assert.Equal(t, byte(layout.KeyHeShin), exp[0].Char)
	assert.Equal(t, scancodes.Keystroke{Usage: layout.UsageA}, exp[0].Key)
	assert.Empty(t, skipped)

	exp, skipped = Expect(layout.PC.Table(), "שָׁלוֹם €")
	assert.Len(t, exp, 5)
	assert.Equal(t, []rune{'€'}, skipped)
}

func TestRunHebrewText(t *testing.T) {
	b := newBoard(layout.PC.Table())
	rep, err := Run(context.Background(), b, b.send, layout.PC.Table(), "שלום, עולם!", nil)
	require.NoError(t, err)
	assert.True(t, rep.OK(), "%v", rep.Mismatches)
	assert.Len(t, rep.Got, 11)
	assert.Equal(t, scancodes.Keystroke{Usage: layout.UsageA}, rep.Got[0])
	assert.Empty(t, rep.Skipped)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "'a'", Label('a'))
	assert.Equal(t, "KEY_HE_SHIN", Label(byte(layout.KeyHeShin)))
}

func TestCompare(t *testing.T) {
	a := scancodes.Keystroke{Usage: layout.UsageA}
	b := scancodes.Keystroke{Usage: layout.UsageB}
	want := []Expected{{'a', a}, {'b', b}}

	assert.Empty(t, Compare(want, []scancodes.Keystroke{a, b}))

	ms := Compare(want, []scancodes.Keystroke{a, b, a})
	require.Len(t, ms, 1)
	assert.True(t, ms[0].Extra)
	assert.Equal(t, 2, ms[0].Index)
	assert.Equal(t, "#2: unexpected A", ms[0].String())

	ms = Compare(want, []scancodes.Keystroke{b})
	require.Len(t, ms, 2)
	assert.Equal(t, "#0 'a': want A, got B", ms[0].String())
	assert.True(t, ms[1].Missing)
}

func TestDecoderIgnoresRepeatsAndOtherEvents(t *testing.T) {
	var d Decoder
	_, ok := d.Feed(&evdev.InputEvent{Type: evdev.EV_MSC, Code: 4, Value: 458756})
	assert.False(t, ok)
	_, ok = d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 2})
	assert.False(t, ok)

	d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_RIGHTSHIFT, Value: 1})
	k, ok := d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_102ND, Value: 1})
	require.True(t, ok)
	assert.Equal(t, scancodes.Keystroke{Usage: layout.ISOKey, Mods: layout.ModShift}, k)

	d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_RIGHTSHIFT, Value: 0})
	d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_RIGHTSHIFT, Value: 0})
	k, _ = d.Feed(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_BACKSLASH, Value: 1})
	assert.Equal(t, scancodes.Keystroke{Usage: layout.UsageBackslash}, k)
}
