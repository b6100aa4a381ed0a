// Package verify types a probe string through the board and reads back the
// key events the host receives from it, to check that the table flashed on
// the board is the one selected here.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/hashicorp/go-hclog"
	evdev "github.com/holoplot/go-evdev"

	"hebkbd/keymap"
	"hebkbd/layout"
	"hebkbd/scancodes"
	"hebkbd/translit"
)

// ErrNoDevice is returned by Find when no input device name matches.
var ErrNoDevice = errors.New("no matching input device")

// Expected is one byte of the transliterated probe with the keystroke the
// board types for it.
type Expected struct {
	Char byte
	Key  scancodes.Keystroke
}

// Mismatch is one position where the received keystroke differs.
type Mismatch struct {
	Index int
	Char  byte
	Want  scancodes.Keystroke
	Got   scancodes.Keystroke
	// Missing is set when fewer keystrokes arrived than expected, Extra
	// when more did.
	Missing bool
	Extra   bool
}

func (m Mismatch) String() string {
	switch {
	case m.Missing:
		return fmt.Sprintf("#%d %s: want %s, got nothing", m.Index, Label(m.Char), m.Want)
	case m.Extra:
		return fmt.Sprintf("#%d: unexpected %s", m.Index, m.Got)
	}
	return fmt.Sprintf("#%d %s: want %s, got %s", m.Index, Label(m.Char), m.Want, m.Got)
}

// Label names a byte of the board's stream: a quoted ASCII character or a
// KEY_HE_* name.
func Label(b byte) string {
	if layout.IsKey(b) {
		return layout.Key(b).String()
	}
	return fmt.Sprintf("%q", b)
}

// Report is the outcome of Run.
type Report struct {
	Expected   []Expected
	Got        []scancodes.Keystroke
	Mismatches []Mismatch
	// Skipped lists the probe characters that have no key and were not sent.
	Skipped []rune
}

// OK reports whether every keystroke matched.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Expect transliterates probe the way sender.Send does and lists the
// keystrokes t produces for it. Characters without a key, in the
// transliteration or in the table, are returned as skipped; the board
// sends nothing for them.
func Expect(t layout.Table, probe string) ([]Expected, []rune) {
	res := translit.String(probe)
	skipped := res.Skipped
	var out []Expected
	for _, b := range res.Bytes {
		k, err := scancodes.ForByte(t, b)
		if err != nil {
			skipped = append(skipped, rune(b))
			continue
		}
		out = append(out, Expected{Char: b, Key: k})
	}
	return out, skipped
}

// Compare lines received keystrokes up with the expected ones.
func Compare(want []Expected, got []scancodes.Keystroke) []Mismatch {
	var out []Mismatch
	for i, w := range want {
		switch {
		case i >= len(got):
			out = append(out, Mismatch{Index: i, Char: w.Char, Want: w.Key, Missing: true})
		case got[i] != w.Key:
			out = append(out, Mismatch{Index: i, Char: w.Char, Want: w.Key, Got: got[i]})
		}
	}
	for i := len(want); i < len(got); i++ {
		out = append(out, Mismatch{Index: i, Got: got[i], Extra: true})
	}
	return out
}

// Decoder turns a key event stream back into keystrokes, keeping track of
// the Shift and AltGr keys held.
type Decoder struct {
	shift int
	altGr int
}

// Feed consumes one event and returns a keystroke for every key press
// that is not a modifier.
func (d *Decoder) Feed(ev *evdev.InputEvent) (scancodes.Keystroke, bool) {
	if ev.Type != evdev.EV_KEY {
		return scancodes.Keystroke{}, false
	}
	code := int(ev.Code)
	switch {
	case keymap.IsShift(code):
		d.shift = hold(d.shift, ev.Value)
		return scancodes.Keystroke{}, false
	case keymap.IsAltGr(code):
		d.altGr = hold(d.altGr, ev.Value)
		return scancodes.Keystroke{}, false
	case ev.Value != 1:
		return scancodes.Keystroke{}, false
	}
	u, ok := keymap.Usage(code)
	if !ok {
		return scancodes.Keystroke{}, false
	}
	k := scancodes.Keystroke{Usage: u}
	if d.shift > 0 {
		k.Mods |= layout.ModShift
	}
	if d.altGr > 0 {
		k.Mods |= layout.ModAltGr
	}
	return k, true
}

func hold(n int, value int32) int {
	switch value {
	case 1:
		return n + 1
	case 0:
		if n > 0 {
			return n - 1
		}
	}
	return n
}

// EventSource yields input events, blocking until one is available.
type EventSource interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Collect reads events from src until n keystrokes have been decoded or
// ctx is done. The keystrokes read so far are returned with the error.
// A source that blocks must be unblocked by the caller when ctx ends,
// closing the device does that.
func Collect(ctx context.Context, src EventSource, n int, log hclog.Logger) ([]scancodes.Keystroke, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	var (
		dec  Decoder
		keys = make([]scancodes.Keystroke, 0, n)
	)
	for len(keys) < n {
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		ev, err := src.ReadOne()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return keys, ctxErr
			}
			return keys, err
		}
		if k, ok := dec.Feed(ev); ok {
			log.Trace("key", "event", ev.CodeName(), "keystroke", k)
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Run sends the probe with send while collecting what src delivers, then
// compares the two. Keystrokes that have not arrived when ctx expires are
// reported as missing; src is closed in that case if it is an io.Closer.
func Run(ctx context.Context, src EventSource, send func(context.Context, []byte) error, t layout.Table, probe string, log hclog.Logger) (Report, error) {
	rep := Report{}
	rep.Expected, rep.Skipped = Expect(t, probe)
	if len(rep.Expected) == 0 {
		return rep, fmt.Errorf("probe %q has no key in this table", probe)
	}
	data := make([]byte, len(rep.Expected))
	for i, e := range rep.Expected {
		data[i] = e.Char
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := make(chan collected, 1)
	go func() {
		keys, err := Collect(ctx, src, len(data), log)
		ch <- collected{keys, err}
	}()

	if err := send(ctx, data); err != nil {
		cancel()
		wait(ctx, src, ch)
		return rep, fmt.Errorf("send probe: %w", err)
	}
	res := wait(ctx, src, ch)
	rep.Got = res.keys
	rep.Mismatches = Compare(rep.Expected, rep.Got)
	if res.err != nil && !errors.Is(res.err, context.DeadlineExceeded) {
		return rep, res.err
	}
	return rep, nil
}

type collected struct {
	keys []scancodes.Keystroke
	err  error
}

// wait returns the collector's result. When ctx ends first, src is closed
// if it can be, to unblock a pending read.
func wait(ctx context.Context, src EventSource, ch <-chan collected) collected {
	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		if c, ok := src.(io.Closer); ok {
			c.Close()
		}
		return <-ch
	}
}

// Find returns the path of the first input device whose name matches.
func Find(match string) (string, error) {
	re, err := regexp.Compile(match)
	if err != nil {
		return "", err
	}
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if re.MatchString(p.Name) {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoDevice, match)
}

// Device is an input device grabbed for the duration of a verify run, so
// the probe does not land in whatever window has focus.
type Device struct {
	*evdev.InputDevice
	Path string
}

// OpenDevice opens and grabs the device at path.
func OpenDevice(path string) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	if err := dev.Grab(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("grab %s: %w", path, err)
	}
	return &Device{InputDevice: dev, Path: path}, nil
}

// Close releases the grab and closes the device.
func (d *Device) Close() error {
	d.InputDevice.Ungrab()
	return d.InputDevice.Close()
}
