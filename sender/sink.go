package sender

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/micmonay/keybd_event"

	"hebkbd/keymap"
	"hebkbd/layout"
	"hebkbd/scancodes"
	"hebkbd/serial"
)

// Sink receives the byte stream the Arduino sketch would receive.
type Sink interface {
	WriteByte(b byte) error
	Close() error
}

var (
	_ Sink = (*SerialSink)(nil)
	_ Sink = (*LocalSink)(nil)
)

// SerialSink forwards bytes to the board over its serial port.
type SerialSink struct {
	port serial.Port
}

func NewSerialSink(port serial.Port) *SerialSink {
	return &SerialSink{port: port}
}

func (s *SerialSink) WriteByte(b byte) error {
	if _, err := s.port.Write([]byte{b}); err != nil {
		return fmt.Errorf("write to %s: %w", s.port.Name(), err)
	}
	return nil
}

func (s *SerialSink) Close() error {
	return s.port.Close()
}

// Keyboard is the part of keybd_event.KeyBonding LocalSink drives.
type Keyboard interface {
	SetKeys(keys ...int)
	HasSHIFT(bool)
	HasALTGR(bool)
	Launching() error
}

// LocalSink plays the keystrokes the board would send on a virtual
// keyboard of this machine, so a layout can be tried without hardware.
// The local keyboard layout must be switched to Hebrew.
type LocalSink struct {
	kb    Keyboard
	table layout.Table
	log   hclog.Logger
}

// NewLocalSink creates a uinput keyboard. The desktop needs a moment to
// pick up the new device, so it waits settle before returning.
func NewLocalSink(t layout.Table, settle time.Duration, log hclog.Logger) (*LocalSink, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("virtual keyboard: %w", err)
	}
	if settle > 0 {
		time.Sleep(settle)
	}
	return NewLocalSinkWith(&kb, t, log), nil
}

// NewLocalSinkWith wraps an existing keyboard.
func NewLocalSinkWith(kb Keyboard, t layout.Table, log hclog.Logger) *LocalSink {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &LocalSink{kb: kb, table: t, log: log}
}

func (s *LocalSink) WriteByte(b byte) error {
	k, err := scancodes.ForByte(s.table, b)
	if err != nil {
		return err
	}
	code, ok := keymap.Evdev(k.Usage)
	if !ok {
		return fmt.Errorf("%w: no evdev code for %s", scancodes.ErrUnmapped, k.Usage)
	}
	s.log.Trace("key", "byte", b, "keystroke", k, "code", code)
	s.kb.SetKeys(code)
	s.kb.HasSHIFT(k.Mods&layout.ModShift != 0)
	s.kb.HasALTGR(k.Mods&layout.ModAltGr != 0)
	return s.kb.Launching()
}

func (s *LocalSink) Close() error { return nil }
