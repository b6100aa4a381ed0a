// Package keymap translates between HID keyboard usages and Linux evdev key
// codes, for the keys the SI-1452 tables use.
package keymap

import (
	evdev "github.com/gvalkov/golang-evdev"

	"hebkbd/layout"
)

// Linux hid-input maps the non-US hash usage onto KEY_BACKSLASH, the same
// code as the regular backslash key.
var hidToEvdev = map[layout.Usage]int{
	layout.UsageA:              evdev.KEY_A,
	layout.UsageB:              evdev.KEY_B,
	layout.UsageC:              evdev.KEY_C,
	layout.UsageD:              evdev.KEY_D,
	layout.UsageE:              evdev.KEY_E,
	layout.UsageF:              evdev.KEY_F,
	layout.UsageG:              evdev.KEY_G,
	layout.UsageH:              evdev.KEY_H,
	layout.UsageI:              evdev.KEY_I,
	layout.UsageJ:              evdev.KEY_J,
	layout.UsageK:              evdev.KEY_K,
	layout.UsageL:              evdev.KEY_L,
	layout.UsageM:              evdev.KEY_M,
	layout.UsageN:              evdev.KEY_N,
	layout.UsageO:              evdev.KEY_O,
	layout.UsageP:              evdev.KEY_P,
	layout.UsageQ:              evdev.KEY_Q,
	layout.UsageR:              evdev.KEY_R,
	layout.UsageS:              evdev.KEY_S,
	layout.UsageT:              evdev.KEY_T,
	layout.UsageU:              evdev.KEY_U,
	layout.UsageV:              evdev.KEY_V,
	layout.UsageW:              evdev.KEY_W,
	layout.UsageX:              evdev.KEY_X,
	layout.UsageY:              evdev.KEY_Y,
	layout.UsageZ:              evdev.KEY_Z,
	layout.Usage1:              evdev.KEY_1,
	layout.Usage2:              evdev.KEY_2,
	layout.Usage3:              evdev.KEY_3,
	layout.Usage4:              evdev.KEY_4,
	layout.Usage5:              evdev.KEY_5,
	layout.Usage6:              evdev.KEY_6,
	layout.Usage7:              evdev.KEY_7,
	layout.Usage8:              evdev.KEY_8,
	layout.Usage9:              evdev.KEY_9,
	layout.Usage0:              evdev.KEY_0,
	layout.UsageEnter:          evdev.KEY_ENTER,
	layout.UsageEscape:         evdev.KEY_ESC,
	layout.UsageBackspace:      evdev.KEY_BACKSPACE,
	layout.UsageTab:            evdev.KEY_TAB,
	layout.UsageSpace:          evdev.KEY_SPACE,
	layout.UsageMinus:          evdev.KEY_MINUS,
	layout.UsageEqual:          evdev.KEY_EQUAL,
	layout.UsageLeftBrace:      evdev.KEY_LEFTBRACE,
	layout.UsageRightBrace:     evdev.KEY_RIGHTBRACE,
	layout.UsageBackslash:      evdev.KEY_BACKSLASH,
	layout.UsageNonUSHash:      evdev.KEY_BACKSLASH,
	layout.UsageSemicolon:      evdev.KEY_SEMICOLON,
	layout.UsageQuote:          evdev.KEY_APOSTROPHE,
	layout.UsageGrave:          evdev.KEY_GRAVE,
	layout.UsageComma:          evdev.KEY_COMMA,
	layout.UsageDot:            evdev.KEY_DOT,
	layout.UsageSlash:          evdev.KEY_SLASH,
	layout.UsageCapsLock:       evdev.KEY_CAPSLOCK,
	layout.UsageNonUSBackslash: evdev.KEY_102ND,
}

var evdevToHID = make(map[int]layout.Usage, len(hidToEvdev))

func init() {
	for u, code := range hidToEvdev {
		if u == layout.UsageNonUSHash {
			continue
		}
		evdevToHID[code] = u
	}
}

// Modifier key codes.
const (
	LeftShift  = evdev.KEY_LEFTSHIFT
	RightShift = evdev.KEY_RIGHTSHIFT
	RightAlt   = evdev.KEY_RIGHTALT
)

// Evdev returns the Linux key code for a usage.
func Evdev(u layout.Usage) (int, bool) {
	code, ok := hidToEvdev[u]
	return code, ok
}

// Usage returns the HID usage for a Linux key code.
func Usage(code int) (layout.Usage, bool) {
	u, ok := evdevToHID[code]
	return u, ok
}

// IsShift reports whether code is either Shift key.
func IsShift(code int) bool {
	return code == LeftShift || code == RightShift
}

// IsAltGr reports whether code is the AltGr (right Alt) key.
func IsAltGr(code int) bool {
	return code == RightAlt
}
