package layout

import "fmt"

// Usage is a key usage ID from the USB HID Keyboard/Keypad usage page.
// It identifies a physical key, independent of the glyph printed on it.
type Usage uint8

// Keyboard usages referenced by the layout tables.
const (
	UsageNone           Usage = 0x00
	UsageA              Usage = 0x04
	UsageB              Usage = 0x05
	UsageC              Usage = 0x06
	UsageD              Usage = 0x07
	UsageE              Usage = 0x08
	UsageF              Usage = 0x09
	UsageG              Usage = 0x0A
	UsageH              Usage = 0x0B
	UsageI              Usage = 0x0C
	UsageJ              Usage = 0x0D
	UsageK              Usage = 0x0E
	UsageL              Usage = 0x0F
	UsageM              Usage = 0x10
	UsageN              Usage = 0x11
	UsageO              Usage = 0x12
	UsageP              Usage = 0x13
	UsageQ              Usage = 0x14
	UsageR              Usage = 0x15
	UsageS              Usage = 0x16
	UsageT              Usage = 0x17
	UsageU              Usage = 0x18
	UsageV              Usage = 0x19
	UsageW              Usage = 0x1A
	UsageX              Usage = 0x1B
	UsageY              Usage = 0x1C
	UsageZ              Usage = 0x1D
	Usage1              Usage = 0x1E
	Usage2              Usage = 0x1F
	Usage3              Usage = 0x20
	Usage4              Usage = 0x21
	Usage5              Usage = 0x22
	Usage6              Usage = 0x23
	Usage7              Usage = 0x24
	Usage8              Usage = 0x25
	Usage9              Usage = 0x26
	Usage0              Usage = 0x27
	UsageEnter          Usage = 0x28
	UsageEscape         Usage = 0x29
	UsageBackspace      Usage = 0x2A
	UsageTab            Usage = 0x2B
	UsageSpace          Usage = 0x2C
	UsageMinus          Usage = 0x2D
	UsageEqual          Usage = 0x2E
	UsageLeftBrace      Usage = 0x2F
	UsageRightBrace     Usage = 0x30
	UsageBackslash      Usage = 0x31
	UsageNonUSHash      Usage = 0x32
	UsageSemicolon      Usage = 0x33
	UsageQuote          Usage = 0x34
	UsageGrave          Usage = 0x35
	UsageComma          Usage = 0x36
	UsageDot            Usage = 0x37
	UsageSlash          Usage = 0x38
	UsageCapsLock       Usage = 0x39
	UsageNonUSBackslash Usage = 0x64
)

// The Arduino Keyboard library substitutes ISOKey for ISOReplacement when it
// sends a table entry, so a table can reach the extra ISO key (next to left
// Shift) even though AltGr entries only have six bits for the scan code.
const (
	ISOReplacement = UsageNonUSHash
	ISOKey         = UsageNonUSBackslash
)

var usageNames = map[Usage]string{
	UsageNone:           "None",
	UsageEnter:          "Enter",
	UsageEscape:         "Esc",
	UsageBackspace:      "Backspace",
	UsageTab:            "Tab",
	UsageSpace:          "Space",
	UsageMinus:          "-",
	UsageEqual:          "=",
	UsageLeftBrace:      "[",
	UsageRightBrace:     "]",
	UsageBackslash:      "\\",
	UsageNonUSHash:      "NonUS#",
	UsageSemicolon:      ";",
	UsageQuote:          "'",
	UsageGrave:          "`",
	UsageComma:          ",",
	UsageDot:            ".",
	UsageSlash:          "/",
	UsageCapsLock:       "CapsLock",
	UsageNonUSBackslash: "ISO",
}

// String returns the US label of the key, in the notation used by
// scancodes.SequenceForString ("A", "1", "Space", ";").
func (u Usage) String() string {
	switch {
	case u >= UsageA && u <= UsageZ:
		return string(rune('A' + u - UsageA))
	case u >= Usage1 && u <= Usage9:
		return string(rune('1' + u - Usage1))
	case u == Usage0:
		return "0"
	}
	if name, ok := usageNames[u]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(u))
}
