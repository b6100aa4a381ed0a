package scancodes

// Key names indexed by HID usage ID, keyboard page.
// Table lifted from the USB HID Usage Tables, section 10.
var baseCodes = []string{
	"None", "ErrorRollOver", "POSTFail", "ErrorUndefined",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
	"Enter", "Esc", "Backspace", "Tab", "Space",
	"-", "=", "[", "]", "\\",
	"NonUS#",
	";", "'", "`", ",", ".", "/",
	"CapsLock",
}

// Keys past the end of baseCodes that the layouts can still reach.
var extraCodes = map[string]int{
	"ISO": 0x64,
}

// Modifier spellings accepted in a chord. The first one of each kind is
// the one SequenceForString writes.
var shiftNames = []string{"LShift", "RShift", "Shift"}
var altGrNames = []string{"AltGr", "RAlt"}
