// Package layout holds the SI-1452 (Israeli Hebrew) keyboard layout tables
// for the Arduino Keyboard library.
//
// A Table maps each ASCII code to the physical key, and modifier, that makes
// a host running the Hebrew layout produce that character. Hebrew letters
// themselves are outside ASCII; they come from the Latin letter keys, which
// the host translates, or from the named Key constants, which address a
// physical key directly:
//
//	t := layout.Default()
//	e, _ := t.Lookup('a')          // UsageA, no modifier
//	k, _ := layout.KeyForRune('ש') // KeyHeShin, 136+UsageA
//
// All tables and constants are compiled in and never change, so they can be
// shared freely between goroutines.
package layout
