package layout

// Key addresses a physical key directly, bypassing the ASCII table. The
// Arduino Keyboard library treats any code from KeyOffset upward as a raw
// scan code plus KeyOffset; lower codes are reserved for ASCII and the
// library's own modifier keys.
type Key uint8

// KeyOffset is added to a scan code to form a Key.
const KeyOffset = 136

// SI-1452 keys, named after the Hebrew glyph they produce when the host
// layout is Hebrew.
const (
	// Top row.
	KeyHeSlash      Key = KeyOffset + Key(UsageQ) // /
	KeyHeApostrophe Key = KeyOffset + Key(UsageW) // '
	KeyHeQof        Key = KeyOffset + Key(UsageE)
	KeyHeResh       Key = KeyOffset + Key(UsageR)
	KeyHeAlef       Key = KeyOffset + Key(UsageT)
	KeyHeTet        Key = KeyOffset + Key(UsageY)
	KeyHeVav        Key = KeyOffset + Key(UsageU)
	KeyHeFinalNun   Key = KeyOffset + Key(UsageI)
	KeyHeFinalMem   Key = KeyOffset + Key(UsageO)
	KeyHePe         Key = KeyOffset + Key(UsageP)

	// Home row.
	KeyHeShin     Key = KeyOffset + Key(UsageA)
	KeyHeDalet    Key = KeyOffset + Key(UsageS)
	KeyHeGimel    Key = KeyOffset + Key(UsageD)
	KeyHeKaf      Key = KeyOffset + Key(UsageF)
	KeyHeAyin     Key = KeyOffset + Key(UsageG)
	KeyHeYod      Key = KeyOffset + Key(UsageH)
	KeyHeHet      Key = KeyOffset + Key(UsageJ)
	KeyHeLamed    Key = KeyOffset + Key(UsageK)
	KeyHeFinalKaf Key = KeyOffset + Key(UsageL)
	KeyHeFinalPe  Key = KeyOffset + Key(UsageSemicolon)
	KeyHeComma    Key = KeyOffset + Key(UsageQuote) // ,

	// Bottom row.
	KeyHeZayin      Key = KeyOffset + Key(UsageZ)
	KeyHeSamekh     Key = KeyOffset + Key(UsageX)
	KeyHeBet        Key = KeyOffset + Key(UsageC)
	KeyHeHe         Key = KeyOffset + Key(UsageV)
	KeyHeNun        Key = KeyOffset + Key(UsageB)
	KeyHeMem        Key = KeyOffset + Key(UsageN)
	KeyHeTsadi      Key = KeyOffset + Key(UsageM)
	KeyHeTav        Key = KeyOffset + Key(UsageComma)
	KeyHeFinalTsadi Key = KeyOffset + Key(UsageDot)
	KeyHePeriod     Key = KeyOffset + Key(UsageSlash) // .
)

// IsKey reports whether b is in the raw key range rather than ASCII.
func IsKey(b byte) bool { return b >= KeyOffset }

// Usage strips the offset. It returns UsageNone for codes below KeyOffset.
func (k Key) Usage() Usage {
	if k < KeyOffset {
		return UsageNone
	}
	return Usage(k - KeyOffset)
}

// KeyInfo describes a named key.
type KeyInfo struct {
	Key   Key
	Name  string // KEY_HE_* identifier used in the Arduino header
	Glyph rune   // produced under the Hebrew host layout
	Label byte   // glyph printed on the key of a US keyboard, lowercase
}

// Letter reports whether the key produces a Hebrew letter.
func (i KeyInfo) Letter() bool {
	return i.Glyph >= 'א' && i.Glyph <= 'ת'
}

var hebrewKeys = []KeyInfo{
	{KeyHeSlash, "SLASH", '/', 'q'},
	{KeyHeApostrophe, "APOSTROPHE", '\'', 'w'},
	{KeyHeQof, "QOF", 'ק', 'e'},
	{KeyHeResh, "RESH", 'ר', 'r'},
	{KeyHeAlef, "ALEF", 'א', 't'},
	{KeyHeTet, "TET", 'ט', 'y'},
	{KeyHeVav, "VAV", 'ו', 'u'},
	{KeyHeFinalNun, "FINAL_NUN", 'ן', 'i'},
	{KeyHeFinalMem, "FINAL_MEM", 'ם', 'o'},
	{KeyHePe, "PE", 'פ', 'p'},

	{KeyHeShin, "SHIN", 'ש', 'a'},
	{KeyHeDalet, "DALET", 'ד', 's'},
	{KeyHeGimel, "GIMEL", 'ג', 'd'},
	{KeyHeKaf, "KAF", 'כ', 'f'},
	{KeyHeAyin, "AYIN", 'ע', 'g'},
	{KeyHeYod, "YOD", 'י', 'h'},
	{KeyHeHet, "HET", 'ח', 'j'},
	{KeyHeLamed, "LAMED", 'ל', 'k'},
	{KeyHeFinalKaf, "FINAL_KAF", 'ך', 'l'},
	{KeyHeFinalPe, "FINAL_PE", 'ף', ';'},
	{KeyHeComma, "COMMA_HEBREW", ',', '\''},

	{KeyHeZayin, "ZAYIN", 'ז', 'z'},
	{KeyHeSamekh, "SAMEKH", 'ס', 'x'},
	{KeyHeBet, "BET", 'ב', 'c'},
	{KeyHeHe, "HE", 'ה', 'v'},
	{KeyHeNun, "NUN", 'נ', 'b'},
	{KeyHeMem, "MEM", 'מ', 'n'},
	{KeyHeTsadi, "TSADI", 'צ', 'm'},
	{KeyHeTav, "TAV", 'ת', ','},
	{KeyHeFinalTsadi, "FINAL_TSADI", 'ץ', '.'},
	{KeyHePeriod, "PERIOD", '.', '/'},
}

var (
	keyByRune = make(map[rune]Key)
	keyInfo   = make(map[Key]KeyInfo)
)

func init() {
	for _, info := range hebrewKeys {
		keyInfo[info.Key] = info
		if info.Letter() {
			keyByRune[info.Glyph] = info.Key
		}
	}
}

// Keys returns every named key in keyboard order, top row first.
func Keys() []KeyInfo {
	keys := make([]KeyInfo, len(hebrewKeys))
	copy(keys, hebrewKeys)
	return keys
}

// KeyForRune returns the key producing a Hebrew letter (U+05D0-U+05EA).
func KeyForRune(r rune) (Key, bool) {
	k, ok := keyByRune[r]
	return k, ok
}

// Info returns the description of a named key.
func (k Key) Info() (KeyInfo, bool) {
	info, ok := keyInfo[k]
	return info, ok
}

// String returns the Arduino header name, e.g. "KEY_HE_ALEF".
func (k Key) String() string {
	if info, ok := keyInfo[k]; ok {
		return "KEY_HE_" + info.Name
	}
	return "KEY(" + k.Usage().String() + ")"
}
