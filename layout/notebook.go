package layout

var notebookTable = Table{
	// 0x00 - 0x07: NUL SOH STX ETX EOT ENQ ACK BEL
	0, 0, 0, 0, 0, 0, 0, 0,

	Entry(UsageBackspace), // 0x08 BS
	Entry(UsageTab),       // 0x09 TAB
	Entry(UsageEnter),     // 0x0A LF
	0,                     // 0x0B VT
	0,                     // 0x0C FF
	0,                     // 0x0D CR
	0,                     // 0x0E SO
	0,                     // 0x0F SI

	// 0x10 - 0x1F
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,

	Entry(UsageSpace), // ' '

	Entry(Usage1) | Shift,          // !
	Entry(Usage2) | Shift,          // "
	Entry(Usage3) | AltGr,          // #
	Entry(Usage4) | Shift,          // $
	Entry(Usage5) | Shift,          // %
	Entry(Usage6) | Shift,          // &
	Entry(UsageMinus),              // '
	Entry(Usage8) | Shift,          // (
	Entry(Usage9) | Shift,          // )
	Entry(UsageRightBrace) | Shift, // *
	Entry(UsageRightBrace),         // +
	Entry(UsageComma),              // ,
	Entry(UsageSlash),              // -
	Entry(UsageDot),                // .
	Entry(Usage7) | Shift,          // /

	Entry(Usage0), // 0
	Entry(Usage1), // 1
	Entry(Usage2), // 2
	Entry(Usage3), // 3
	Entry(Usage4), // 4
	Entry(Usage5), // 5
	Entry(Usage6), // 6
	Entry(Usage7), // 7
	Entry(Usage8), // 8
	Entry(Usage9), // 9

	Entry(UsageDot) | Shift,       // :
	Entry(UsageComma) | Shift,     // ;
	Entry(ISOReplacement),         // <
	Entry(Usage0) | Shift,         // =
	Entry(ISOReplacement) | Shift, // >
	Entry(UsageMinus) | Shift,     // ?
	Entry(Usage2) | AltGr,         // @

	Entry(UsageA) | Shift, // A
	Entry(UsageB) | Shift, // B
	Entry(UsageC) | Shift, // C
	Entry(UsageD) | Shift, // D
	Entry(UsageE) | Shift, // E
	Entry(UsageF) | Shift, // F
	Entry(UsageG) | Shift, // G
	Entry(UsageH) | Shift, // H
	Entry(UsageI) | Shift, // I
	Entry(UsageJ) | Shift, // J
	Entry(UsageK) | Shift, // K
	Entry(UsageL) | Shift, // L
	Entry(UsageM) | Shift, // M
	Entry(UsageN) | Shift, // N
	Entry(UsageO) | Shift, // O
	Entry(UsageP) | Shift, // P
	Entry(UsageQ) | Shift, // Q
	Entry(UsageR) | Shift, // R
	Entry(UsageS) | Shift, // S
	Entry(UsageT) | Shift, // T
	Entry(UsageU) | Shift, // U
	Entry(UsageV) | Shift, // V
	Entry(UsageW) | Shift, // W
	Entry(UsageX) | Shift, // X
	Entry(UsageY) | Shift, // Y
	Entry(UsageZ) | Shift, // Z

	Entry(UsageLeftBrace) | AltGr,  // [
	Entry(UsageGrave) | AltGr,      // \
	Entry(UsageRightBrace) | AltGr, // ]
	0,                              // ^ dead key
	Entry(UsageSlash) | Shift,      // _
	0,                              // ` dead key

	Entry(UsageA), // a
	Entry(UsageB), // b
	Entry(UsageC), // c
	Entry(UsageD), // d
	Entry(UsageE), // e
	Entry(UsageF), // f
	Entry(UsageG), // g
	Entry(UsageH), // h
	Entry(UsageI), // i
	Entry(UsageJ), // j
	Entry(UsageK), // k
	Entry(UsageL), // l
	Entry(UsageM), // m
	Entry(UsageN), // n
	Entry(UsageO), // o
	Entry(UsageP), // p
	Entry(UsageQ), // q
	Entry(UsageR), // r
	Entry(UsageS), // s
	Entry(UsageT), // t
	Entry(UsageU), // u
	Entry(UsageV), // v
	Entry(UsageW), // w
	Entry(UsageX), // x
	Entry(UsageY), // y
	Entry(UsageZ), // z

	Entry(UsageQuote) | AltGr,     // {
	Entry(Usage1) | AltGr,         // |
	Entry(UsageBackslash) | AltGr, // }
	0,                             // ~ dead key

	0, // 0x7F DEL
}
