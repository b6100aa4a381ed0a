// Package arduino renders the layout tables as the source files the
// Arduino Keyboard library expects.
package arduino

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"hebkbd/layout"
	"hebkbd/scancodes"
)

// File names the Keyboard library looks for.
const (
	LayoutFile = "KeyboardLayout_he_HE.cpp"
	HeaderFile = "Keyboard_he_HE.h"
)

var (
	layoutTmpl = template.Must(template.New("layout").Parse(layoutTemplate))
	headerTmpl = template.Must(template.New("header").Parse(headerTemplate))
)

var controlNames = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "TAB", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Row sections of the table, keyed by their first code.
var sections = map[int]string{
	0x00: "0x00 - 0x1F: control characters",
	0x20: "0x20 - 0x2F: space and punctuation",
	0x30: "0x30 - 0x39: digits",
	0x3a: "0x3A - 0x40: punctuation",
	0x41: "0x41 - 0x5A: capital letters",
	0x5b: "0x5B - 0x60: punctuation",
	0x61: "0x61 - 0x7A: small letters",
	0x7b: "0x7B - 0x7F: punctuation and DEL",
}

type row struct {
	Header  string
	Value   string
	Comment string
}

func charName(c int) string {
	switch {
	case c < len(controlNames):
		return controlNames[c]
	case c == ' ':
		return "Space"
	case c == 0x7f:
		return "DEL"
	}
	return string(rune(c))
}

// spliceSafe spells out a trailing backslash. In C++ a backslash before the
// newline joins the next line into a // comment, swallowing an entry.
func spliceSafe(comment string) string {
	if strings.HasSuffix(comment, `\`) {
		return strings.TrimSuffix(comment, `\`) + "Backslash"
	}
	return comment
}

func rows(t layout.Table) []row {
	out := make([]row, layout.TableSize)
	for c := range out {
		e := t[c]
		r := row{Header: sections[c], Value: e.String() + ","}
		if c == layout.TableSize-1 {
			r.Value = strings.TrimSuffix(r.Value, ",")
		}
		if k, err := scancodes.ForByte(t, byte(c)); err == nil {
			r.Comment = fmt.Sprintf("%-5s %s", charName(c), k)
		} else if c >= ' ' && c < 0x7f {
			r.Comment = fmt.Sprintf("%-5s unsupported", charName(c))
		}
		if r.Comment != "" {
			r.Comment = spliceSafe(r.Comment)
			r.Value = fmt.Sprintf("%-14s", r.Value)
		}
		out[c] = r
	}
	return out
}

// WriteLayout writes KeyboardLayout_he_HE.cpp for variant v.
func WriteLayout(w io.Writer, v layout.Variant) error {
	return layoutTmpl.Execute(w, struct {
		File    string
		Variant layout.Variant
		Rows    []row
	}{LayoutFile, v, rows(v.Table())})
}

type define struct {
	Name    string
	Code    string
	Comment string
}

type group struct {
	Title string
	Keys  []define
}

// Keyboard rows in the order the header lists them.
var groupRows = []struct {
	title  string
	labels string
}{
	{"Top (QWERTY) row", "qwertyuiop"},
	{"Middle (ASDF) row", "asdfghjkl;'"},
	{"Bottom (ZXCV) row", "zxcvbnm,./"},
}

func groups() []group {
	byLabel := make(map[byte]layout.KeyInfo)
	width := 0
	for _, info := range layout.Keys() {
		byLabel[info.Label] = info
		if n := len(info.Key.String()); n > width {
			width = n
		}
	}
	out := make([]group, 0, len(groupRows))
	for _, gr := range groupRows {
		g := group{Title: gr.title}
		for i := 0; i < len(gr.labels); i++ {
			info, ok := byLabel[gr.labels[i]]
			if !ok {
				continue
			}
			g.Keys = append(g.Keys, define{
				Name:    fmt.Sprintf("%-*s", width, info.Key.String()),
				Code:    fmt.Sprintf("%02X", uint8(info.Key.Usage())),
				Comment: fmt.Sprintf("%s (%c)", strings.ToUpper(string(info.Label)), info.Glyph),
			})
		}
		out = append(out, g)
	}
	return out
}

// WriteHeader writes Keyboard_he_HE.h.
func WriteHeader(w io.Writer) error {
	return headerTmpl.Execute(w, struct {
		File   string
		Offset int
		Groups []group
	}{HeaderFile, layout.KeyOffset, groups()})
}

// Export writes both files into dir and returns their paths.
func Export(dir string, v layout.Variant) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{LayoutFile, func(w io.Writer) error { return WriteLayout(w, v) }},
		{HeaderFile, WriteHeader},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		var buf bytes.Buffer
		if err := f.write(&buf); err != nil {
			return paths, fmt.Errorf("render %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
