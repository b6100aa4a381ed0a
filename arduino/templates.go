package arduino

const layoutTemplate = `/*
 * {{.File}}
 *
 * Hebrew keyboard layout for the Arduino Keyboard library.
 * SI-1452, {{.Variant}} variant. Generated by hebkbd, do not edit.
 *
 * Hebrew letters are typed with the KEY_HE_* codes of Keyboard_he_HE.h;
 * the host must have its Hebrew layout active.
 */

#include "KeyboardLayout.h"

extern const uint8_t KeyboardLayout_he_HE[128] PROGMEM = {
{{- range .Rows}}
{{- if .Header}}

  // {{.Header}}
{{- end}}
  {{.Value}}{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
};
`

const headerTemplate = `/*
  {{.File}}
  Constants for the Hebrew keyboard layout. Generated by hebkbd, do not edit.
*/

#ifndef KEYBOARD_HE_HE_h
#define KEYBOARD_HE_HE_h

#include "HID.h"

#if !defined(_USING_HID)

#warning "Using legacy HID core (non pluggable)"

#else

// he_HE keys: raw scan codes with the Keyboard library offset of {{.Offset}}.
{{- range .Groups}}

// {{.Title}}
{{- range .Keys}}
#define {{.Name}} ({{$.Offset}}+0x{{.Code}})  // {{.Comment}}
{{- end}}
{{- end}}

#endif
#endif
`
