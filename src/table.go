package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/layout"
	"hebkbd/scancodes"
)

func newTableCmd(a *app) *cobra.Command {
	var keys, all bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the layout table or the named Hebrew keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if keys {
				pterm.Info.Println("Named keys, offset " + strconv.Itoa(layout.KeyOffset))
				return pterm.DefaultTable.WithHasHeader().WithData(keyRows()).Render()
			}
			pterm.Info.Printfln("SI-1452 %s layout", a.cfg.Variant())
			return pterm.DefaultTable.WithHasHeader().WithData(tableRows(a.table(), all)).Render()
		},
	}
	cmd.Flags().BoolVarP(&keys, "keys", "k", false, "List the KEY_HE_* constants instead")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include characters without a key")
	return cmd
}

func printable(c byte) string {
	switch {
	case c == ' ':
		return "Space"
	case c == '\b':
		return `\b`
	case c == '\t':
		return `\t`
	case c == '\n':
		return `\n`
	case c < ' ' || c == 0x7f:
		return fmt.Sprintf("^%c", c^0x40)
	}
	return string(rune(c))
}

func tableRows(t layout.Table, all bool) [][]string {
	data := [][]string{{"Char", "Code", "Entry", "Keystroke"}}
	for c := 0; c < layout.TableSize; c++ {
		keystroke := "-"
		if k, err := scancodes.ForByte(t, byte(c)); err == nil {
			keystroke = k.String()
		} else if !all {
			continue
		}
		data = append(data, []string{
			printable(byte(c)),
			fmt.Sprintf("0x%02x", c),
			t[c].String(),
			keystroke,
		})
	}
	return data
}

func keyRows() [][]string {
	data := [][]string{{"Name", "Code", "Key", "Glyph"}}
	for _, info := range layout.Keys() {
		data = append(data, []string{
			info.Key.String(),
			strconv.Itoa(int(info.Key)),
			info.Key.Usage().String(),
			string(info.Glyph),
		})
	}
	return data
}
