package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/serial"
)

func portRows(ports []serial.Info) [][]string {
	data := [][]string{{"Port", "Product", "VID:PID", "Serial"}}
	for _, p := range ports {
		id := ""
		if p.USB {
			id = p.VID + ":" + p.PID
		}
		data = append(data, []string{p.Name, p.Product, id, p.SerialNumber})
	}
	return data
}

func newPortsCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "ports",
		Short: "List serial ports that look like the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			match := a.cfg.Serial.Match
			if all {
				match = "."
			}
			ports, err := serial.Discover(match)
			if err != nil {
				return err
			}
			return pterm.DefaultTable.WithHasHeader().WithData(portRows(ports)).Render()
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every serial port")
	return cmd
}
