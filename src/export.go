package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/arduino"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [dir]",
		Short: "Write " + arduino.LayoutFile + " and " + arduino.HeaderFile,
		Long:  "Write the Arduino Keyboard library sources for the selected layout into dir (default: current directory).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			paths, err := arduino.Export(dir, a.cfg.Variant())
			for _, p := range paths {
				pterm.Success.Println("wrote " + p)
			}
			return err
		},
	}
}
