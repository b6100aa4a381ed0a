package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/verify"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		port   string
		device string
		probe  string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the board types what the selected layout expects",
		Long: "Send a probe string through the board while reading the key events the host " +
			"receives from it, and compare them to the selected layout. The input device is " +
			"grabbed during the run, so nothing is typed into other windows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vc := a.cfg.Verify
			if device == "" {
				device = vc.Device
			}
			if device == "" {
				found, err := verify.Find(vc.Match)
				if err != nil {
					return err
				}
				device = found
			}
			if probe == "" {
				probe = vc.Probe
			}
			dev, err := verify.OpenDevice(device)
			if err != nil {
				return err
			}
			defer dev.Close()
			name, _ := dev.Name()
			a.log.Info("reading key events", "device", device, "name", name)

			s, err := a.openSender(cmd, &sinkFlags{port: port}, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signalContext()
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, vc.Timeout())
			defer cancel()
			send := func(ctx context.Context, data []byte) error {
				_, err := s.SendBytes(ctx, data)
				return err
			}
			rep, err := verify.Run(ctx, dev, send, a.table(), probe, a.log.Named("verify"))
			if err != nil {
				return err
			}
			if len(rep.Skipped) > 0 {
				pterm.Warning.Printfln("skipped %q: no key for it", string(rep.Skipped))
			}
			if rep.OK() {
				pterm.Success.Printfln("%s layout confirmed on %s (%s)", a.cfg.Variant(), device,
					plural(len(rep.Expected), "keystroke"))
				return nil
			}
			data := [][]string{{"#", "Char", "Want", "Got"}}
			for _, m := range rep.Mismatches {
				char, want, got := verify.Label(m.Char), m.Want.String(), m.Got.String()
				switch {
				case m.Missing:
					got = "-"
				case m.Extra:
					char, want = "-", "-"
				}
				data = append(data, []string{strconv.Itoa(m.Index), char, want, got})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}
			return fmt.Errorf("%s of %d differ from the %s layout",
				plural(len(rep.Mismatches), "keystroke"), len(rep.Expected), a.cfg.Variant())
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Serial port of the board")
	cmd.Flags().StringVar(&device, "device", "", "evdev input device of the board (default: [Verify] Device, then discovery)")
	cmd.Flags().StringVar(&probe, "probe", "", "Text to type (default: [Verify] Probe)")
	return cmd
}
