package main

/*
 hebkbd
 Host side of the Arduino Hebrew keyboard: the SI-1452 layout tables, the
 Arduino sources generated from them, and the tools that type Hebrew text
 through a board running the Keyboard library.

 Environment: CONFIG (config file), DEBUG, VERBOSE, HEBKBD_LOG_LEVEL,
 HEBKBD_JSON_LOG=1.
*/

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/config"
	"hebkbd/layout"
	"hebkbd/logging"
)

const version = "1.0.0"

// app carries what every subcommand needs once the root flags are parsed.
type app struct {
	confPath string
	debug    bool
	verbose  bool
	variant  string

	cfg *config.Config
	log hclog.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = logging.New("hebkbd", logging.Level(a.debug, a.verbose), os.Stderr)
	path := config.Path(a.confPath)
	cfg, err := config.Load(path, a.log)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout.Variant = a.variant
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log.Debug("configuration", "path", path, "variant", cfg.Variant())
	return nil
}

// table returns the layout table selected by config and --layout.
func (a *app) table() layout.Table {
	return a.cfg.Variant().Table()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "hebkbd",
		Short:             "Type Hebrew through an Arduino HID keyboard",
		Long:              "Layout tables, Arduino sources and host tools for an Arduino that types Hebrew (SI-1452) as a USB keyboard.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	f := root.PersistentFlags()
	f.StringVarP(&a.confPath, "conf", "c", "", "Non-default config location")
	f.BoolVarP(&a.debug, "debug", "d", false, "Debug log level")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "Increase log level to INFO")
	f.StringVarP(&a.variant, "layout", "l", layout.DefaultVariant.String(), "Layout variant: pc or notebook")

	root.AddCommand(
		newTableCmd(a),
		newExportCmd(a),
		newSendCmd(a),
		newWatchCmd(a),
		newInteractiveCmd(a),
		newPortsCmd(a),
		newVerifyCmd(a),
	)
	return root
}

// signalContext is cancelled on Ctrl-C, which is how a running send is
// stopped.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
