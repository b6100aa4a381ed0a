package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"golang.design/x/clipboard"

	"hebkbd/exec"
	"hebkbd/sender"
	"hebkbd/serial"
)

// sinkFlags select where typed text goes. Shared by the commands that send.
type sinkFlags struct {
	local bool
	port  string
	delay int
}

func (f *sinkFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.local, "local", false, "Type on this machine through a virtual keyboard instead of the board")
	fs.StringVarP(&f.port, "port", "p", "", "Serial port of the board (default: [Serial] Port, then discovery)")
	fs.IntVar(&f.delay, "delay", 0, "Delay between characters in ms (default: [Serial] DelayMs)")
}

// openSender opens the sink chosen by f. progress may be nil.
func (a *app) openSender(cmd *cobra.Command, f *sinkFlags, progress func(sent, total int)) (*sender.Sender, error) {
	delay := a.cfg.Serial.Delay()
	if cmd.Flags().Changed("delay") {
		delay = time.Duration(f.delay) * time.Millisecond
	}
	var sink sender.Sink
	if f.local {
		local, err := sender.NewLocalSink(a.table(), a.cfg.Serial.Settle(), a.log.Named("local"))
		if err != nil {
			return nil, err
		}
		sink = local
	} else {
		port, err := a.openPort(f.port)
		if err != nil {
			return nil, err
		}
		sink = sender.NewSerialSink(port)
	}
	return sender.New(sink, sender.Options{
		Delay:    delay,
		Logger:   a.log.Named("sender"),
		Progress: progress,
	}), nil
}

func (a *app) openPort(path string) (serial.Port, error) {
	sc := a.cfg.Serial
	if path == "" {
		path = sc.Port
	}
	if path == "" {
		found, err := serial.First(sc.Match)
		if err != nil {
			return nil, err
		}
		path = found
	}
	a.log.Info("opening serial port", "path", path, "baud", sc.Baud, "disable_dtr", sc.DisableDTR)
	spinner, _ := pterm.DefaultSpinner.Start("Waiting for the board on " + path)
	port, err := serial.Open(path, serial.Options{
		Baud:       sc.Baud,
		DisableDTR: sc.DisableDTR,
		Settle:     sc.Settle(),
	})
	if spinner != nil {
		if err != nil {
			spinner.Fail(err.Error())
		} else {
			spinner.Success("Connected to " + path)
		}
	}
	return port, err
}

// progressBar draws a bar that is created on the first callback, when the
// byte count is known.
type progressBar struct {
	bar *pterm.ProgressbarPrinter
}

func (p *progressBar) update(sent, total int) {
	if p.bar == nil {
		p.bar, _ = pterm.DefaultProgressbar.WithTotal(total).WithTitle("Sending").Start()
		if p.bar == nil {
			return
		}
	}
	p.bar.Increment()
}

func (p *progressBar) stop() {
	if p.bar != nil {
		p.bar.Stop()
		p.bar = nil
	}
}

// runHook runs [Hooks] Done after a send. Hook failures are logged only.
func (a *app) runHook(ctx context.Context, st sender.Stats) {
	h := a.cfg.Hooks
	if h.Done == "" {
		return
	}
	res, err := exec.ExecCommand(ctx, &exec.Command{
		ID:       "done",
		Line:     h.Done,
		UseShell: h.DoneShell,
		Timeout:  h.DoneTimeout(),
		MaxReply: 4096,
		Env: []string{
			"HEBKBD_SENT=" + strconv.Itoa(st.Sent),
			"HEBKBD_SKIPPED=" + strconv.Itoa(len(st.Skipped)),
		},
	})
	if err != nil {
		a.log.Error("invalid Done hook", "command", h.Done, "error", err)
		return
	}
	if res.Status != 0 {
		a.log.Warn("Done hook failed", "command", h.Done, "status", res.Status,
			"timed_out", res.TimedOut, "stderr", strings.TrimSpace(string(res.StdErr)))
		return
	}
	a.log.Debug("Done hook finished", "command", h.Done, "stdout", strings.TrimSpace(string(res.StdOut)))
}

// report prints the outcome of a send and runs the hook if it completed.
func (a *app) report(ctx context.Context, st sender.Stats, err error) error {
	if len(st.Skipped) > 0 {
		pterm.Warning.Printfln("skipped %s without a key: %q", plural(len(st.Skipped), "character"), string(st.Skipped))
	}
	switch {
	case errors.Is(err, context.Canceled):
		pterm.Warning.Printfln("stopped after %s", plural(st.Sent, "character"))
		return nil
	case err != nil:
		return err
	}
	pterm.Success.Printfln("sent %s", plural(st.Sent, "character"))
	a.runHook(ctx, st)
	return nil
}

// readClipboard returns the text on the clipboard.
func readClipboard() (string, error) {
	if err := clipboard.Init(); err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// inputText picks the text to send: arguments, then --file, then the
// clipboard, then stdin.
func inputText(args []string, file string, fromClipboard bool, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file == "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	case file != "":
		data, err := os.ReadFile(file)
		return string(data), err
	case fromClipboard:
		return readClipboard()
	}
	data, err := io.ReadAll(stdin)
	return string(data), err
}

func newSendCmd(a *app) *cobra.Command {
	var (
		sf            sinkFlags
		file          string
		fromClipboard bool
	)
	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Type text through the board",
		Long: "Transliterate text (arguments, --file, --clipboard or stdin) to the board's byte " +
			"stream and type it. Ctrl-C stops between two characters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args, file, fromClipboard, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if text == "" {
				return sender.ErrEmptyText
			}
			bar := &progressBar{}
			s, err := a.openSender(cmd, &sf, bar.update)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signalContext()
			defer stop()
			st, err := s.Send(ctx, text)
			bar.stop()
			return a.report(context.Background(), st, err)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().StringVarP(&file, "file", "f", "", `Read the text from a file ("-" for stdin)`)
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Send the clipboard contents")
	return cmd
}
