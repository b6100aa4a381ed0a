package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"hebkbd/sender"
)

// session is the state of the interactive prompt.
type session struct {
	enter bool // type Enter after every line
}

// command handles a ":" line. It reports whether the prompt should end.
func (s *session) command(line string) (quit bool, err error) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false, errors.New("empty command, try :help")
	}
	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "enter":
		if len(fields) == 2 && (fields[1] == "on" || fields[1] == "off") {
			s.enter = fields[1] == "on"
			return false, nil
		}
		return false, errors.New("usage: :enter on|off")
	case "help":
		pterm.Println(`Every line is typed through the board.
  :enter on|off   type Enter after each line (now ` + onOff(s.enter) + `)
  :quit           leave (or Ctrl-D)
  ::text          type ":text"`)
		return false, nil
	}
	return false, errors.New("unknown command :" + fields[0])
}

// text returns what to type for a line that is not a command.
func (s *session) text(line string) string {
	line = strings.TrimPrefix(line, ":")
	if s.enter {
		return line + "\n"
	}
	return line
}

func isCommand(line string) bool {
	return strings.HasPrefix(line, ":") && !strings.HasPrefix(line, "::")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func newInteractiveCmd(a *app) *cobra.Command {
	var (
		sf      sinkFlags
		noEnter bool
	)
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Type each line entered at a prompt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSender(cmd, &sf, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			repl, err := readline.New("he > ")
			if err != nil {
				return err
			}
			defer repl.Close()

			sess := &session{enter: !noEnter}
			pterm.Info.Println("Quit with <ctrl>D, :help for commands")
			for {
				line, err := repl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				if isCommand(line) {
					quit, err := sess.command(line)
					if err != nil {
						pterm.Error.Println(err)
					}
					if quit {
						break
					}
					continue
				}
				text := sess.text(line)
				if text == "" {
					continue
				}
				ctx, stop := signalContext()
				st, err := s.Send(ctx, text)
				stop()
				if err := a.report(context.Background(), st, err); err != nil && !errors.Is(err, sender.ErrEmptyText) {
					pterm.Error.Println(err)
				}
			}
			pterm.Info.Println("Good bye!")
			return nil
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().BoolVar(&noEnter, "no-enter", false, "Do not type Enter after each line")
	return cmd
}
