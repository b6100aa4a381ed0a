package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"hebkbd/sender"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		sf            sinkFlags
		file          string
		fromClipboard bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Send the clipboard or a file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (file == "") == !fromClipboard {
				return errors.New("watch needs exactly one of --clipboard or --file")
			}
			s, err := a.openSender(cmd, &sf, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signalContext()
			defer stop()
			send := func(text []byte) {
				st, err := s.Send(ctx, string(text))
				if errors.Is(err, sender.ErrEmptyText) {
					return
				}
				if err := a.report(ctx, st, err); err != nil {
					pterm.Error.Println(err)
				}
			}
			if fromClipboard {
				return watchClipboard(ctx, a.log, send)
			}
			return watchFile(ctx, file, a.log, send)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to watch")
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Watch the clipboard")
	return cmd
}

func watchClipboard(ctx context.Context, log hclog.Logger, send func([]byte)) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	pterm.Info.Println("Watching the clipboard, stop with Ctrl-C")
	for text := range clipboard.Watch(ctx, clipboard.FmtText) {
		log.Debug("clipboard changed", "bytes", len(text))
		send(text)
	}
	return nil
}

// fileWatcher sends a file's contents each time they change.
type fileWatcher struct {
	path string
	last []byte
	log  hclog.Logger
	send func([]byte)
}

func (w *fileWatcher) check() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.log.Debug("unable to read watched file", "path", w.path, "error", err)
		return
	}
	if bytes.Equal(data, w.last) {
		return
	}
	w.last = data
	w.send(data)
}

// watchFile watches the file's directory rather than the file itself, so
// editors that replace the file on save keep being followed.
func watchFile(ctx context.Context, path string, log hclog.Logger, send func([]byte)) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	w := &fileWatcher{path: path, log: log, send: send}
	if data, err := os.ReadFile(path); err == nil {
		w.last = data
	}
	pterm.Info.Printfln("Watching %s, stop with Ctrl-C", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("file changed", "event", ev.String())
			w.check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}
