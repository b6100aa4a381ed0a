// Package sender types text through a Sink: the Arduino on a serial port,
// or a local virtual keyboard.
package sender

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"hebkbd/translit"
)

// ErrEmptyText is returned when there is nothing to type.
var ErrEmptyText = errors.New("no text to send")

// Stats describe a finished or interrupted Send.
type Stats struct {
	Sent    int
	Skipped []rune
}

// Options configure a Sender.
type Options struct {
	// Delay is the pause after every byte.
	Delay  time.Duration
	Logger hclog.Logger
	// Progress, if set, is called after every byte.
	Progress func(sent, total int)
}

// Sender serializes writes to one Sink.
type Sender struct {
	mu   sync.Mutex
	sink Sink
	opts Options
	log  hclog.Logger
}

func New(sink Sink, opts Options) *Sender {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Sender{sink: sink, opts: opts, log: log}
}

// Send transliterates text and types it. Characters without a key are
// skipped and reported in Stats. Cancelling ctx stops between two bytes.
func (s *Sender) Send(ctx context.Context, text string) (Stats, error) {
	if text == "" {
		return Stats{}, ErrEmptyText
	}
	res := translit.String(text)
	if len(res.Skipped) > 0 {
		s.log.Warn("characters without a key skipped", "count", len(res.Skipped), "chars", string(res.Skipped))
	}
	st, err := s.SendBytes(ctx, res.Bytes)
	st.Skipped = res.Skipped
	return st, err
}

// SendBytes types an already transliterated byte stream.
func (s *Sender) SendBytes(ctx context.Context, data []byte) (Stats, error) {
	st := Stats{}
	if len(data) == 0 {
		return st, ErrEmptyText
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.log.Info("sending", "bytes", len(data), "delay", s.opts.Delay)
	for i, b := range data {
		if err := ctx.Err(); err != nil {
			s.log.Info("send stopped", "sent", st.Sent, "total", len(data))
			return st, err
		}
		if err := s.sink.WriteByte(b); err != nil {
			return st, fmt.Errorf("byte %d of %d: %w", i+1, len(data), err)
		}
		st.Sent++
		if s.opts.Progress != nil {
			s.opts.Progress(st.Sent, len(data))
		}
		if s.opts.Delay > 0 && i < len(data)-1 {
			if err := sleep(ctx, s.opts.Delay); err != nil {
				s.log.Info("send stopped", "sent", st.Sent, "total", len(data))
				return st, err
			}
		}
	}
	s.log.Info("sent", "bytes", st.Sent, "elapsed", time.Since(start))
	return st, nil
}

// Close closes the sink.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sink.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
