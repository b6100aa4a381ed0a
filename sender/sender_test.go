package sender

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hebkbd/layout"
)

type recorder struct {
	data   []byte
	failAt int
	closed bool
}

var errBoom = errors.New("boom")

func (r *recorder) WriteByte(b byte) error {
	if r.failAt > 0 && len(r.data)+1 == r.failAt {
		return errBoom
	}
	r.data = append(r.data, b)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func TestSend(t *testing.T) {
	rec := &recorder{}
	var progress []int
	s := New(rec, Options{Progress: func(sent, total int) {
		assert.Equal(t, 5, total)
		progress = append(progress, sent)
	}})
	st, err := s.Send(context.Background(), "שלום\n")
	require.NoError(t, err)
	assert.Equal(t, 5, st.Sent)
	assert.Empty(t, st.Skipped)
	assert.Equal(t, []byte{
		byte(layout.KeyHeShin),
		byte(layout.KeyHeLamed),
		byte(layout.KeyHeVav),
		byte(layout.KeyHeFinalMem),
		'\n',
	}, rec.data)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, progress)

	require.NoError(t, s.Close())
	assert.True(t, rec.closed)
}

func TestSendReportsSkipped(t *testing.T) {
	rec := &recorder{}
	st, err := New(rec, Options{}).Send(context.Background(), "a€b")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Sent)
	assert.Equal(t, []rune{'€'}, st.Skipped)
}

func TestSendEmpty(t *testing.T) {
	s := New(&recorder{}, Options{})
	_, err := s.Send(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)

	st, err := s.Send(context.Background(), "€")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, []rune{'€'}, st.Skipped)
}

func TestSendSinkError(t *testing.T) {
	rec := &recorder{failAt: 3}
	st, err := New(rec, Options{}).Send(context.Background(), "abcd")
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, st.Sent)
}

func TestSendCancelled(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	s := New(rec, Options{
		Delay: time.Hour,
		Progress: func(sent, _ int) {
			if sent == 2 {
				cancel()
			}
		},
	})
	st, err := s.Send(ctx, "abcdef")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, st.Sent)
	assert.Equal(t, []byte("ab"), rec.data)
}

func TestSendDelay(t *testing.T) {
	rec := &recorder{}
	start := time.Now()
	_, err := New(rec, Options{Delay: 10 * time.Millisecond}).Send(context.Background(), "abc")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
