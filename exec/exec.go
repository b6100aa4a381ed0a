package exec

/*
  Run the hook commands configured for a finished send.
*/

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
)

// ErrEmptyCommand is returned for a blank command line.
var ErrEmptyCommand = errors.New("empty command line")

type Command struct {
	ID       string        // Free-form tag copied to the Result.
	Line     string        // Command line, split with POSIX shell quoting rules.
	UseShell bool          // Hand Line to /bin/sh -c instead of splitting it.
	Timeout  time.Duration // Zero waits forever.
	MaxReply int64         // Truncate stdout/stderr to this many bytes, zero keeps all.
	Env      []string      // Extra "KEY=value" pairs on top of the inherited environment.
	Dir      string
	StdIn    []byte
}

type Result struct {
	ID        string   `json:"id"`
	Processed bool     `json:"processed"` // Was the command started at all?
	Command   string   `json:"command"`
	Args      []string `json:"args,omitempty"`
	Status    int      `json:"status"`
	TimedOut  bool     `json:"timed_out,omitempty"`
	StdOut    []byte   `json:"stdout,omitempty"`
	StdErr    []byte   `json:"stderr,omitempty"`
}

// Args splits the command line the way ExecCommand will run it.
func (c *Command) Args() ([]string, error) {
	if c.UseShell {
		if c.Line == "" {
			return nil, ErrEmptyCommand
		}
		return []string{"/bin/sh", "-c", c.Line}, nil
	}
	args, err := shellquote.Split(c.Line)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}

// ExecCommand runs c and waits for it, or kills its whole process group once
// the timeout or ctx expires. Failures are reported through Result.Status
// and Result.StdErr; the error is only set when the command line is invalid.
func ExecCommand(ctx context.Context, c *Command) (*Result, error) {
	args, err := c.Args()
	if err != nil {
		return nil, err
	}
	r := &Result{ID: c.ID, Command: args[0], Args: args[1:]}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.Command(args[0], args[1:]...)
	// Own process group, so a timeout takes the children down too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdin = bytes.NewReader(c.StdIn)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		r.Status = -1 // No such command at all?
		r.StdErr = []byte(err.Error())
		return r, nil
	}
	r.Processed = true

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err = <-done:
	case <-ctx.Done():
		r.TimedOut = true
		pid := cmd.Process.Pid
		syscall.Kill(-pid, syscall.SIGTERM)
		select {
		case err = <-done:
		case <-time.After(time.Second / 2):
			syscall.Kill(-pid, syscall.SIGKILL)
			err = <-done
		}
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			r.Status = 128 + int(status.Signal())
		} else {
			r.Status = exitErr.ExitCode()
		}
	default:
		r.Status = -1
		stderr.WriteString(err.Error())
	}
	r.StdOut = truncate(stdout.Bytes(), c.MaxReply)
	r.StdErr = truncate(stderr.Bytes(), c.MaxReply)
	return r, nil
}

func truncate(b []byte, max int64) []byte {
	if max > 0 && int64(len(b)) > max {
		b = b[:max]
	}
	if len(b) == 0 {
		return nil
	}
	return b
}
