package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
)

// CommandRunner runs an external program in dir and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecError describes an external command that could not be started or exited non-zero.
type ExecError struct {
	Command  string
	ExitCode int // -1 if the command never ran
	Stderr   []byte
	Err      error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if stderr := strings.TrimSpace(string(e.Stderr)); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	execErr := &ExecError{
		Command:  strings.Join(append([]string{name}, args...), " "),
		ExitCode: -1,
		Stderr:   stderr.Bytes(),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		execErr.ExitCode = exitErr.ExitCode()
	}
	return out, execErr
}

// RevisionReader looks up the commit hash of HEAD with git.
type RevisionReader struct {
	// Runner defaults to ExecRunner.
	Runner CommandRunner
	// Dir is the working directory git runs in; empty means the current directory.
	Dir string
	// Short asks git for an abbreviated hash.
	Short bool
}

// Read returns the current revision with trailing whitespace removed.
// Any failure of git itself is returned as *ExecError.
func (r RevisionReader) Read(ctx context.Context) (string, error) {
	runner := r.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	args := []string{"rev-parse", "HEAD"}
	if r.Short {
		args = []string{"rev-parse", "--short", "HEAD"}
	}

	out, err := runner.Run(ctx, r.Dir, "git", args...)
	if err != nil {
		return "", err
	}
	for _, b := range out {
		if b > unicode.MaxASCII {
			return "", ErrNonASCIIOutput
		}
	}
	rev := strings.TrimRightFunc(string(out), unicode.IsSpace)
	if rev == "" {
		return "", ErrEmptyRevision
	}
	return rev, nil
}

// GetRevisionHash returns the commit hash of HEAD for the repository containing
// the current working directory.
func GetRevisionHash(ctx context.Context) (string, error) {
	return RevisionReader{}.Read(ctx)
}
