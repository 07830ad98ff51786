package util

import (
	"context"
	"errors"
	"os/exec"
	"slices"
	"testing"
)

type fakeRunner struct {
	out []byte
	err error

	dir  string
	name string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir = dir
	f.name = name
	f.args = args
	return f.out, f.err
}

func TestRevisionReader_Read(t *testing.T) {
	execErr := &ExecError{Command: "git rev-parse HEAD", ExitCode: 128, Stderr: []byte("fatal: not a git repository")}

	tests := []struct {
		name    string
		out     string
		err     error
		short   bool
		want    string
		wantErr error
	}{
		{
			name: "trailing newline stripped",
			out:  "9fceb02d0ae598e95dc970b74767f19372d61af8\n",
			want: "9fceb02d0ae598e95dc970b74767f19372d61af8",
		},
		{
			name: "trailing whitespace stripped",
			out:  "9fceb02d0ae598e95dc970b74767f19372d61af8 \r\n\t",
			want: "9fceb02d0ae598e95dc970b74767f19372d61af8",
		},
		{
			name:  "short hash",
			out:   "9fceb02\n",
			short: true,
			want:  "9fceb02",
		},
		{
			name:    "non-ascii output",
			out:     "9fceb02é\n",
			wantErr: ErrNonASCIIOutput,
		},
		{
			name:    "empty output",
			out:     "\n",
			wantErr: ErrEmptyRevision,
		},
		{
			name:    "runner failure propagated",
			err:     execErr,
			wantErr: execErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: []byte(tt.out), err: tt.err}
			reader := RevisionReader{Runner: runner, Dir: "/srv/repo", Short: tt.short}

			got, err := reader.Read(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}

			wantArgs := []string{"rev-parse", "HEAD"}
			if tt.short {
				wantArgs = []string{"rev-parse", "--short", "HEAD"}
			}
			if runner.name != "git" || !slices.Equal(runner.args, wantArgs) {
				t.Errorf("ran %s %v, want git %v", runner.name, runner.args, wantArgs)
			}
			if runner.dir != "/srv/repo" {
				t.Errorf("ran in %q, want /srv/repo", runner.dir)
			}
		})
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "", "djutil-no-such-binary", "rev-parse", "HEAD")
	if err == nil {
		t.Fatal("Run() expected error for missing binary")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}
	if execErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", execErr.ExitCode)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Run() error = %v, want exec.ErrNotFound", err)
	}
}

func TestRevisionReader_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	_, err := RevisionReader{Dir: t.TempDir()}.Read(context.Background())
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Read() error = %v, want *ExecError", err)
	}
	if execErr.ExitCode <= 0 {
		t.Errorf("ExitCode = %d, want non-zero", execErr.ExitCode)
	}
}

func TestExecError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExecError
		want string
	}{
		{
			name: "with stderr",
			err:  &ExecError{Command: "git rev-parse HEAD", ExitCode: 128, Stderr: []byte("fatal: not a git repository\n")},
			want: `command "git rev-parse HEAD" failed with exit code 128: fatal: not a git repository`,
		},
		{
			name: "never started",
			err:  &ExecError{Command: "git rev-parse HEAD", ExitCode: -1, Err: exec.ErrNotFound},
			want: `command "git rev-parse HEAD" failed: executable file not found in $PATH`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
