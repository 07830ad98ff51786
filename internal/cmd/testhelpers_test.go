package cmd

import (
	"bytes"
	"context"
	"strings"

	"github.com/dendrascience/dendra-utils/util"
)

type fakeRunner struct {
	out  string
	err  error
	dir  string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir = dir
	f.args = append([]string{name}, args...)
	return []byte(f.out), f.err
}

var _ util.CommandRunner = (*fakeRunner)(nil)

// execute runs the root command with args and returns what it wrote to stdout and stderr.
func execute(runner util.CommandRunner, stdin string, args ...string) (string, string, error) {
	if runner == nil {
		runner = &fakeRunner{}
	}
	root := newRootCmd(runner)
	// fang silences these in main
	root.SilenceUsage = true
	root.SilenceErrors = true
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
