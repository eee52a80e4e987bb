package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
	"go.uber.org/zap"
)

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}

	cmd := newRootCommand(opts)
	cmd.SetArgs(protectValues(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if opts.Logger != nil {
		opts.Logger.Debug("command failed", zap.Error(oops.Trace(err)))
	}

	format := opts.Config.Format
	if format == "" {
		format = opts.Format
	}

	f := &OutputFormatter{
		Format:    format,
		Writer:    stdout,
		ErrWriter: stderr,
	}

	werr := f.Error(err)
	if werr != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
	}

	return ExitFailure
}

// protectValues inserts "--" before the first argument that reads as a
// negative number or a CSD string starting with '-', so flag parsing does
// not claim it. Flags must precede such a value.
func protectValues(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}

		if isValueArg(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")

			return append(out, args[i:]...)
		}
	}

	return args
}

func isValueArg(a string) bool {
	if len(a) < 2 || a[0] != '-' || a[1] == '-' {
		return false
	}

	_, err := strconv.ParseFloat(a, 64)
	if err == nil {
		return true
	}

	return strings.Trim(a, "+-0.") == ""
}
