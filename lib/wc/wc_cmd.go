package wc

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usageHeader = `Usage: wc [OPTION]... [FILE]...

Print newline, word, and byte counts for each FILE, and a total line if
more than one FILE is specified.  A word is a non-zero-length sequence of
printable characters delimited by white space.

With no FILE, read standard input.

The options below may be used to select which counts are printed, always in
the following order: newline, word, character, byte.
`

// Env is the outside world as seen by Run.
type Env struct {
	Stdin           io.Reader
	StdinIsTerminal bool
	Stdout, Stderr  io.Writer

	// Open defaults to lib.OpenFile.
	Open func(filename string) (io.ReadCloser, error)
	Log  *zap.Logger
}

// Usage writes the help text to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageHeader)
	fmt.Fprint(w, NewFlagSet().FlagUsages())
}

// Run is the whole wc program. Errors have already been reported when they
// are returned; the caller only has to pick the exit status.
func Run(args []string, env Env) error {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	req, err := Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		Usage(env.Stdout)
		return nil
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "wc: %v\n", err)
		var invalid *InvalidOptionError
		if errors.As(err, &invalid) {
			fmt.Fprintln(env.Stderr, "Try 'wc --help' for more information.")
		}
		return err
	}
	log.Debug("parsed", zap.Stringer("metrics", req.Metrics), zap.Strings("files", req.Files))

	counter := Counter{
		Metrics:         req.Metrics,
		Stdin:           env.Stdin,
		StdinIsTerminal: env.StdinIsTerminal,
		Open:            env.Open,
		Log:             log,
	}
	results, err := counter.Count(req.Files)
	if err != nil {
		log.Error("unable to read file", zap.Error(err))
		return err
	}
	return NewResultsSet(results).Fprint(env.Stdout, req.Metrics)
}
