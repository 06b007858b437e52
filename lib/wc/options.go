package wc

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

const (
	LineFlag = "lines"
	WordFlag = "words"
	CharFlag = "chars"
	ByteFlag = "bytes"
	HelpFlag = "help"
)

// Metric is one countable quantity.
type Metric uint8

const (
	Lines Metric = 1 << iota
	Words
	Chars
	Bytes
)

// order is the fixed display order, whatever order the flags were given in.
var order = [...]Metric{Lines, Words, Chars, Bytes}

// MetricSet is a selection of metrics.
type MetricSet uint8

// DefaultMetrics is used when no option token is given at all.
const DefaultMetrics = MetricSet(Lines | Words | Bytes)

func (s MetricSet) Has(m Metric) bool { return s&MetricSet(m) != 0 }

func (s MetricSet) With(m Metric) MetricSet { return s | MetricSet(m) }

func (s MetricSet) String() string {
	var names []string
	for _, m := range order {
		if s.Has(m) {
			names = append(names, m.flag())
		}
	}
	return strings.Join(names, ",")
}

func (m Metric) flag() string {
	switch m {
	case Lines:
		return LineFlag
	case Words:
		return WordFlag
	case Chars:
		return CharFlag
	case Bytes:
		return ByteFlag
	default:
		return ""
	}
}

var flagMetrics = map[string]Metric{
	LineFlag: Lines,
	WordFlag: Words,
	CharFlag: Chars,
	ByteFlag: Bytes,
}

// Request is the parsed command line. It is not modified after Parse.
type Request struct {
	Metrics MetricSet
	Files   []string
}

// NewFlagSet returns the option vocabulary. It is only used for lookups and
// for rendering the usage text; Parse never stores values in it.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wc", pflag.ContinueOnError)
	fs.BoolP(ByteFlag, "c", false, "print the byte counts")
	fs.BoolP(CharFlag, "m", false, "print the character counts")
	fs.BoolP(LineFlag, "l", false, "print the newline counts")
	fs.BoolP(WordFlag, "w", false, "print the word counts")
	fs.Bool(HelpFlag, false, "display this help and exit")
	fs.SortFlags = false
	return fs
}

// isFileOperand reports whether arg names a file. Only a bare "-" is kept
// out by length; a one-character name such as "a" is a file too.
func isFileOperand(arg string) bool {
	if arg == "-" {
		return false
	}
	return !strings.HasPrefix(arg, "-")
}

// Parse turns command line arguments into a Request. It returns
// pflag.ErrHelp when --help is reached, and an *UnrecognizedOptionError or
// *InvalidOptionError for anything outside the vocabulary. Tokens after the
// first failing option are not looked at.
func Parse(args []string) (Request, error) {
	var files, options []string
	for _, arg := range args {
		if isFileOperand(arg) {
			files = append(files, arg)
		} else {
			options = append(options, arg)
		}
	}
	if len(options) == 0 {
		return Request{Metrics: DefaultMetrics, Files: files}, nil
	}

	fs := NewFlagSet()
	var metrics MetricSet
	for _, opt := range options {
		var err error
		if strings.HasPrefix(opt, "--") {
			metrics, err = parseLong(fs, metrics, opt)
		} else {
			metrics, err = parseShorts(fs, metrics, opt)
		}
		if err != nil {
			return Request{}, err
		}
	}
	return Request{Metrics: metrics, Files: files}, nil
}

func parseLong(fs *pflag.FlagSet, metrics MetricSet, opt string) (MetricSet, error) {
	flag := fs.Lookup(strings.TrimPrefix(opt, "--"))
	if flag == nil {
		return metrics, &UnrecognizedOptionError{Option: opt}
	}
	if flag.Name == HelpFlag {
		return metrics, pflag.ErrHelp
	}
	return metrics.With(flagMetrics[flag.Name]), nil
}

// parseShorts handles a cluster like -lw. A bare "-" is an empty cluster.
func parseShorts(fs *pflag.FlagSet, metrics MetricSet, opt string) (MetricSet, error) {
	for _, c := range strings.TrimPrefix(opt, "-") {
		// ShorthandLookup panics on names longer than one byte
		if c >= utf8.RuneSelf {
			return metrics, &InvalidOptionError{Char: c}
		}
		flag := fs.ShorthandLookup(string(c))
		if flag == nil {
			return metrics, &InvalidOptionError{Char: c}
		}
		metrics = metrics.With(flagMetrics[flag.Name])
	}
	return metrics, nil
}
