package wc

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"gitlab.com/yarbelk/slimwc/lib"
)

// Counts are the four metrics of one source. A metric that was not asked
// for stays zero.
type Counts struct {
	Lines, Words, Chars, Bytes uint
}

// Get returns the count for m.
func (c Counts) Get(m Metric) uint {
	switch m {
	case Lines:
		return c.Lines
	case Words:
		return c.Words
	case Chars:
		return c.Chars
	case Bytes:
		return c.Bytes
	default:
		return 0
	}
}

func (c Counts) Add(o Counts) Counts {
	return Counts{
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
		Chars: c.Chars + o.Chars,
		Bytes: c.Bytes + o.Bytes,
	}
}

// Result is the outcome for one source. Err is set for a failure record, in
// which case Counts is zero.
type Result struct {
	Counts

	Filename string
	Err      error
}

func (r Result) Failed() bool { return r.Err != nil }

// CountBytes computes the metrics in metrics over content, which must be
// valid UTF-8.
func CountBytes(content []byte, metrics MetricSet) Counts {
	var c Counts
	if metrics.Has(Bytes) {
		c.Bytes = uint(len(content))
	}
	if metrics.Has(Chars) {
		c.Chars = uint(utf8.RuneCount(content))
	}
	if metrics.Has(Lines) {
		c.Lines = countLines(content)
	}
	if metrics.Has(Words) {
		c.Words = countWords(content)
	}
	return c
}

// countLines counts newline separated segments; a final newline does not
// start another one.
func countLines(content []byte) uint {
	n := uint(bytes.Count(content, []byte{'\n'}))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		n++
	}
	return n
}

func countWords(content []byte) (words uint) {
	var inWord uint
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		content = content[size:]
		if unicode.IsSpace(r) {
			words += inWord
			inWord = 0
			continue
		}
		inWord = 1
	}
	return words + inWord
}

// Counter counts sources one after another.
type Counter struct {
	Metrics MetricSet

	// Stdin is read when there are no files, unless StdinIsTerminal.
	Stdin           io.Reader
	StdinIsTerminal bool

	// Open defaults to lib.OpenFile.
	Open func(filename string) (io.ReadCloser, error)
	Log  *zap.Logger
}

// Count returns one Result per source, in order. A file that cannot be
// opened gives a failure Result and counting goes on; a source that cannot
// be read gives a *ReadError and no results at all.
func (c Counter) Count(files []string) ([]Result, error) {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	open := c.Open
	if open == nil {
		open = lib.OpenFile
	}

	if len(files) == 0 {
		if c.StdinIsTerminal || c.Stdin == nil {
			log.Debug("no files and stdin is a terminal, nothing to count")
			return nil, nil
		}
		content, err := lib.ReadText(c.Stdin)
		if err != nil {
			return nil, &ReadError{Err: err}
		}
		log.Debug("counted", zap.String("file", "-"), zap.Int("size", len(content)))
		return []Result{{Counts: CountBytes(content, c.Metrics)}}, nil
	}

	results := make([]Result, 0, len(files))
	for _, filename := range files {
		in, err := open(filename)
		if err != nil {
			log.Debug("open failed", zap.String("file", filename), zap.Error(err))
			results = append(results, Result{
				Filename: filename,
				Err:      &OpenError{Filename: filename, Err: err},
			})
			continue
		}
		content, err := lib.ReadText(in)
		in.Close()
		if err != nil {
			return nil, &ReadError{Filename: filename, Err: err}
		}
		log.Debug("counted", zap.String("file", filename), zap.Int("size", len(content)))
		results = append(results, Result{Filename: filename, Counts: CountBytes(content, c.Metrics)})
	}
	return results, nil
}
