package wc

import "fmt"

// UnrecognizedOptionError is a long option outside the vocabulary.
type UnrecognizedOptionError struct {
	Option string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option '%s'", e.Option)
}

// InvalidOptionError is a character in a short option cluster that is not a
// known shorthand.
type InvalidOptionError struct {
	Char rune
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option -- '%c'", e.Char)
}

// OpenError is recorded in a Result when a file could not be opened. Every
// cause reads the same to the user; Err keeps the real one.
type OpenError struct {
	Filename string
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("wc: %s: No such file or directory", e.Filename)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError aborts the whole run: the source was opened but could not be
// read to the end as text.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	name := e.Filename
	if name == "" {
		name = "standard input"
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
