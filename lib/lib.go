package lib

import (
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// OpenFile opens filename for reading. Unlike the usual coreutils
// convention, "-" is not special here: it is just a name.
func OpenFile(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

// IsTerminal reports whether in is a file attached to an interactive terminal.
// Anything that is not an *os.File (pipes in tests, buffers) is not a terminal.
func IsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadText reads all of in, failing with encoding.ErrInvalidUTF8 on the first
// byte that is not valid UTF-8.
func ReadText(in io.Reader) ([]byte, error) {
	return io.ReadAll(transform.NewReader(in, encoding.UTF8Validator))
}
