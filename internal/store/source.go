package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"textseal/internal/domain"
)

// StdinMarker is the source name that selects standard input.
const StdinMarker = "-"

// ErrIO wraps every read or write failure surfaced by this package.
var ErrIO = errors.New("i/o error")

// Source resolves input names to their full contents.
type Source struct {
	stdin io.Reader
}

// NewSource returns a Source that reads StdinMarker from stdin. A nil stdin
// selects os.Stdin.
func NewSource(stdin io.Reader) *Source {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Source{stdin: stdin}
}

// Read returns the entire contents of name, which is either StdinMarker or
// a file path. The bytes are returned uninterpreted.
func (s *Source) Read(name string) ([]byte, error) {
	if name == StdinMarker {
		b, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: read stdin: %w", ErrIO, err)
		}
		return b, nil
	}
	return readFile(name)
}

// Compile-time assertion that Source implements domain.InputSource.
var _ domain.InputSource = (*Source)(nil)
