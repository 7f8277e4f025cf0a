// Package console reads visitor names from an interactive input stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/treehouse/internal/visitor"
)

// ErrReadLine is wrapped by every error ReadName returns. Callers treat it
// as fatal.
var ErrReadLine = errors.New("failed to readline")

// Reader reads one name per line.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps in for line-oriented reading.
func NewReader(in io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(in)}
}

// ReadName blocks until a full line is available and returns it normalized.
// Reaching the end of the stream behaves like an empty line.
func (c *Reader) ReadName() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrReadLine, err)
	}
	return visitor.Normalize(line), nil
}
