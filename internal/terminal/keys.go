package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// CtrlC is the byte a raw-mode terminal delivers for Ctrl-C.
const CtrlC rune = 0x03

// KeyReader reads single key presses from a raw-mode input stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader returns a KeyReader over in.
func NewKeyReader(in io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(in)}
}

// ReadKey blocks until a key is available. Multi-byte UTF-8 input is
// returned as one rune. io.EOF is returned unwrapped.
func (k *KeyReader) ReadKey() (rune, error) {
	r, _, err := k.r.ReadRune()
	if err == io.EOF {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	return r, nil
}
