package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestKeyReader_ReadKey(t *testing.T) {
	kr := NewKeyReader(strings.NewReader("aé\x03q"))

	want := []rune{'a', 'é', CtrlC, 'q'}
	for i, w := range want {
		got, err := kr.ReadKey()
		if err != nil {
			t.Fatalf("key %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %q, want %q", i, got, w)
		}
	}

	if _, err := kr.ReadKey(); err != io.EOF {
		t.Errorf("got error %v, want io.EOF", err)
	}
}

func TestKeyReader_WrapsErrors(t *testing.T) {
	readErr := errors.New("device gone")
	kr := NewKeyReader(errReader{err: readErr})

	if _, err := kr.ReadKey(); !errors.Is(err, readErr) {
		t.Errorf("got error %v, want wrapped %v", err, readErr)
	}
}
