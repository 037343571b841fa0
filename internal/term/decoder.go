package term

import (
	"errors"

	"github.com/reiver/go-utf8s"
)

// ErrEOF is returned by Decoder.ReadKey when the underlying source is
// closed (spec §7 "EOF on input").
var ErrEOF = errors.New("term: end of input")

// Decoder is the KeystrokeDecoder of spec §4.2: it turns the raw byte
// stream into logical key codes (here, Unicode code points decoded
// with go-utf8s — the "configured encoding") and exposes the
// non-blocking peek the Controller needs to disambiguate a lone ESC.
type Decoder struct {
	reader *NonBlockingReader
}

// NewDecoder wraps reader.
func NewDecoder(reader *NonBlockingReader) *Decoder {
	return &Decoder{reader: reader}
}

// ReadKey decodes and returns the next code point, or ErrEOF.
// Implements internal/core.Reader.
func (d *Decoder) ReadKey() (rune, error) {
	return d.readRune()
}

func (d *Decoder) readRune() (rune, error) {
	first, err := d.reader.Read()
	if err != nil {
		return 0, err
	}

	if first == -1 {
		return 0, ErrEOF
	}

	b0 := byte(first)
	n := utf8s.RuneLen(b0)

	if n <= 1 {
		return rune(b0), nil
	}

	buf := make([]byte, n)
	buf[0] = b0

	for i := 1; i < n; i++ {
		next, err := d.reader.Read()
		if err != nil {
			return 0, err
		}

		if next == -1 {
			return rune(b0), nil
		}

		buf[i] = byte(next)
	}

	r, size := utf8s.DecodeRune(buf)
	if size == 0 {
		return rune(b0), nil
	}

	return r, nil
}

// PeekTimeout peeks the next raw byte (spec §4.4 step 4). Multi-byte
// sequences are peeked one byte at a time by the Controller, which
// only ever peeks immediately after a lone ESC — a single-byte key —
// so peeking at the byte level rather than the code-point level is
// sufficient here.
func (d *Decoder) PeekTimeout(timeoutMs int) (rune, bool) {
	b, ok := d.reader.PeekTimeout(timeoutMs)
	if !ok {
		return 0, false
	}

	return rune(b), true
}

// NonBlockingEnabled implements internal/core.Reader.
func (d *Decoder) NonBlockingEnabled() bool {
	return d.reader.IsNonBlockingEnabled()
}
