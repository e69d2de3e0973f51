// Package noopcodec passes plain-text archives through unchanged.
package noopcodec

import (
	"io"

	"github.com/discochess/chessrules/internal/codec"
)

var _ codec.Codec = (*Codec)(nil)

// Codec reads and writes uncompressed data.
type Codec struct{}

// New returns a pass-through codec.
func New() *Codec {
	return &Codec{}
}

// Reader returns r as a ReadCloser. Closing it does not close r.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// Writer returns w as a WriteCloser. Closing it does not close w.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// Extension returns "".
func (c *Codec) Extension() string {
	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
