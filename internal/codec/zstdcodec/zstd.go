// Package zstdcodec reads and writes zstd archives, the format used for
// the Lichess game database dumps.
package zstdcodec

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/discochess/chessrules/internal/codec"
)

var _ codec.Codec = (*Codec)(nil)

// maxWindow bounds decoder memory. Lichess dumps use 128 MiB windows.
const maxWindow = 1 << 28

// Codec implements zstd compression.
type Codec struct{}

// New returns a zstd codec.
func New() *Codec {
	return &Codec{}
}

// Reader wraps r to decompress zstd data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxWindow(maxWindow),
	)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Writer wraps w to compress data with zstd.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

// Extension returns "zst".
func (c *Codec) Extension() string {
	return "zst"
}
