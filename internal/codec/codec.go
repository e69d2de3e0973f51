// Package codec decompresses game archives. PGN dumps are usually shipped
// as .pgn.zst or .pgn.gz; a Codec hides the difference from readers.
package codec

import "io"

// Codec wraps streams with a compression format.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)

	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for uncompressed data.
	Extension() string
}
