package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/discochess/chessrules/internal/codec"
	"github.com/discochess/chessrules/internal/codec/gzipcodec"
	"github.com/discochess/chessrules/internal/codec/noopcodec"
	"github.com/discochess/chessrules/internal/codec/zstdcodec"
)

const samplePGN = `[Event "Casual"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

var codecs = []struct {
	name string
	c    codec.Codec
	ext  string
}{
	{"noop", noopcodec.New(), ""},
	{"gzip", gzipcodec.New(), "gz"},
	{"zstd", zstdcodec.New(), "zst"},
}

func roundTrip(t *testing.T, c codec.Codec, original []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	w, err := c.Writer(&compressed)
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}
	if _, err := w.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := c.Reader(&compressed)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return got
}

func TestCodecs_Extension(t *testing.T) {
	for _, tt := range codecs {
		if got := tt.c.Extension(); got != tt.ext {
			t.Errorf("%s: Extension() = %q, want %q", tt.name, got, tt.ext)
		}
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"pgn":   []byte(samplePGN),
		"large": bytes.Repeat([]byte(samplePGN), 2000),
	}
	for _, tt := range codecs {
		for name, in := range inputs {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				if got := roundTrip(t, tt.c, in); !bytes.Equal(got, in) {
					t.Errorf("round trip returned %d bytes, want %d", len(got), len(in))
				}
			})
		}
	}
}

func TestCodecs_Compresses(t *testing.T) {
	in := bytes.Repeat([]byte(samplePGN), 2000)
	for _, tt := range codecs[1:] {
		var compressed bytes.Buffer
		w, err := tt.c.Writer(&compressed)
		if err != nil {
			t.Fatalf("%s: Writer() error = %v", tt.name, err)
		}
		w.Write(in)
		w.Close()

		if compressed.Len() >= len(in) {
			t.Errorf("%s: %d bytes compressed to %d", tt.name, len(in), compressed.Len())
		}
	}
}

func TestCodecs_Reader_InvalidData(t *testing.T) {
	for _, tt := range codecs[1:] {
		r, err := tt.c.Reader(bytes.NewReader([]byte("1. e4 e5 *")))
		if err != nil {
			continue
		}
		if _, err := io.ReadAll(r); err == nil {
			t.Errorf("%s: reading plain text succeeded, want error", tt.name)
		}
		r.Close()
	}
}
