package chessrules

import (
	"errors"
	"testing"
)

func TestFromFEN_RoundTrip(t *testing.T) {
	tests := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq -",
		"8/8/8/KPp4r/8/8/8/7k w - c6",
		"4k3/8/8/8/8/8/8/4K3 b - -",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			b, side, err := FromFEN(s)
			if err != nil {
				t.Fatalf("FromFEN() error = %v", err)
			}
			if got := b.FEN(side); got != s {
				t.Errorf("FEN() = %q, want %q", got, s)
			}
		})
	}
}

func TestFromFEN_Fields(t *testing.T) {
	b, side, err := FromFEN("r3k2r/8/8/8/4Pp2/8/8/R3K2R b Qk e3 0 12")
	if err != nil {
		t.Fatalf("FromFEN() error = %v", err)
	}
	if side != Dark {
		t.Errorf("side = %s, want dark", side)
	}
	if got := b.CastlingRights(Light); got != (CastlingRights{QueenSide: true}) {
		t.Errorf("CastlingRights(light) = %+v", got)
	}
	if got := b.CastlingRights(Dark); got != (CastlingRights{KingSide: true}) {
		t.Errorf("CastlingRights(dark) = %+v", got)
	}
	if ep, ok := b.EnPassantTarget(); !ok || ep != sq("e3") {
		t.Errorf("EnPassantTarget() = %v, %v, want e3", ep, ok)
	}
	if !b.IsLegal(sq("f4"), sq("e3")) {
		t.Error("en-passant capture from FEN rejected")
	}
}

func TestFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad placement", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"},
		{"no light king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two dark kings", "k3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FromFEN(tt.fen)
			if !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("FromFEN() error = %v, want ErrInvalidPosition", err)
			}
		})
	}
}
