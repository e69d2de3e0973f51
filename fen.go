package chessrules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/discochess/chessrules/internal/fen"
)

// ErrInvalidPosition indicates a FEN string that does not describe a playable position.
var ErrInvalidPosition = errors.New("chessrules: invalid position")

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// FromFEN builds a board from a FEN string and returns it with the side to move.
// Each color must have exactly one king.
func FromFEN(s string) (*Board, Color, error) {
	rec, err := fen.Parse(s)
	if err != nil {
		return nil, NoColor, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	mat, err := fen.ParseMaterial(s)
	if err != nil {
		return nil, NoColor, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	if mat.WhiteKings != 1 || mat.BlackKings != 1 {
		return nil, NoColor, fmt.Errorf("%w: need exactly one king per side", ErrInvalidPosition)
	}

	b := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			ch := rec.Grid[row][col]
			if ch == 0 {
				continue
			}
			p, _ := pieceFromLetter(ch)
			b.grid[row][col] = p
		}
	}

	b.rights[Light] = CastlingRights{
		KingSide:  strings.Contains(rec.Castling, "K"),
		QueenSide: strings.Contains(rec.Castling, "Q"),
	}
	b.rights[Dark] = CastlingRights{
		KingSide:  strings.Contains(rec.Castling, "k"),
		QueenSide: strings.Contains(rec.Castling, "q"),
	}

	if rec.EnPassant != "-" {
		sq, err := ParseSquare(rec.EnPassant)
		if err != nil {
			return nil, NoColor, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
		}
		b.enPassant, b.hasEnPassant = sq, true
	}

	side := Light
	if rec.Side == "b" {
		side = Dark
	}
	return b, side, nil
}

// FEN encodes b with the given side to move as a four-field FEN string.
func (b *Board) FEN(side Color) string {
	var rec fen.Record
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; !p.IsEmpty() {
				rec.Grid[row][col] = p.letter()
			}
		}
	}

	rec.Side = "w"
	if side == Dark {
		rec.Side = "b"
	}

	var castling strings.Builder
	if b.rights[Light].KingSide {
		castling.WriteByte('K')
	}
	if b.rights[Light].QueenSide {
		castling.WriteByte('Q')
	}
	if b.rights[Dark].KingSide {
		castling.WriteByte('k')
	}
	if b.rights[Dark].QueenSide {
		castling.WriteByte('q')
	}
	rec.Castling = castling.String()

	if b.hasEnPassant {
		rec.EnPassant = b.enPassant.String()
	}
	return fen.Format(rec)
}

// key identifies the position independent of the side to move.
func (b *Board) key() string {
	return b.FEN(NoColor)
}
