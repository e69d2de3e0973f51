// Package fen provides FEN (Forsyth-Edwards Notation) parsing utilities.
package fen

import (
	"errors"
	"strings"
)

// ErrInvalidFEN indicates the FEN string is malformed.
var ErrInvalidFEN = errors.New("invalid FEN notation")

// Record is the decoded form of the first four FEN fields.
type Record struct {
	// Grid holds one FEN letter per square, 0 for empty.
	// Grid[0] is rank 8, Grid[0][0] is a8.
	Grid [8][8]byte

	// Side is "w" or "b".
	Side string

	// Castling is the castling field, "-" when no rights remain.
	Castling string

	// EnPassant is the en-passant square name, "-" when absent.
	EnPassant string
}

// Material represents the piece counts for both sides.
type Material struct {
	WhitePawns   int
	WhiteKnights int
	WhiteBishops int
	WhiteRooks   int
	WhiteQueens  int
	WhiteKings   int

	BlackPawns   int
	BlackKnights int
	BlackBishops int
	BlackRooks   int
	BlackQueens  int
	BlackKings   int
}

// Parse decodes a FEN string. The halfmove clock and fullmove number are
// optional and ignored.
func Parse(fen string) (Record, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return Record{}, ErrInvalidFEN
	}

	var rec Record
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Record{}, ErrInvalidFEN
	}
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			case isPieceLetter(ch):
				if col >= 8 {
					return Record{}, ErrInvalidFEN
				}
				rec.Grid[row][col] = ch
				col++
			default:
				return Record{}, ErrInvalidFEN
			}
		}
		if col != 8 {
			return Record{}, ErrInvalidFEN
		}
	}

	if parts[1] != "w" && parts[1] != "b" {
		return Record{}, ErrInvalidFEN
	}
	rec.Side = parts[1]

	if !isValidCastling(parts[2]) {
		return Record{}, ErrInvalidFEN
	}
	rec.Castling = parts[2]

	if !isValidEnPassant(parts[3]) {
		return Record{}, ErrInvalidFEN
	}
	rec.EnPassant = parts[3]

	return rec, nil
}

// Format encodes rec as a four-field FEN string.
func Format(rec Record) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < 8; col++ {
			ch := rec.Grid[row][col]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(orDash(rec.Side))
	sb.WriteByte(' ')
	sb.WriteString(orDash(rec.Castling))
	sb.WriteByte(' ')
	sb.WriteString(orDash(rec.EnPassant))
	return sb.String()
}

// Normalize returns a normalized FEN string suitable for lookups.
// It extracts only the position, side to move, castling rights, and en passant square,
// ignoring the halfmove clock and fullmove number.
func Normalize(fen string) (string, error) {
	rec, err := Parse(fen)
	if err != nil {
		return "", err
	}
	return Format(rec), nil
}

// ParseMaterial extracts material counts from a FEN string.
func ParseMaterial(fen string) (Material, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return Material{}, ErrInvalidFEN
	}

	var m Material
	for _, ch := range parts[0] {
		switch ch {
		case 'P':
			m.WhitePawns++
		case 'N':
			m.WhiteKnights++
		case 'B':
			m.WhiteBishops++
		case 'R':
			m.WhiteRooks++
		case 'Q':
			m.WhiteQueens++
		case 'K':
			m.WhiteKings++
		case 'p':
			m.BlackPawns++
		case 'n':
			m.BlackKnights++
		case 'b':
			m.BlackBishops++
		case 'r':
			m.BlackRooks++
		case 'q':
			m.BlackQueens++
		case 'k':
			m.BlackKings++
		case '/', '1', '2', '3', '4', '5', '6', '7', '8':
			// Valid FEN characters, ignore
		default:
			return Material{}, ErrInvalidFEN
		}
	}

	return m, nil
}

// SideToMove returns "w" or "b" from a FEN string.
func SideToMove(fen string) (string, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return "", ErrInvalidFEN
	}
	if parts[1] != "w" && parts[1] != "b" {
		return "", ErrInvalidFEN
	}
	return parts[1], nil
}

func isPieceLetter(ch byte) bool {
	return strings.IndexByte("PNBRQKpnbrqk", ch) >= 0
}

// isValidCastling accepts "-" or a duplicate-free subset of "KQkq" in order.
func isValidCastling(s string) bool {
	if s == "-" {
		return true
	}
	const order = "KQkq"
	last := -1
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(order, s[i])
		if idx <= last {
			return false
		}
		last = idx
	}
	return s != ""
}

func isValidEnPassant(s string) bool {
	if s == "-" {
		return true
	}
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && (s[1] == '3' || s[1] == '6')
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
