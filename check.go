package chessrules

// Status summarizes the position from one color's point of view.
type Status uint8

const (
	StatusNormal Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

var statusNames = [...]string{"normal", "check", "checkmate", "stalemate"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "invalid"
}

// Terminal reports whether no further move is possible.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// IsInCheck reports whether c's king is attacked. A board without a king of
// color c is never in check.
func (b *Board) IsInCheck(c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return b.attacked(king, c.Opponent())
}

// IsCheckmate reports whether c is in check and has no move that escapes it.
func (b *Board) IsCheckmate(c Color) bool {
	return b.IsInCheck(c) && !b.hasLegalMove(c)
}

// IsStalemate reports whether c is not in check but has no legal move.
func (b *Board) IsStalemate(c Color) bool {
	return !b.IsInCheck(c) && !b.hasLegalMove(c)
}

// Status classifies the position for c.
func (b *Board) Status(c Color) Status {
	inCheck := b.IsInCheck(c)
	canMove := b.hasLegalMove(c)
	switch {
	case inCheck && !canMove:
		return StatusCheckmate
	case inCheck:
		return StatusCheck
	case !canMove:
		return StatusStalemate
	default:
		return StatusNormal
	}
}

// hasLegalMove tries every (own piece, destination) pair. IsValidMove already
// rejects moves that leave the king in check.
func (b *Board) hasLegalMove(c Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.grid[row][col]
			if piece.IsEmpty() || piece.Color != c {
				continue
			}
			from := Square{Row: row, Col: col}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					to := Square{Row: toRow, Col: toCol}
					if b.IsValidMove(piece, from, to, b.grid[toRow][toCol]) {
						return true
					}
				}
			}
		}
	}
	return false
}

// attacked reports whether any piece of color by attacks sq.
// Attacks ignore the attacker's own king safety.
func (b *Board) attacked(sq Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.grid[row][col]
			if piece.IsEmpty() || piece.Color != by {
				continue
			}
			if b.attacks(piece, Square{Row: row, Col: col}, sq) {
				return true
			}
		}
	}
	return false
}

// attacks is the capture pattern of piece. Unlike shapeAllows it treats the
// destination as occupied, so pawns attack diagonally and kings never castle.
func (b *Board) attacks(piece Piece, from, to Square) bool {
	if from == to {
		return false
	}
	switch piece.Kind {
	case Pawn:
		return to.Row-from.Row == piece.Color.forward() && abs(to.Col-from.Col) == 1
	case Knight:
		return knightShape(from, to)
	case Bishop:
		return diagonalShape(from, to) && b.pathClear(from, to)
	case Rook:
		return straightShape(from, to) && b.pathClear(from, to)
	case Queen:
		return (diagonalShape(from, to) || straightShape(from, to)) && b.pathClear(from, to)
	case King:
		return kingShape(from, to)
	default:
		return false
	}
}
