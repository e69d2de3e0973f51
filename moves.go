package chessrules

// IsValidMove reports whether piece may move from one square to another.
// target is the content of the destination as observed before the move.
//
// The check has no side effects on b: the king-safety test runs on a clone.
// Off-board squares and an empty piece are rejected.
func (b *Board) IsValidMove(piece Piece, from, to Square, target Piece) bool {
	if piece.IsEmpty() || !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if !target.IsEmpty() && target.Color == piece.Color {
		return false
	}
	if !b.shapeAllows(piece, from, to, target) {
		return false
	}

	sim := b.Clone()
	sim.commit(piece, from, to, target)
	return !sim.IsInCheck(piece.Color)
}

// IsLegal is IsValidMove with the moving piece and target read from b.
func (b *Board) IsLegal(from, to Square) bool {
	return b.IsValidMove(b.At(from), from, to, b.At(to))
}

// shapeAllows applies the movement rule of piece's kind.
func (b *Board) shapeAllows(piece Piece, from, to Square, target Piece) bool {
	switch piece.Kind {
	case Pawn:
		return b.pawnAllows(piece.Color, from, to, target)
	case Knight:
		return knightShape(from, to)
	case Bishop:
		return diagonalShape(from, to) && b.pathClear(from, to)
	case Rook:
		return straightShape(from, to) && b.pathClear(from, to)
	case Queen:
		return (diagonalShape(from, to) || straightShape(from, to)) && b.pathClear(from, to)
	case King:
		if kingShape(from, to) {
			return true
		}
		return b.castleAllows(piece.Color, from, to)
	default:
		return false
	}
}

func (b *Board) pawnAllows(c Color, from, to Square, target Piece) bool {
	dir := c.forward()
	dr, dc := to.Row-from.Row, to.Col-from.Col

	switch {
	case dc == 0 && target.IsEmpty():
		if dr == dir {
			return true
		}
		return dr == 2*dir && from.Row == c.pawnRow() &&
			b.grid[from.Row+dir][from.Col].IsEmpty()
	case abs(dc) == 1 && dr == dir:
		if !target.IsEmpty() {
			return true
		}
		return b.hasEnPassant && to == b.enPassant &&
			b.grid[from.Row][to.Col] == Piece{Kind: Pawn, Color: c.Opponent()}
	default:
		return false
	}
}

// castleAllows checks the two-square king move. The king may not castle out
// of, through, or into check; the last case is left to the king-safety test.
func (b *Board) castleAllows(c Color, from, to Square) bool {
	home := c.homeRow()
	if from != (Square{Row: home, Col: 4}) || to.Row != home || abs(to.Col-from.Col) != 2 {
		return false
	}

	rights := b.rights[c]
	var rookCol, transitCol int
	switch to.Col {
	case 6:
		if !rights.KingSide {
			return false
		}
		rookCol, transitCol = 7, 5
	case 2:
		if !rights.QueenSide {
			return false
		}
		rookCol, transitCol = 0, 3
	default:
		return false
	}

	rook := Square{Row: home, Col: rookCol}
	if b.At(rook) != (Piece{Kind: Rook, Color: c}) || !b.pathClear(from, rook) {
		return false
	}
	enemy := c.Opponent()
	return !b.attacked(from, enemy) && !b.attacked(Square{Row: home, Col: transitCol}, enemy)
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func (b *Board) pathClear(from, to Square) bool {
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for r, c := from.Row+dr, from.Col+dc; r != to.Row || c != to.Col; r, c = r+dr, c+dc {
		if !b.grid[r][c].IsEmpty() {
			return false
		}
	}
	return true
}

func knightShape(from, to Square) bool {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

func diagonalShape(from, to Square) bool {
	dr := abs(to.Row - from.Row)
	return dr > 0 && dr == abs(to.Col-from.Col)
}

func straightShape(from, to Square) bool {
	return (from.Row == to.Row) != (from.Col == to.Col)
}

func kingShape(from, to Square) bool {
	return from != to && abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
}
