package chessrules

// MovePiece validates the move of the piece on from and, if legal, applies
// it. It returns false and leaves b untouched when the move is rejected,
// including when from is empty or either square is off the board.
//
// This is the only operation that changes a Board.
func (b *Board) MovePiece(from, to Square) bool {
	piece, target := b.At(from), b.At(to)
	if !b.IsValidMove(piece, from, to, target) {
		return false
	}
	b.commit(piece, from, to, target)
	return true
}

// commit performs the state transition of an already validated move.
// target is the content of to before the move.
func (b *Board) commit(piece Piece, from, to Square, target Piece) {
	dr, dc := to.Row-from.Row, to.Col-from.Col

	// En-passant bookkeeping: the target lives for exactly one reply.
	b.enPassant, b.hasEnPassant = Square{}, false
	if piece.Kind == Pawn && abs(dr) == 2 {
		b.enPassant, b.hasEnPassant = Square{Row: from.Row + dr/2, Col: from.Col}, true
	}

	if piece.Kind == Pawn && dc != 0 && target.IsEmpty() {
		b.set(Square{Row: from.Row, Col: to.Col}, NoPiece)
	}

	placed := piece
	if piece.Kind == Pawn && (to.Row == 0 || to.Row == 7) {
		placed = Piece{Kind: Queen, Color: piece.Color}
	}
	b.set(to, placed)
	b.set(from, NoPiece)

	if piece.Kind == King && dr == 0 && abs(dc) == 2 {
		rookFrom, rookTo := Square{Row: from.Row, Col: 7}, Square{Row: from.Row, Col: 5}
		if dc < 0 {
			rookFrom, rookTo = Square{Row: from.Row, Col: 0}, Square{Row: from.Row, Col: 3}
		}
		b.set(rookTo, b.At(rookFrom))
		b.set(rookFrom, NoPiece)
	}

	if piece.Kind == King {
		b.rights[piece.Color] = CastlingRights{}
	}
	b.revokeRookSquare(from)
	b.revokeRookSquare(to)
}

// revokeRookSquare clears the castling right tied to a rook home square once
// anything moves off or onto it. Rights are keyed by square, not by piece.
func (b *Board) revokeRookSquare(sq Square) {
	switch sq {
	case Square{Row: 0, Col: 0}:
		b.rights[Dark].QueenSide = false
	case Square{Row: 0, Col: 7}:
		b.rights[Dark].KingSide = false
	case Square{Row: 7, Col: 0}:
		b.rights[Light].QueenSide = false
	case Square{Row: 7, Col: 7}:
		b.rights[Light].KingSide = false
	}
}
