package chessrules

// CastlingRights holds the per-side castling eligibility of one color.
// Rights only ever go from true to false.
type CastlingRights struct {
	KingSide  bool
	QueenSide bool
}

// Board is a position: the grid, castling rights and the en-passant target.
// It carries no side to move; callers pass the mover explicitly.
//
// A Board is not safe for concurrent mutation. Use one Board per game, or
// Clone before handing a position to another goroutine.
type Board struct {
	grid   [8][8]Piece
	rights [3]CastlingRights // indexed by Color

	enPassant    Square
	hasEnPassant bool
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns the standard starting position with all castling
// rights set and no en-passant target.
func NewStandardBoard() *Board {
	b := &Board{}
	for col, kind := range backRank {
		b.grid[0][col] = Piece{Kind: kind, Color: Dark}
		b.grid[1][col] = Piece{Kind: Pawn, Color: Dark}
		b.grid[6][col] = Piece{Kind: Pawn, Color: Light}
		b.grid[7][col] = Piece{Kind: kind, Color: Light}
	}
	b.rights[Light] = CastlingRights{KingSide: true, QueenSide: true}
	b.rights[Dark] = CastlingRights{KingSide: true, QueenSide: true}
	return b
}

// Clone returns a deep copy of b. The copy shares nothing with b.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// At returns the content of sq, or NoPiece if sq is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.grid[sq.Row][sq.Col]
}

// CastlingRights returns the remaining castling rights of c.
func (b *Board) CastlingRights(c Color) CastlingRights {
	if c != Light && c != Dark {
		return CastlingRights{}
	}
	return b.rights[c]
}

// EnPassantTarget returns the square a pawn passed over on the previous
// two-square advance, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.enPassant, b.hasEnPassant
}

// FindKing returns the square of c's king.
func (b *Board) FindKing(c Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p.Kind == King && p.Color == c {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

func (b *Board) set(sq Square, p Piece) {
	b.grid[sq.Row][sq.Col] = p
}

// Equal reports whether a and b describe the same position.
func (b *Board) Equal(o *Board) bool {
	return *b == *o
}
