package chessrules

// Color identifies a side. The zero value is NoColor.
type Color uint8

const (
	NoColor Color = iota
	Light
	Dark
)

// Opponent returns the other side. NoColor has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return NoColor
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "none"
	}
}

// forward is the row delta of a pawn advance.
func (c Color) forward() int {
	if c == Light {
		return -1
	}
	return 1
}

// homeRow is the back rank of c.
func (c Color) homeRow() int {
	if c == Light {
		return 7
	}
	return 0
}

// pawnRow is the rank pawns of c start on.
func (c Color) pawnRow() int {
	if c == Light {
		return 6
	}
	return 1
}

// Kind is a piece type. The zero value is NoKind and marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Piece is the content of a square. NoPiece is an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// IsEmpty reports whether p denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// String returns e.g. "light knight", or "empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Kind.String()
}

// fenLetters maps a kind to its FEN letter for the light side.
var fenLetters = [...]byte{NoKind: 0, Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'}

// letter returns the FEN letter of p: upper case for light, lower case for dark.
func (p Piece) letter() byte {
	ch := fenLetters[p.Kind]
	if p.Color == Dark {
		ch += 'a' - 'A'
	}
	return ch
}

// Symbol returns the FEN letter of p, or '.' for an empty square.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return '.'
	}
	return p.letter()
}

// pieceFromLetter is the inverse of letter.
func pieceFromLetter(ch byte) (Piece, bool) {
	color := Light
	if ch >= 'a' && ch <= 'z' {
		color = Dark
		ch -= 'a' - 'A'
	}
	for k, l := range fenLetters {
		if l != 0 && l == ch {
			return Piece{Kind: Kind(k), Color: color}, true
		}
	}
	return NoPiece, false
}
