package chess

// Piece is an immutable kind and colour pair. The zero value is a vacant cell.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the occupant of a vacant cell.
var NoPiece = Piece{}

// NewPiece creates a piece of the given kind and colour.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether p denotes a vacant cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String returns e.g. "White Knight", or "Empty" for a vacant cell.
func (p Piece) String() string {
	if p.IsEmpty() {
		return Empty.String()
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter |= 0x20
	}
	return letter
}

var (
	whiteGlyphs = [NumKinds]string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	blackGlyphs = [NumKinds]string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
)

// Glyph returns the Unicode chess symbol for the piece, or "" when vacant.
func (p Piece) Glyph() string {
	if p.Kind < 0 || p.Kind >= NumKinds {
		return ""
	}
	if p.Colour == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}
