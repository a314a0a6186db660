package chess

// Board is the 8x8 grid of occupants, indexed Squares[row][col].
// It holds no turn or history state. Board values are comparable with ==
// and copied by plain assignment.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the left-to-right order of each side's back rank.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a board with the given layout.
func NewBoard(layout Layout) *Board {
	b := &Board{}
	if layout == LayoutStandard {
		b.SetupStandardPosition()
	}
	return b
}

// SetupStandardPosition sets up the standard chess starting position:
// Black on rows 0 and 1, White on rows 6 and 7.
func (b *Board) SetupStandardPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// At returns the occupant of sq, NoPiece when vacant.
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq.Row()][sq.Col()]
}

// Occupied reports whether sq holds a piece.
func (b *Board) Occupied(sq Square) bool {
	return !b.At(sq).IsEmpty()
}

// Set places a piece at sq, replacing any occupant.
func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq.Row()][sq.Col()] = p
}

// Remove vacates sq and returns its previous occupant.
func (b *Board) Remove(sq Square) Piece {
	p := b.At(sq)
	b.Squares[sq.Row()][sq.Col()] = NoPiece
	return p
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards have identical occupancy.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// Placement pairs an occupied square with its piece.
type Placement struct {
	Square Square
	Piece  Piece
}

// Pieces returns every occupied square in ascending square order.
func (b *Board) Pieces() []Placement {
	var out []Placement
	for _, sq := range AllSquares() {
		if p := b.At(sq); !p.IsEmpty() {
			out = append(out, Placement{Square: sq, Piece: p})
		}
	}
	return out
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for _, pl := range b.Pieces() {
		if pl.Piece.Colour == colour {
			n++
		}
	}
	return n
}
