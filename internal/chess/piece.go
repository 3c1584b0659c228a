// Package chess provides the core position model: pieces, squares,
// coordinate validation, moves, and board diagrams.
package chess

// Side identifies a player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the side name.
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Kind identifies a piece type. The zero value NoKind marks an empty
// square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Piece is a coloured piece occupying a square. The zero value is the
// empty square.
type Piece struct {
	Kind Kind
	Side Side
}

// IsEmpty reports whether the piece is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// kindLetters maps Kind to its upper-case FEN letter.
var kindLetters = []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the FEN letter for the piece: upper case for White,
// lower case for Black, '.' for the empty square.
func (p Piece) Letter() byte {
	if int(p.Kind) >= len(kindLetters) {
		return '?'
	}
	letter := kindLetters[p.Kind]
	if p.Kind != NoKind && p.Side == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter decodes a FEN piece letter, upper case for White and
// lower case for Black. The second return is false for any other byte.
func PieceFromLetter(letter byte) (Piece, bool) {
	side := White
	if letter >= 'a' && letter <= 'z' {
		side = Black
		letter -= 'a' - 'A'
	}
	for kind, l := range kindLetters {
		if kind != 0 && l == letter {
			return Piece{Kind: Kind(kind), Side: side}, true
		}
	}
	return Piece{}, false
}

// W returns a white piece of the given kind.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Side: White}
}

// B returns a black piece of the given kind.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Side: Black}
}
