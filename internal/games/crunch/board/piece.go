// Package board implements the authoritative board state of Cookie Crunch:
// the tile mask, the cookie store, match detection, legal swap validation,
// board generation and the gravity/refill cascade.
//
// The package is pure game logic. It does not render, animate, time or
// persist anything, and it never decides whether a level is won or lost.
// A Board is not safe for concurrent use; callers must not submit a new swap
// while the cascade of a previous one is still being applied.
package board

// PieceType is the kind of a cookie.
type PieceType uint8

const (
	// Unknown is a sentinel used as a refill lookback seed. It is never
	// assigned to a placed cookie.
	Unknown PieceType = iota
	Croissant
	Cupcake
	Danish
	Donut
	Macaroon
	SugarCookie
)

// NumPieceTypes is the number of real (non-sentinel) piece types.
const NumPieceTypes = 6

var pieceNames = [...]string{
	Unknown:     "unknown",
	Croissant:   "croissant",
	Cupcake:     "cupcake",
	Danish:      "danish",
	Donut:       "donut",
	Macaroon:    "macaroon",
	SugarCookie: "sugar_cookie",
}

var pieceGlyphs = [...]rune{
	Unknown:     '?',
	Croissant:   'c',
	Cupcake:     'u',
	Danish:      'd',
	Donut:       'o',
	Macaroon:    'm',
	SugarCookie: 's',
}

// String returns the lowercase name of the piece type.
func (t PieceType) String() string {
	if int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return "unknown"
}

// Glyph returns the single-character representation used in text layouts.
func (t PieceType) Glyph() rune {
	if int(t) < len(pieceGlyphs) {
		return pieceGlyphs[t]
	}
	return '?'
}

// Valid reports whether t is a real piece type (not the sentinel).
func (t PieceType) Valid() bool {
	return t >= Croissant && t <= SugarCookie
}

// ParsePieceType converts a layout glyph back into a piece type.
func ParsePieceType(r rune) (PieceType, bool) {
	for t, g := range pieceGlyphs {
		if g == r && PieceType(t).Valid() {
			return PieceType(t), true
		}
	}
	return Unknown, false
}
