package board

import "fmt"

// CookieID is the stable identity of a cookie. Zero means "no cookie".
type CookieID uint32

// Cookie is a placed piece. Column and Row change on swaps and gravity;
// ID and Type never change.
type Cookie struct {
	ID     CookieID
	Column int
	Row    int
	Type   PieceType
}

func (c Cookie) String() string {
	return fmt.Sprintf("%s#%d(%d,%d)", c.Type, c.ID, c.Column, c.Row)
}

// Swap is an unordered pair of cookies. The pair is stored in canonical
// order, so NewSwap(a, b) == NewSwap(b, a) and a Swap can be used as a map key.
type Swap struct {
	A CookieID
	B CookieID
}

// NewSwap creates the canonical swap between two cookies.
func NewSwap(a, b CookieID) Swap {
	if b < a {
		a, b = b, a
	}
	return Swap{A: a, B: b}
}

// Key packs the pair into a single integer for integer-keyed sets.
func (s Swap) Key() uint64 {
	return uint64(s.A)<<32 | uint64(s.B)
}

func (s Swap) String() string {
	return fmt.Sprintf("swap(#%d,#%d)", s.A, s.B)
}
