package board

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ChainKind is the orientation of a run.
type ChainKind uint8

const (
	Horizontal ChainKind = iota
	Vertical
)

func (k ChainKind) String() string {
	if k == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Chain is a maximal run of three or more same-typed cookies in one row or
// column. Cookies are kept in scan order (left to right, bottom to top) and
// record the position each cookie had when the run was detected.
type Chain struct {
	Kind    ChainKind
	Cookies []Cookie
}

// Len returns the number of cookies in the chain.
func (c Chain) Len() int {
	return len(c.Cookies)
}

// Type returns the piece type shared by the chain's cookies.
func (c Chain) Type() PieceType {
	if len(c.Cookies) == 0 {
		return Unknown
	}
	return c.Cookies[0].Type
}

// IDs returns the identities of the chain's members in scan order.
func (c Chain) IDs() []CookieID {
	return lo.Map(c.Cookies, func(ck Cookie, _ int) CookieID {
		return ck.ID
	})
}

// Contains reports whether the cookie is a member of the chain.
func (c Chain) Contains(id CookieID) bool {
	return lo.ContainsBy(c.Cookies, func(ck Cookie) bool {
		return ck.ID == id
	})
}

// Key identifies the chain by kind and member identities. Two chains with the
// same members but different kinds have different keys.
func (c Chain) Key() string {
	var sb strings.Builder
	sb.WriteString(c.Kind.String())
	for _, id := range c.IDs() {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}

// DetectHorizontalRuns scans every row left to right for runs of three or
// more same-typed cookies.
func (b *Board) DetectHorizontalRuns() []Chain {
	var chains []Chain
	for row := 0; row < b.mask.rows; row++ {
		column := 0
		for column < b.mask.columns-2 {
			t := b.typeAt(column, row)
			if t != Unknown && b.typeAt(column+1, row) == t && b.typeAt(column+2, row) == t {
				chain := Chain{Kind: Horizontal}
				for column < b.mask.columns && b.typeAt(column, row) == t {
					ck, _ := b.CookieAt(column, row)
					chain.Cookies = append(chain.Cookies, ck)
					column++
				}
				chains = append(chains, chain)
				continue
			}
			column++
		}
	}
	return chains
}

// DetectVerticalRuns scans every column bottom to top for runs of three or
// more same-typed cookies.
func (b *Board) DetectVerticalRuns() []Chain {
	var chains []Chain
	for column := 0; column < b.mask.columns; column++ {
		row := 0
		for row < b.mask.rows-2 {
			t := b.typeAt(column, row)
			if t != Unknown && b.typeAt(column, row+1) == t && b.typeAt(column, row+2) == t {
				chain := Chain{Kind: Vertical}
				for row < b.mask.rows && b.typeAt(column, row) == t {
					ck, _ := b.CookieAt(column, row)
					chain.Cookies = append(chain.Cookies, ck)
					row++
				}
				chains = append(chains, chain)
				continue
			}
			row++
		}
	}
	return chains
}

// HasMatches reports whether any run currently exists on the board.
func (b *Board) HasMatches() bool {
	return len(b.DetectHorizontalRuns()) > 0 || len(b.DetectVerticalRuns()) > 0
}
