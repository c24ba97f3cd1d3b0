package tui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/cookie-crunch/internal/core"
)

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawBox(core.NewRect(0, 0, 8, 3), core.ColorGray)
	s.SetColor(2, 1, 'c', core.ColorBrown)
	s.SetColor(3, 1, 'u', core.ColorPink)
	s.SetColor(4, 1, '?', core.Color(200))

	assert.Equal(t, s.String(), sgr.ReplaceAllString(renderScreen(s), ""))
}

func TestStyleForUnknownColourIsPlain(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
	assert.Equal(t, len(palette), len(cellStyles))
}
