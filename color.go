package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/scrollchart/chart"
)

var errorColor = color.NRGBA{R: 150, A: 255}

// newTheme builds a theme matching the chart colors, so that the controls around the
// charts blend in with them.
func newTheme(colors chart.Colors) *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	th.Palette.Bg = colors.Background
	th.Palette.Fg = colors.Axis
	th.Palette.ContrastBg = colors.BelowTarget
	th.Palette.ContrastFg = colors.Background
	return th
}
