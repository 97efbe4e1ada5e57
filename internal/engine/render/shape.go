package render

import (
	"math"

	"github.com/fogleman/gg"
)

// applyShapeClip restricts drawing to the selected shape within the square
// region at (x, y). Callers must pair it with dc.ResetClip() once the symbol
// has been drawn so frames, logo and caption are unaffected.
func applyShapeClip(dc *gg.Context, shape Shape, x, y, size float64) {
	switch shape {
	case ShapeRounded:
		dc.DrawRoundedRectangle(x, y, size, size, size*0.1)
	case ShapeCircle:
		dc.DrawCircle(x+size/2, y+size/2, size/2)
	case ShapeHexagon:
		// Regular hexagon, circumradius size/2, vertex 0 at angle 0.
		cx, cy, r := x+size/2, y+size/2, size/2
		dc.NewSubPath()
		dc.MoveTo(cx+r, cy)
		for i := 1; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			dc.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
		}
		dc.ClosePath()
	default:
		dc.DrawRectangle(x, y, size, size)
	}
	dc.Clip()
}
