package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

const (
	// Logo occupies this fraction of the symbol's linear size.
	logoScale = 0.2
	// The backing disc extends this far beyond the logo's half-size.
	logoDiscMargin = 5
)

// drawLogo paints an opaque disc in the background color and the scaled logo
// on top, centered on the symbol square's center. The disc keeps the logo
// legible no matter which modules it covers.
func drawLogo(dc *gg.Context, logo image.Image, bg color.RGBA, symbolSize, frameSize int) {
	display := int(float64(symbolSize) * logoScale)
	cx := float64(frameSize) / 2
	cy := float64(frameSize) / 2

	dc.SetColor(bg)
	dc.DrawCircle(cx, cy, float64(display)/2+logoDiscMargin)
	dc.Fill()

	scaled := resize.Resize(uint(display), uint(display), logo, resize.Lanczos3)
	dc.DrawImage(scaled, frameSize/2-display/2, frameSize/2-display/2)
}

// drawCaption renders the bottom text centered horizontally, anchored a fixed
// offset below the symbol region's bottom edge.
func drawCaption(dc *gg.Context, opts *Options, frameSize int) error {
	face, err := captionFace(opts.BottomTextSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(opts.BottomTextColor)

	symbolBottom := (frameSize-opts.Size)/2 + opts.Size
	dc.DrawStringAnchored(opts.BottomText, float64(frameSize)/2, float64(symbolBottom+captionOffset), 0.5, 0.5)
	return nil
}
