package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type FrameType string

const (
	FrameNone         FrameType = "none"
	FrameSimple       FrameType = "simple"
	FrameRounded      FrameType = "rounded"
	FrameGradient     FrameType = "gradient"
	FrameNeon         FrameType = "neon"
	FrameVintage      FrameType = "vintage"
	FrameSpeechBubble FrameType = "speech-bubble"
	FrameWavy         FrameType = "wavy"
	FrameCardStyle    FrameType = "card-style"
)

type FrameClass int

const (
	// ClassNone draws nothing.
	ClassNone FrameClass = iota
	// ClassBackground frames are filled shapes painted before the symbol.
	ClassBackground
	// ClassBorder frames are strokes painted after the symbol.
	ClassBorder
)

// frameClasses is the canonical style table. Both compositing passes dispatch
// through Class(); a style must never be classified anywhere else.
var frameClasses = map[FrameType]FrameClass{
	FrameNone:         ClassNone,
	FrameSimple:       ClassBorder,
	FrameRounded:      ClassBorder,
	FrameGradient:     ClassBorder,
	FrameNeon:         ClassBorder,
	FrameVintage:      ClassBorder,
	FrameSpeechBubble: ClassBackground,
	FrameWavy:         ClassBackground,
	FrameCardStyle:    ClassBackground,
}

func (f FrameType) Class() FrameClass { return frameClasses[f] }

func (f FrameType) valid() bool {
	_, ok := frameClasses[f]
	return ok
}

// frameGeometry is the 10%-padded inset rectangle every style draws into.
type frameGeometry struct {
	x, y, w, h float64
}

func frameInset(frameSize int) frameGeometry {
	pad := float64(frameSize) * 0.1
	return frameGeometry{
		x: pad / 2,
		y: pad / 2,
		w: float64(frameSize) - pad,
		h: float64(frameSize) - pad,
	}
}

// drawFrame paints the selected style if it belongs to the given class.
// The pipeline calls it twice: ClassBackground before the symbol draw,
// ClassBorder after.
func drawFrame(dc *gg.Context, class FrameClass, opts *Options) {
	if opts.Frame.Class() != class {
		return
	}
	g := frameInset(opts.FrameSize())
	switch opts.Frame {
	case FrameSimple:
		drawSimpleFrame(dc, g, opts.FrameColor)
	case FrameRounded:
		drawRoundedFrame(dc, g, opts.FrameColor)
	case FrameGradient:
		drawGradientFrame(dc, g, opts.FrameColor, opts.Background)
	case FrameNeon:
		drawNeonFrame(dc, g, opts.FrameColor)
	case FrameVintage:
		drawVintageFrame(dc, g, opts.FrameColor, opts.Background)
	case FrameSpeechBubble:
		drawSpeechBubbleFrame(dc, g, opts.FrameColor)
	case FrameWavy:
		drawWavyFrame(dc, g, opts.FrameColor)
	case FrameCardStyle:
		drawCardStyleFrame(dc, g, opts.FrameColor)
	}
}

func drawSimpleFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(8)
	dc.DrawRectangle(g.x, g.y, g.w, g.h)
	dc.Stroke()
}

func drawRoundedFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	dc.SetColor(c)
	dc.SetLineWidth(8)
	dc.DrawRoundedRectangle(g.x, g.y, g.w, g.h, 20)
	dc.Stroke()
}

func drawGradientFrame(dc *gg.Context, g frameGeometry, frame, bg color.RGBA) {
	grad := gg.NewLinearGradient(g.x, g.y, g.x+g.w, g.y+g.h)
	grad.AddColorStop(0, frame)
	grad.AddColorStop(0.5, bg)
	grad.AddColorStop(1, frame)
	dc.SetStrokeStyle(grad)
	dc.SetLineWidth(12)
	dc.DrawRectangle(g.x, g.y, g.w, g.h)
	dc.Stroke()
}

func drawNeonFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	glowStrokeRect(dc, g.x, g.y, g.w, g.h, 4, 20, c)
	glowStrokeRect(dc, g.x+4, g.y+4, g.w-8, g.h-8, 4, 10, c)
}

// glowStrokeRect emulates a shadow-blur glow with layered translucent strokes
// widening out to the glow radius, finished by a solid stroke.
func glowStrokeRect(dc *gg.Context, x, y, w, h, width, glow float64, c color.RGBA) {
	steps := int(glow)
	for i := steps; i >= 1; i-- {
		f := float64(i) / glow
		dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, 0.02+0.08*(1-f))
		dc.SetLineWidth(width + 2*float64(i))
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
	}
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
}

func drawVintageFrame(dc *gg.Context, g frameGeometry, frame, bg color.RGBA) {
	dc.SetColor(frame)
	dc.SetLineWidth(12)
	dc.DrawRectangle(g.x, g.y, g.w, g.h)
	dc.Stroke()

	dc.SetColor(bg)
	dc.SetLineWidth(4)
	dc.DrawRectangle(g.x+4, g.y+4, g.w-8, g.h-8)
	dc.Stroke()
}

func drawSpeechBubbleFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	// Bubble body is 20px shorter than the inset; the tail fills the gap.
	dc.SetColor(c)
	dc.DrawRoundedRectangle(g.x, g.y, g.w, g.h-20, 20)
	dc.Fill()

	cx := g.x + g.w/2
	baseY := g.y + g.h - 20
	dc.MoveTo(cx-15, baseY)
	dc.LineTo(cx+15, baseY)
	dc.LineTo(cx, g.y+g.h)
	dc.ClosePath()
	dc.Fill()
}

func drawWavyFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	const (
		amp  = 5.0
		freq = 0.1
		step = 2.0
	)
	dc.SetColor(c)
	dc.NewSubPath()
	dc.MoveTo(g.x, g.y)
	for t := 0.0; t <= g.w; t += step { // top, left to right
		dc.LineTo(g.x+t, g.y+amp*math.Sin(t*freq))
	}
	for t := 0.0; t <= g.h; t += step { // right, top to bottom
		dc.LineTo(g.x+g.w+amp*math.Sin(t*freq), g.y+t)
	}
	for t := 0.0; t <= g.w; t += step { // bottom, right to left
		dc.LineTo(g.x+g.w-t, g.y+g.h+amp*math.Sin(t*freq))
	}
	for t := 0.0; t <= g.h; t += step { // left, bottom to top
		dc.LineTo(g.x+amp*math.Sin(t*freq), g.y+g.h-t)
	}
	dc.ClosePath()
	dc.Fill()
}

func drawCardStyleFrame(dc *gg.Context, g frameGeometry, c color.RGBA) {
	// Drop shadow: blur 10, offset (3,3), 30% black, emulated with layered
	// translucent rectangles widening out to the blur radius.
	const blur = 10.0
	for i := int(blur); i >= 0; i-- {
		spread := float64(i)
		dc.SetRGBA(0, 0, 0, 0.3/(blur+1))
		dc.DrawRectangle(g.x+3-spread/2, g.y+3-spread/2, g.w+spread, g.h+spread)
		dc.Fill()
	}

	dc.SetColor(c)
	dc.DrawRectangle(g.x, g.y, g.w, g.h)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawRectangle(g.x+10, g.y+10, g.w-20, g.h-20)
	dc.Fill()
}
