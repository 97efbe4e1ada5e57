package render

import (
	"fmt"
	"image/color"
	"strings"
)

type ErrorCorrection string

const (
	ECLow      ErrorCorrection = "L"
	ECMedium   ErrorCorrection = "M"
	ECQuartile ErrorCorrection = "Q"
	ECHigh     ErrorCorrection = "H"
)

type Shape string

const (
	ShapeSquare  Shape = "square"
	ShapeRounded Shape = "rounded"
	ShapeCircle  Shape = "circle"
	ShapeHexagon Shape = "hexagon"
)

const (
	// Extra canvas (total, both sides) added to each axis when a frame is drawn.
	framePadding = 60
	// Extra canvas below the symbol reserved for the caption.
	captionBand = 40
	// Vertical anchor of the caption below the symbol region's bottom edge.
	captionOffset = 25

	MinSize           = 200
	MaxSize           = 500
	MinBottomTextSize = 12
	MaxBottomTextSize = 24
)

// Options describes one render request. Colors are already parsed; the API
// and CLI layers convert user-supplied color strings with ParseColor.
type Options struct {
	Text            string
	Size            int
	Foreground      color.RGBA
	Background      color.RGBA
	ErrorCorrection ErrorCorrection
	Margin          int
	Frame           FrameType
	FrameColor      color.RGBA
	Shape           Shape
	BottomText      string
	BottomTextColor color.RGBA
	BottomTextSize  int
}

// FrameSize is the side of the square canvas region that holds the symbol,
// including room for the frame when one is selected.
func (o *Options) FrameSize() int {
	if o.Frame != FrameNone {
		return o.Size + framePadding
	}
	return o.Size
}

// TotalHeight is FrameSize plus the caption band when bottom text is set.
func (o *Options) TotalHeight() int {
	h := o.FrameSize()
	if o.BottomText != "" {
		h += captionBand
	}
	return h
}

func (o *Options) Validate() error {
	if strings.TrimSpace(o.Text) == "" {
		return fmt.Errorf("text is required")
	}
	if o.Size < MinSize || o.Size > MaxSize {
		return fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)
	}
	if o.Margin < 0 {
		return fmt.Errorf("margin must not be negative")
	}
	switch o.ErrorCorrection {
	case ECLow, ECMedium, ECQuartile, ECHigh:
	default:
		return fmt.Errorf("error correction must be one of L, M, Q, H")
	}
	if !o.Frame.valid() {
		return fmt.Errorf("unknown frame type %q", o.Frame)
	}
	switch o.Shape {
	case ShapeSquare, ShapeRounded, ShapeCircle, ShapeHexagon:
	default:
		return fmt.Errorf("unknown shape %q", o.Shape)
	}
	if o.BottomText != "" {
		if o.BottomTextSize < MinBottomTextSize || o.BottomTextSize > MaxBottomTextSize {
			return fmt.Errorf("bottom text size must be between %d and %d", MinBottomTextSize, MaxBottomTextSize)
		}
	}
	return nil
}
