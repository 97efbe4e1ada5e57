package render

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

func (l ErrorCorrection) recoveryLevel() qrcode.RecoveryLevel {
	switch l {
	case ECLow:
		return qrcode.Low
	case ECQuartile:
		return qrcode.High
	case ECHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EncodeSymbol produces the base symbol image: exactly size x size pixels,
// modules in fg/bg, surrounded by a quiet zone of margin modules in bg. The
// library's own fixed quiet zone is disabled so the margin is freely settable.
// Deterministic: identical inputs yield byte-identical images.
func EncodeSymbol(text string, level ErrorCorrection, fg, bg color.RGBA, margin, size int) (*image.RGBA, error) {
	qr, err := qrcode.New(text, level.recoveryLevel())
	if err != nil {
		return nil, &EncodingError{Level: level, Err: err}
	}
	qr.DisableBorder = true

	grid := qr.Bitmap()
	n := len(grid)
	if margin < 0 {
		margin = 0
	}
	total := n + 2*margin

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		my := y * total / size
		for x := 0; x < size; x++ {
			mx := x * total / size
			c := bg
			if mx >= margin && mx < margin+n && my >= margin && my < margin+n && grid[my-margin][mx-margin] {
				c = fg
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}
