package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Caption text uses the embedded Go Regular font so no font file needs to
// ship with the binary. Only the parsed font is shared; it is read-only once
// built. Faces are created per call because a truetype face carries a glyph
// cache that mutates on every draw, so sharing one across renders is unsafe.
var (
	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

func captionFace(size int) (font.Face, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = truetype.Parse(goregular.TTF)
	})
	if captionFontErr != nil {
		return nil, captionFontErr
	}
	return truetype.NewFace(captionFont, &truetype.Options{Size: float64(size)}), nil
}
