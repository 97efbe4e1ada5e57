package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"
)

// Artifact is the final encoded raster image. It has no identity beyond its
// bytes; nothing is cached between renders.
type Artifact struct {
	PNG      []byte
	Width    int
	Height   int
	Filename string
}

// DataURL returns the artifact as a data URL for inline display.
func (a *Artifact) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(a.PNG)
}

// Render runs the full pipeline: encode the symbol, paint background-class
// frames, draw the symbol through the shape clip, paint border-class frames,
// then overlay logo and caption, and serialize to PNG.
//
// It is a pure function of its inputs. Every call draws on a fresh canvas, so
// concurrent renders never observe each other's half-drawn state; the caller
// that issued the most recent request simply keeps the artifact it receives.
func Render(opts Options, logo image.Image) (*Artifact, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	frameSize := opts.FrameSize()
	totalHeight := opts.TotalHeight()
	if frameSize <= 0 || totalHeight <= 0 {
		return nil, &SurfaceUnavailableError{Width: frameSize, Height: totalHeight}
	}

	// Stage one: the symbol bitmap. Nothing is drawn until this completes;
	// an encoding failure aborts before any compositing.
	symbol, err := EncodeSymbol(opts.Text, opts.ErrorCorrection, opts.Foreground, opts.Background, opts.Margin, opts.Size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(frameSize, totalHeight)
	dc.SetColor(opts.Background)
	dc.Clear()

	drawFrame(dc, ClassBackground, &opts)

	offset := (frameSize - opts.Size) / 2
	applyShapeClip(dc, opts.Shape, float64(offset), float64(offset), float64(opts.Size))
	dc.DrawImage(symbol, offset, offset)
	dc.ResetClip()

	drawFrame(dc, ClassBorder, &opts)

	// Stage two: the decoded logo gates only itself and everything after it.
	if logo != nil {
		drawLogo(dc, logo, opts.Background, opts.Size, frameSize)
	}

	if opts.BottomText != "" {
		if err := drawCaption(dc, &opts, frameSize); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}

	return &Artifact{
		PNG:      buf.Bytes(),
		Width:    frameSize,
		Height:   totalHeight,
		Filename: fmt.Sprintf("qr-code-%d.png", time.Now().UnixMilli()),
	}, nil
}
