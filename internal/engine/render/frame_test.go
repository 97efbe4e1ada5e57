package render

import (
	"image/color"
	"testing"
)

func TestFrameClassTable(t *testing.T) {
	background := map[FrameType]bool{
		FrameSpeechBubble: true,
		FrameWavy:         true,
		FrameCardStyle:    true,
	}

	for frame, class := range frameClasses {
		want := ClassBorder
		if frame == FrameNone {
			want = ClassNone
		} else if background[frame] {
			want = ClassBackground
		}
		if class != want {
			t.Errorf("Frame %q classified as %d, want %d", frame, class, want)
		}
		// Class() must answer from the same table.
		if frame.Class() != class {
			t.Errorf("Frame %q Class() disagrees with the table", frame)
		}
	}

	if len(frameClasses) != 9 {
		t.Errorf("Style table has %d entries, want 9", len(frameClasses))
	}
}

// Every frame style must leave ink in the padding ring around the symbol.
func TestFrameStylesPaint(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}

	// Probe points chosen per style: strokes sit on the inset rectangle at
	// pad/2 = 18; filled styles cover the ring from the inset inward.
	probes := map[FrameType][2]int{
		FrameSimple:       {180, 18},
		FrameRounded:      {180, 18},
		FrameGradient:     {180, 18},
		FrameNeon:         {180, 18},
		FrameVintage:      {180, 18},
		FrameSpeechBubble: {180, 25},
		FrameWavy:         {180, 25},
		FrameCardStyle:    {180, 25},
	}

	for frame, p := range probes {
		t.Run(string(frame), func(t *testing.T) {
			opts := validOptions()
			opts.Frame = frame
			opts.FrameColor = red

			artifact, img := renderImage(t, opts, nil)
			if artifact.Width != 360 {
				t.Fatalf("Canvas width = %d, want 360", artifact.Width)
			}
			if got := rgbaAt(img, p[0], p[1]); got == testWhite {
				t.Errorf("Probe (%d,%d) still background; frame %q painted nothing there", p[0], p[1], frame)
			}
		})
	}
}

// Background-class frames paint before the symbol: the symbol's central
// region must be fully visible on top of the fill.
func TestBackgroundFramesUnderSymbol(t *testing.T) {
	plain := validOptions()
	_, base := renderImage(t, plain, nil)

	for _, frame := range []FrameType{FrameSpeechBubble, FrameWavy, FrameCardStyle} {
		t.Run(string(frame), func(t *testing.T) {
			opts := validOptions()
			opts.Frame = frame
			opts.FrameColor = color.RGBA{R: 0xff, A: 0xff}

			_, img := renderImage(t, opts, nil)

			const offset, inset = 30, 15
			for y := inset; y < 300-inset; y += 5 {
				for x := inset; x < 300-inset; x += 5 {
					want := rgbaAt(base, x, y)
					got := rgbaAt(img, offset+x, offset+y)
					if got != want {
						t.Fatalf("Symbol pixel (%d,%d) occluded by background frame: got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

// Border-class strokes stay in the padding ring and never overwrite the
// symbol's interior.
func TestBorderFramesOverSymbol(t *testing.T) {
	plain := validOptions()
	_, base := renderImage(t, plain, nil)

	for _, frame := range []FrameType{FrameSimple, FrameRounded, FrameGradient, FrameNeon, FrameVintage} {
		t.Run(string(frame), func(t *testing.T) {
			opts := validOptions()
			opts.Frame = frame
			opts.FrameColor = color.RGBA{R: 0xff, A: 0xff}

			_, img := renderImage(t, opts, nil)

			const offset, inset = 30, 15
			for y := inset; y < 300-inset; y += 5 {
				for x := inset; x < 300-inset; x += 5 {
					want := rgbaAt(base, x, y)
					got := rgbaAt(img, offset+x, offset+y)
					if got != want {
						t.Fatalf("Symbol pixel (%d,%d) overwritten by border frame: got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}
