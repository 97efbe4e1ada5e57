package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"qrstudio/internal/engine/render"
)

func main() {
	var (
		text            = flag.String("text", "", "payload text to encode (required)")
		size            = flag.Int("size", 300, "symbol size in pixels")
		fg              = flag.String("fg", "#000000", "module foreground color")
		bg              = flag.String("bg", "#ffffff", "module background color")
		level           = flag.String("level", "M", "error correction level: L, M, Q or H")
		margin          = flag.Int("margin", 4, "quiet zone width in modules")
		frame           = flag.String("frame", "none", "frame style")
		frameColor      = flag.String("frame-color", "#000000", "frame color")
		shape           = flag.String("shape", "square", "symbol area shape")
		bottomText      = flag.String("bottom-text", "", "caption below the symbol")
		bottomTextColor = flag.String("bottom-text-color", "#000000", "caption color")
		bottomTextSize  = flag.Int("bottom-text-size", 16, "caption size in pixels")
		logoPath        = flag.String("logo", "", "optional logo image file")
		out             = flag.String("out", ".", "output file, or directory for the generated filename")
	)
	flag.Parse()

	if *text == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := render.Options{
		Text:            *text,
		Size:            *size,
		ErrorCorrection: render.ErrorCorrection(*level),
		Margin:          *margin,
		Frame:           render.FrameType(*frame),
		Shape:           render.Shape(*shape),
		BottomText:      *bottomText,
		BottomTextSize:  *bottomTextSize,
	}

	var err error
	if opts.Foreground, err = render.ParseColor(*fg); err != nil {
		log.Fatalf("Invalid -fg: %v", err)
	}
	if opts.Background, err = render.ParseColor(*bg); err != nil {
		log.Fatalf("Invalid -bg: %v", err)
	}
	if opts.FrameColor, err = render.ParseColor(*frameColor); err != nil {
		log.Fatalf("Invalid -frame-color: %v", err)
	}
	if opts.BottomTextColor, err = render.ParseColor(*bottomTextColor); err != nil {
		log.Fatalf("Invalid -bottom-text-color: %v", err)
	}

	logo, err := loadLogoFile(*logoPath)
	if err != nil {
		log.Fatalf("Cannot load logo: %v", err)
	}

	artifact, err := render.Render(opts, logo)
	if err != nil {
		var encodingErr *render.EncodingError
		if errors.As(err, &encodingErr) {
			log.Fatalf("Payload does not fit at level %s; shorten the text or lower the level", opts.ErrorCorrection)
		}
		log.Fatalf("Render failed: %v", err)
	}

	path := *out
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, artifact.Filename)
	}
	if err := os.WriteFile(path, artifact.PNG, 0644); err != nil {
		log.Fatalf("Cannot write %s: %v", path, err)
	}
	log.Printf("Wrote %dx%d artifact to %s", artifact.Width, artifact.Height, path)
}

// loadLogoFile reads and decodes the logo. An oversized file is rejected at
// intake with a warning and the render proceeds without a logo.
func loadLogoFile(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logo, err := render.LoadLogo(data, render.MaxLogoBytes)
	if err != nil {
		var tooLarge *render.AssetTooLargeError
		if errors.As(err, &tooLarge) {
			log.Printf("Logo rejected: %v; rendering without it", err)
			return nil, nil
		}
		return nil, err
	}
	return logo, nil
}
