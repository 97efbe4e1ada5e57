package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// MaxLogoBytes is the default logo upload ceiling.
const MaxLogoBytes int64 = 5 << 20

// LoadLogo validates the upload size and decodes the logo image. A limit of
// zero or less falls back to MaxLogoBytes. Oversized uploads return an
// AssetTooLargeError; the caller decides whether to render without the logo.
func LoadLogo(data []byte, limit int64) (image.Image, error) {
	if limit <= 0 {
		limit = MaxLogoBytes
	}
	if int64(len(data)) > limit {
		return nil, &AssetTooLargeError{Size: int64(len(data)), Limit: limit}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return img, nil
}
