package render

import "fmt"

// EncodingError reports that the payload does not fit a QR symbol at the
// requested error correction level. The pipeline aborts before compositing.
type EncodingError struct {
	Level ErrorCorrection
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode payload at level %s: %v", e.Level, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// AssetTooLargeError reports a logo upload over the configured byte limit.
// The render itself may still proceed without the logo.
type AssetTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *AssetTooLargeError) Error() string {
	return fmt.Sprintf("logo is %d bytes, limit is %d", e.Size, e.Limit)
}

// SurfaceUnavailableError reports that a drawing surface with the derived
// dimensions cannot be created. Checked once at pipeline start; fatal.
type SurfaceUnavailableError struct {
	Width  int
	Height int
}

func (e *SurfaceUnavailableError) Error() string {
	return fmt.Sprintf("cannot acquire %dx%d drawing surface", e.Width, e.Height)
}
