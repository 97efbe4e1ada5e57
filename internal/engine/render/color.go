package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Named colors accepted in addition to hex notation. Values match the CSS
// color keywords. All parsed colors are fully opaque.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"gold":    {0xff, 0xd7, 0x00, 0xff},
}

// ParseColor accepts #rgb, #rrggbb, or a CSS color keyword.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("color is empty")
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}, nil
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unrecognized color %q", s)
}
