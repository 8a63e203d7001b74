package climate

import (
	"fmt"
	"image/color"

	"github.com/erenfn/climate-compare/internal/common"
)

// RGB is an opaque color used to fill a city's region on the map.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText encodes the color as #rrggbb.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

var (
	colorHot  = RGB{0, 0, 0}
	colorCold = RGB{250, 250, 250}
)

// TempToRGB maps a yearly mean temperature in °C to its map color. Each
// band includes its lower bound; anything above 20 is black and anything
// below -0.3 (or NaN) is light gray.
func TempToRGB(t float64) RGB {
	switch {
	case t > 20:
		return colorHot
	case t >= 17.3:
		return RGB{255, 0, common.ClampByte(35.55 * (t - 17.3))}
	case t >= 5.6:
		return RGB{255, common.ClampByte(21.79 * (17.3 - t)), 0}
	case t >= 2.9:
		return RGB{common.ClampByte(85.19 * (t - 2.9)), 255, 0}
	case t >= -0.30:
		return RGB{0, 255, common.ClampByte(79.69 * (2.9 - t))}
	default:
		return colorCold
	}
}
