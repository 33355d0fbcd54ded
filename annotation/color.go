package annotation

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/wavescope/wavescope/model"
)

// goldenRatio spreads consecutive seeds evenly around the hue circle.
const goldenRatio = 0.61803398875

// AutoColor returns a deterministic color for a seed: a golden-ratio hue
// walk at fixed saturation and value, so nearby seeds land far apart on the
// color wheel.
func AutoColor(seed uint64) model.Color {
	h := math.Mod(float64(seed%65536)*goldenRatio, 1.0)
	return hsv(h, 0.85, 0.85)
}

// EntityColor returns the deterministic display color of an entity path.
func EntityColor(entity model.EntityPath) model.Color {
	return AutoColor(xxhash.Sum64String(string(entity)))
}

// hsv converts hue/saturation/value in [0,1] to an opaque color.
func hsv(h, s, v float64) model.Color {
	i := int(h*6) % 6
	f := h*6 - math.Floor(h*6)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return model.NewColor(uint8(r*255+0.5), uint8(g*255+0.5), uint8(b*255+0.5))
}
