// Package paint mixes colors and fills canvases with linear gradients.
package paint

import "github.com/rook-computer/imageutil/raster"

// Mix linearly interpolates each channel from c1 (p = 0) towards c2 (p = 1).
//
// p is not clamped. Each channel is computed as c1 + (c2-c1)*p in float32 and
// truncated toward zero; results below 0 (and NaN) become 0, results above 255
// become 255.
func Mix[C raster.Channels](c1, c2 C, p float32) C {
	var out C
	for i := 0; i < len(out); i++ {
		a := float32(c1[i])
		b := float32(c2[i])
		out[i] = toChannel(a + (b-a)*p)
	}
	return out
}

func toChannel(v float32) uint8 {
	switch {
	case v != v, v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
