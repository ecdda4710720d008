package color

import "math"

// RGBToHLS converts normalized red, green and blue channels to
// hue, luminance and saturation, all in [0, 1].
func RGBToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (minc + maxc) / 2.0
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2.0 - maxc - minc)
	}
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h, l, s
}

// HLSToRGB is the inverse of RGBToHLS.
func HLSToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2
	return hlsValue(m1, m2, h+1.0/3.0), hlsValue(m1, m2, h), hlsValue(m1, m2, h-1.0/3.0)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1.0)
	if hue < 0 {
		hue += 1.0
	}
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6.0
	default:
		return m1
	}
}

// shiftLuminance converts to HLS, applies the luminance correction and
// converts back, truncating each channel toward zero. The truncation is
// load-bearing: derived palettes are compared pixel for pixel against
// presentation-software output.
func shiftLuminance(c RGB, shift func(l float64) float64) RGB {
	h, l, s := RGBToHLS(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
	l = math.Max(math.Min(shift(l), 1.0), 0.0)
	r, g, b := HLSToRGB(h, l, s)
	return RGB{R: truncChannel(r * 255.0), G: truncChannel(g * 255.0), B: truncChannel(b * 255.0)}
}

// truncChannel truncates toward zero, guarding the conversion against
// float drift just outside the [0, 255] range.
func truncChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Lighten moves the color's luminance a fraction factor of the remaining
// distance toward full brightness. Hue and saturation are preserved.
func Lighten(c RGB, factor float64) RGB {
	return shiftLuminance(c, func(l float64) float64 { return l + (1.0-l)*factor })
}

// Darken moves the color's luminance a fraction factor of the way toward
// black. Hue and saturation are preserved.
func Darken(c RGB, factor float64) RGB {
	return shiftLuminance(c, func(l float64) float64 { return l - l*factor })
}
