package cartoon

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a CSS color split into channels. R, G and B are in [0, 255];
// A is in [0, 1].
type RGBA struct {
	R, G, B float64
	A       float64
}

// colorKeywords are the 16 basic CSS color names (plus grey).
// Unlisted keywords parse as opaque black.
var colorKeywords = map[string]RGBA{
	"black":   {0, 0, 0, 1},
	"silver":  {192, 192, 192, 1},
	"gray":    {128, 128, 128, 1},
	"grey":    {128, 128, 128, 1},
	"white":   {255, 255, 255, 1},
	"maroon":  {128, 0, 0, 1},
	"red":     {255, 0, 0, 1},
	"purple":  {128, 0, 128, 1},
	"fuchsia": {255, 0, 255, 1},
	"green":   {0, 128, 0, 1},
	"lime":    {0, 255, 0, 1},
	"olive":   {128, 128, 0, 1},
	"yellow":  {255, 255, 0, 1},
	"navy":    {0, 0, 128, 1},
	"blue":    {0, 0, 255, 1},
	"teal":    {0, 128, 128, 1},
	"aqua":    {0, 255, 255, 1},
}

// ParseColor parses #rgb, #rrggbb, rgb(r,g,b), rgba(r,g,b,a) and the basic
// CSS keywords. Anything unrecognized is opaque black.
func ParseColor(s string) RGBA {
	out := RGBA{A: 1}
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return out
		}
		out.R = math.Round(c.R * 255)
		out.G = math.Round(c.G * 255)
		out.B = math.Round(c.B * 255)
	case strings.HasPrefix(s, "rgba"):
		parts := colorArgs(s)
		out.R, out.G, out.B = parts[0], parts[1], parts[2]
		out.A = parts[3]
	case strings.HasPrefix(s, "rgb"):
		parts := colorArgs(s)
		out.R, out.G, out.B = parts[0], parts[1], parts[2]
	default:
		if kw, ok := colorKeywords[s]; ok {
			return kw
		}
	}
	return out
}

// colorArgs returns up to four comma separated numbers from inside the
// parentheses of s. Missing or malformed numbers read as zero.
func colorArgs(s string) [4]float64 {
	var out [4]float64
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end <= open {
		return out
	}
	for i, p := range strings.Split(s[open+1:end], ",") {
		if i >= len(out) {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err == nil {
			out[i] = v
		}
	}
	return out
}

// colorValue parses v if it is a string and passes RGBA through; other
// values are opaque black.
func colorValue(v any) RGBA {
	switch c := v.(type) {
	case RGBA:
		return c
	case string:
		return ParseColor(c)
	}
	return RGBA{A: 1}
}

// String formats the color as rgba(r,g,b,a) with floored channels.
func (c RGBA) String() string {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(strconv.Itoa(int(math.Floor(c.R))))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(math.Floor(c.G))))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(math.Floor(c.B))))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(c.A, 'f', -1, 64))
	b.WriteByte(')')
	return b.String()
}

// Lerp interpolates each channel without clamping p. RGB channels are
// floored to integers; alpha stays fractional.
func (c RGBA) Lerp(to RGBA, p float64) RGBA {
	return RGBA{
		R: math.Floor(lerp(c.R, to.R, p)),
		G: math.Floor(lerp(c.G, to.G, p)),
		B: math.Floor(lerp(c.B, to.B, p)),
		A: lerp(c.A, to.A, p),
	}
}

// NRGBA converts the color for rasterizers, clamping out-of-range channels.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A * 255),
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
