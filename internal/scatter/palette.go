package scatter

import "image/color"

// seriesAlpha is 0.6 opacity, so overlapping point clouds stay readable.
const seriesAlpha = 0x99

// Palette holds the ten series colors (matplotlib's tab10 values) with the
// point transparency baked in.
var Palette = [10]color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: seriesAlpha},
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: seriesAlpha},
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: seriesAlpha},
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: seriesAlpha},
	color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: seriesAlpha},
	color.NRGBA{R: 0x8c, G: 0x56, B: 0x4b, A: seriesAlpha},
	color.NRGBA{R: 0xe3, G: 0x77, B: 0xc2, A: seriesAlpha},
	color.NRGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: seriesAlpha},
	color.NRGBA{R: 0xbc, G: 0xbd, B: 0x22, A: seriesAlpha},
	color.NRGBA{R: 0x17, G: 0xbe, B: 0xcf, A: seriesAlpha},
}

// SeriesColor returns the color for the k-th series, cycling through the
// palette.
func SeriesColor(k int) color.Color {
	return Palette[k%len(Palette)]
}
