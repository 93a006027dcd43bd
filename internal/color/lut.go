package color

// Luminance weights from ITU-R BT.601.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// lumaLUT holds the per-channel weighted contributions for every byte value.
// Row 0 is red, row 1 green, row 2 blue. Each entry is computed with the same
// single multiplication as the direct formula, so LUT and formula agree bit for bit.
var lumaLUT [3][256]float64

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i)
		lumaLUT[0][i] = LumaR * v
		lumaLUT[1][i] = LumaG * v
		lumaLUT[2][i] = LumaB * v
	}
}

// Luma returns the BT.601 luminance R*0.299 + G*0.587 + B*0.114 in [0, 255].
func Luma(r, g, b uint8) float64 {
	return lumaLUT[0][r] + lumaLUT[1][g] + lumaLUT[2][b]
}

// LumaPlane converts an RGBA8 buffer into a luminance plane with one value per pixel.
// dst must hold at least len(rgba)/4 values; it is returned for chaining.
func LumaPlane(dst []float64, rgba []uint8) []float64 {
	n := len(rgba) / 4
	for i := 0; i < n; i++ {
		dst[i] = Luma(rgba[i*4], rgba[i*4+1], rgba[i*4+2])
	}
	return dst[:n]
}
