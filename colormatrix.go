package petsprite

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// ColorMatrix is a 4x5 color transform in row-major order:
// [R_r, R_g, R_b, R_a, R_offset, G_r, ...]. Offsets are in [0, 1] units.
type ColorMatrix [20]float64

// IdentityColorMatrix returns a matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	var m ColorMatrix
	m[0], m[6], m[12], m[18] = 1, 1, 1, 1
	return m
}

// SaturationMatrix returns a matrix that adjusts saturation. s=1 is normal,
// 0 is grayscale.
func SaturationMatrix(s float64) ColorMatrix {
	sr := (1 - s) * 0.299
	sg := (1 - s) * 0.587
	sb := (1 - s) * 0.114
	return ColorMatrix{
		sr + s, sg, sb, 0, 0,
		sr, sg + s, sb, 0, 0,
		sr, sg, sb + s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix returns a matrix that offsets each color channel by b.
func BrightnessMatrix(b float64) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, b,
		0, 1, 0, 0, b,
		0, 0, 1, 0, b,
		0, 0, 0, 1, 0,
	}
}

// ScaleRGB returns m with its color rows multiplied by r, g and b.
func (m ColorMatrix) ScaleRGB(r, g, b float64) ColorMatrix {
	for i, f := range [3]float64{r, g, b} {
		for j := 0; j < 5; j++ {
			m[i*5+j] *= f
		}
	}
	return m
}

// Then returns the matrix that applies m followed by next.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			var v float64
			for k := 0; k < 4; k++ {
				v += next[i*5+k] * m[k*5+j]
			}
			if j == 4 {
				v += next[i*5+4]
			}
			out[i*5+j] = v
		}
	}
	return out
}

// Apply maps a single non-premultiplied color through m. Results are clamped
// to [0, 1].
func (m ColorMatrix) Apply(c Color) Color {
	in := [4]float64{c.R, c.G, c.B, c.A}
	var out [4]float64
	for i := 0; i < 4; i++ {
		v := m[i*5+4]
		for k := 0; k < 4; k++ {
			v += m[i*5+k] * in[k]
		}
		out[i] = clamp01(v)
	}
	return Color{out[0], out[1], out[2], out[3]}
}

// DeadTreatment is the fixed transform applied to every dead-stage
// composition: mostly desaturated and darkened by a quarter.
func DeadTreatment() ColorMatrix {
	return SaturationMatrix(0.2).ScaleRGB(0.75, 0.75, 0.75)
}

func (m ColorMatrix) colorM() colorm.ColorM {
	var cm colorm.ColorM
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			cm.SetElement(i, j, m[i*5+j])
		}
	}
	return cm
}

// drawWithMatrix draws src onto dst through m.
func drawWithMatrix(dst, src *ebiten.Image, m ColorMatrix) {
	var op colorm.DrawImageOptions
	colorm.DrawImage(dst, src, m.colorM(), &op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
