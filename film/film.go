// Package film accumulates per-pixel radiance samples into a running
// average and encodes the result to gamma-corrected 8-bit RGBA, the one
// piece of framebuffer bookkeeping both cmd binaries need.
package film

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

type Framebuffer struct {
	Width  int
	Height int

	sum     []math.Vec3
	samples []int
}

func New(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:   width,
		Height:  height,
		sum:     make([]math.Vec3, width*height),
		samples: make([]int, width*height),
	}
}

// Accumulate adds one more radiance sample for pixel (x, y).
func (f *Framebuffer) Accumulate(x, y int, v math.Vec3) {
	i := y*f.Width + x
	f.sum[i] = f.sum[i].Add(v)
	f.samples[i]++
}

// At returns the running average for pixel (x, y).
func (f *Framebuffer) At(x, y int) math.Vec3 {
	i := y*f.Width + x
	if f.samples[i] == 0 {
		return math.Vec3{}
	}
	return f.sum[i].Mul(1 / float32(f.samples[i]))
}

// ToRGBA encodes the current running average through a gamma curve into
// a row-major, top-down RGBA byte buffer suitable for image/png or a GL
// texture upload.
func (f *Framebuffer) ToRGBA(gamma float32) []uint8 {
	out := make([]uint8, f.Width*f.Height*4)
	invGamma := 1 / gamma

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			o := (y*f.Width + x) * 4
			out[o+0] = toByte(c.X, invGamma)
			out[o+1] = toByte(c.Y, invGamma)
			out[o+2] = toByte(c.Z, invGamma)
			out[o+3] = 255
		}
	}
	return out
}

func toByte(v, invGamma float32) uint8 {
	if v < 0 {
		v = 0
	}
	v = float32(stdmath.Pow(float64(v), float64(invGamma)))
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
