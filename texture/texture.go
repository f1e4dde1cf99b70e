// Package texture provides the values a material samples for spatially
// varying surface properties: a constant color, or an image with a
// precomputed mip chain for filtered lookups.
package texture

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// Texture is anything a material can evaluate at a surface point. uv is
// the surface parameterization; duvdx/duvdy are the screen-space texture
// footprint, used to pick a mip level and avoid aliasing on minified
// textures.
type Texture interface {
	Eval(uv math.Vec2, duvdx, duvdy math.Vec2) math.Vec3
}

// Constant is a texture that returns the same value everywhere, used for
// materials authored with a flat color rather than an image.
type Constant struct {
	Value math.Vec3
}

func NewConstant(value math.Vec3) *Constant {
	return &Constant{Value: value}
}

func (c *Constant) Eval(uv math.Vec2, duvdx, duvdy math.Vec2) math.Vec3 {
	return c.Value
}

func resolveUV(x float32) float32 {
	return x - float32(stdmath.Floor(float64(x)))
}

func clampLevel(level, maxLevel int) int {
	if level < 0 {
		return 0
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// level holds one mip level's pixel data, sized width x height, in
// linear RGB, row-major top-to-bottom.
type level struct {
	width, height int
	pixels        []math.Vec3
}

func (l *level) at(x, y int) math.Vec3 {
	x = ((x % l.width) + l.width) % l.width
	y = ((y % l.height) + l.height) % l.height
	return l.pixels[y*l.width+x]
}

func (l *level) sampleNearest(u, v float32) math.Vec3 {
	x := int(resolveUV(u) * float32(l.width))
	y := int(resolveUV(v) * float32(l.height))
	return l.at(x, y)
}

func (l *level) sampleBilinear(u, v float32) math.Vec3 {
	fx := resolveUV(u)*float32(l.width) - 0.5
	fy := resolveUV(v)*float32(l.height) - 0.5
	x0 := int(stdmath.Floor(float64(fx)))
	y0 := int(stdmath.Floor(float64(fy)))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := l.at(x0, y0)
	c10 := l.at(x0+1, y0)
	c01 := l.at(x0, y0+1)
	c11 := l.at(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// Image is a texture backed by decoded pixel data, box-filtered down into
// a mip chain so that minified lookups stay anti-aliased.
type Image struct {
	levels []level
}

// NewImageFromRGBA builds an Image from top-to-bottom RGBA8 pixel data,
// as produced by the scene loaders.
func NewImageFromRGBA(pixels []byte, width, height int) *Image {
	base := level{width: width, height: height, pixels: make([]math.Vec3, width*height)}
	for i := 0; i < width*height; i++ {
		base.pixels[i] = math.Vec3{
			X: float32(pixels[4*i+0]) / 255,
			Y: float32(pixels[4*i+1]) / 255,
			Z: float32(pixels[4*i+2]) / 255,
		}
	}

	img := &Image{levels: []level{base}}
	prev := base
	for prev.width > 1 || prev.height > 1 {
		next := downsample(prev)
		img.levels = append(img.levels, next)
		prev = next
	}
	return img
}

func downsample(src level) level {
	w := src.width / 2
	if w < 1 {
		w = 1
	}
	h := src.height / 2
	if h < 1 {
		h = 1
	}
	dst := level{width: w, height: h, pixels: make([]math.Vec3, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := src.at(2*x, 2*y).
				Add(src.at(2*x+1, 2*y)).
				Add(src.at(2*x, 2*y+1)).
				Add(src.at(2*x+1, 2*y+1))
			dst.pixels[y*w+x] = sum.Mul(0.25)
		}
	}
	return dst
}

func (img *Image) Eval(uv math.Vec2, duvdx, duvdy math.Vec2) math.Vec3 {
	footprint := float32(stdmath.Max(float64(duvdx.Length()), float64(duvdy.Length())))

	maxLevel := len(img.levels) - 1
	lvl := 0
	if footprint > 0 {
		lvl = clampLevel(maxLevel+int(stdmath.Log2(float64(footprint))), maxLevel)
	}
	return img.levels[lvl].sampleBilinear(uv.X, uv.Y)
}
