package renderer

import (
	"math"

	"github.com/zyedidia/generic/cache"
)

// FaceCacheSize bounds how many font sizes a backend keeps resident. Labels
// shrink continuously with depth, so sizes are quantized before lookup.
const FaceCacheSize = 64

// faceStep is the font size quantum in pixels.
const faceStep = 0.5

// FaceCache is an LRU of font faces keyed by quantized size. F is the
// backend's face type.
type FaceCache[F any] struct {
	faces *cache.Cache[float64, F]
	build func(size float64) F
}

// NewFaceCache returns a cache that creates faces with build on a miss.
func NewFaceCache[F any](capacity int, build func(size float64) F) *FaceCache[F] {
	return &FaceCache[F]{
		faces: cache.New[float64, F](max(1, capacity)),
		build: build,
	}
}

// Face returns the face for size, building it on first use.
func (c *FaceCache[F]) Face(size float64) F {
	key := QuantizeSize(size)
	if f, ok := c.faces.Get(key); ok {
		return f
	}
	f := c.build(key)
	c.faces.Put(key, f)
	return f
}

// Len returns the number of cached faces.
func (c *FaceCache[F]) Len() int {
	return c.faces.Size()
}

// QuantizeSize rounds a font size to the cache quantum. Sizes never drop
// below one quantum.
func QuantizeSize(size float64) float64 {
	if math.IsNaN(size) || size < faceStep {
		return faceStep
	}
	return math.Round(size/faceStep) * faceStep
}
