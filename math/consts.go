package math

import "math"

// Inf is positive infinity as a float32, used as the initial extent of
// an empty bounding box.
var Inf = float32(math.Inf(1))

const Pi = float32(math.Pi)

const Epsilon = 1e-7
