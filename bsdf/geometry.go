package bsdf

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// All Bsdf evaluation happens in local shading coordinates, where the
// scattering normal is mapped to (0, 0, 1).

// CreateBsdfCoordTransform builds an orthonormal frame with nz = n,
// used to rotate world-space directions into local shading coordinates.
func CreateBsdfCoordTransform(n math.Vec3) (nx, ny, nz math.Vec3) {
	nz = n.Normalize()
	if n.X != 0 || n.Y != 0 {
		nx = math.Vec3{X: n.Y, Y: -n.X, Z: 0}.Normalize()
	} else {
		sign := float32(1)
		if n.Z <= 0 {
			sign = -1
		}
		nx = math.Vec3{X: sign, Y: 0, Z: 0}
	}
	ny = nz.Cross(nx)
	return
}

// ToLocal rotates a world-space direction into the shading frame (nx, ny, nz).
func ToLocal(nx, ny, nz, w math.Vec3) math.Vec3 {
	return math.Vec3{X: w.Dot(nx), Y: w.Dot(ny), Z: w.Dot(nz)}
}

// ToWorld rotates a local shading-frame direction back to world space.
func ToWorld(nx, ny, nz, w math.Vec3) math.Vec3 {
	return nx.Mul(w.X).Add(ny.Mul(w.Y)).Add(nz.Mul(w.Z))
}

func SameHemisphere(wo, wi math.Vec3) bool {
	return wo.Z*wi.Z > 0
}

func CosTheta(w math.Vec3) float32     { return w.Z }
func Cos2Theta(w math.Vec3) float32    { return w.Z * w.Z }
func AbsCosTheta(w math.Vec3) float32  { return absf(w.Z) }
func Sin2Theta(w math.Vec3) float32    { return maxf(0, 1-Cos2Theta(w)) }
func SinTheta(w math.Vec3) float32     { return sqrtf(Sin2Theta(w)) }
func TanTheta(w math.Vec3) float32     { return SinTheta(w) / CosTheta(w) }
func Tan2Theta(w math.Vec3) float32    { return Sin2Theta(w) / Cos2Theta(w) }

// ReflectRay reflects wo about the arbitrary normal n. Assumes SameHemisphere(wo, n).
func ReflectRay(wo, n math.Vec3) math.Vec3 {
	h := wo.Dot(n)
	return wo.Negate().Add(n.Mul(2 * h))
}

// ReflectRayQuick reflects wo about the shading normal (0,0,1).
func ReflectRayQuick(wo math.Vec3) math.Vec3 {
	return math.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
}

// RefractRay refracts wo about n with eta = etaIncident/etaTransmitted.
// Returns false on total internal reflection.
func RefractRay(wo, n math.Vec3, eta float32) (math.Vec3, bool) {
	cosThetaI := n.Dot(wo)
	sin2ThetaI := maxf(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := eta * eta * sin2ThetaI
	if sin2ThetaT > 1 {
		return math.Vec3{}, false
	}
	cosThetaT := sqrtf(1 - sin2ThetaT)
	refracted := wo.Mul(-eta).Add(n.Mul(eta*cosThetaI - cosThetaT))
	return refracted, true
}

// Schlick returns the Schlick Fresnel approximation for eta = etaI/etaT.
func Schlick(cosTheta, eta float32) float32 {
	r0 := (eta - 1) / (eta + 1)
	r0 = r0 * r0
	root := 1 - cosTheta
	root2 := root * root
	return r0 + (1-r0)*root2*root2*root
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func sqrtf(x float32) float32 {
	if x < 0 {
		return 0
	}
	return float32(stdmath.Sqrt(float64(x)))
}
