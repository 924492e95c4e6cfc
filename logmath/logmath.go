package logmath

import "math"

// LogPi is log(π), used by the ellipsoid volume estimate.
const LogPi = 1.1447298858494002

// LogUp returns log(x) rounded one ulp towards +∞, so that sums of
// returned values never under-approximate the true sum of logarithms.
// log(1) = 0 is exact and is returned unadjusted.
func LogUp(x float64) float64 {
	if x == 1 {
		return 0
	}

	return math.Nextafter(math.Log(x), math.Inf(1))
}

// LgammaUp returns log(Γ(x)) rounded one ulp towards +∞.
// x must be positive; the sign of Γ(x) is then always +1.
// Γ(1) = Γ(2) = 1 are exact and yield exactly 0.
func LgammaUp(x float64) float64 {
	v, _ := math.Lgamma(x)
	if v == 0 {
		return 0
	}

	return math.Nextafter(v, math.Inf(1))
}

// LogFactorialUp returns log(x!) = log(Γ(x+1)) rounded towards +∞.
func LogFactorialUp(x int) float64 {
	return LgammaUp(float64(x) + 1)
}
