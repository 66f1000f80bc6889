// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2offset

import (
	"math"
	"math/rand/v2"

	"github.com/2dChan/s2offset/s2gnomonic"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	generatorSeed int64 = -232323

	// pcgStream selects the PCG stream shared by every source in this package.
	pcgStream = 0x5eed0ff5e7
)

// MakeSeed returns the IEEE-754 bit pattern of the product a*b*c.
// NaN, infinite and zero products are valid seeds.
func MakeSeed(a, b, c float64) uint64 {
	return math.Float64bits(a * b * c)
}

// NewSource returns a new source whose draws depend only on seed and draw order.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, pcgStream)
}

// SeededGenerator returns a generator seeded with a fixed constant.
// Every call returns a fresh generator producing the same stream.
func SeededGenerator() *rand.Rand {
	seed := generatorSeed
	//nolint:gosec
	return rand.New(NewSource(uint64(seed)))
}

// RandomOffsetUniform moves the position (lonDeg, latDeg) by a distance drawn
// uniformly from [0, maxDeg) in a uniformly random direction.
// The result depends only on the inputs.
func RandomOffsetUniform(lonDeg, latDeg, maxDeg float64) (float64, float64) {
	src := NewSource(MakeSeed(lonDeg, latDeg, maxDeg))
	return TangentPlaneOffset(lonDeg, latDeg, uniformDistance(maxDeg, src), src)
}

// RandomOffsetGaussian moves the position (lonDeg, latDeg) by a distance drawn
// from a normal distribution with mean 0 and standard deviation scaleDeg in a
// uniformly random direction. The result depends only on the inputs.
func RandomOffsetGaussian(lonDeg, latDeg, scaleDeg float64) (float64, float64) {
	src := NewSource(MakeSeed(lonDeg, latDeg, scaleDeg))
	return TangentPlaneOffset(lonDeg, latDeg, gaussianDistance(scaleDeg, src), src)
}

// TangentPlaneOffset moves the position (lonDeg, latDeg) by distDeg along a
// position angle drawn from src. A negative distance moves the position in
// the opposite direction. The output longitude is not normalized.
func TangentPlaneOffset(lonDeg, latDeg, distDeg float64, src rand.Source) (float64, float64) {
	ll := OffsetLatLng(s2.LatLngFromDegrees(latDeg, lonDeg), s1.Angle(distDeg)*s1.Degree, src)
	return ll.Lng.Degrees(), ll.Lat.Degrees()
}

// OffsetLatLng moves ll by dist along a position angle drawn from src, using
// the tangent plane at ll.
func OffsetLatLng(ll s2.LatLng, dist s1.Angle, src rand.Source) s2.LatLng {
	return s2gnomonic.Deproject(polar(dist, positionAngle(src)), ll)
}

// NormalizeLongitude maps lonDeg into [0, 360).
func NormalizeLongitude(lonDeg float64) float64 {
	lon := math.Mod(lonDeg, 360)
	if lon < 0 {
		lon += 360
	}
	// -tiny + 360 rounds to 360.
	if lon >= 360 {
		lon = 0
	}
	return lon
}

// Separation returns the great-circle distance in degrees between two positions.
func Separation(lon1Deg, lat1Deg, lon2Deg, lat2Deg float64) float64 {
	a := s2.LatLngFromDegrees(lat1Deg, lon1Deg)
	b := s2.LatLngFromDegrees(lat2Deg, lon2Deg)
	return a.Distance(b).Degrees()
}

func uniformDistance(maxDeg float64, src rand.Source) float64 {
	return distuv.Uniform{Min: 0, Max: maxDeg, Src: src}.Rand()
}

func gaussianDistance(scaleDeg float64, src rand.Source) float64 {
	return distuv.Normal{Mu: 0, Sigma: scaleDeg, Src: src}.Rand()
}

func positionAngle(src rand.Source) float64 {
	return distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}.Rand()
}

// polar returns the tangent-plane displacement of length dist along angle r,
// measured from the xi axis.
func polar(dist s1.Angle, r float64) r2.Point {
	sin, cos := math.Sincos(r)
	d := dist.Radians()
	return r2.Point{X: d * cos, Y: d * sin}
}
