// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating random sky positions.

package utils

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomLatLngs generates positions distributed uniformly over the sphere.
// Longitudes lie in [-180, 180) degrees. The seed parameter ensures reproducibility.
func GenerateRandomLatLngs(cnt int, seed uint64) []s2.LatLng {
	//nolint:gosec
	random := rand.New(rand.NewPCG(seed, 0))
	positions := make([]s2.LatLng, cnt)

	for i := range cnt {
		positions[i] = s2.LatLng{
			Lat: s1.Angle(math.Asin(random.Float64()*2 - 1)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}
	}

	return positions
}
