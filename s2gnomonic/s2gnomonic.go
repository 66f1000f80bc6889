// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2gnomonic implements the gnomonic (tangent-plane) projection between
// the sphere and the plane tangent to it at a given point.
//
// Plane coordinates are standard coordinates (xi, eta) in radians: xi grows
// towards increasing longitude, eta towards the north pole.
package s2gnomonic

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-6
)

// ErrTooFar is returned by Project when the point lies 90 degrees or more
// away from the tangent point and has no image on the tangent plane.
var ErrTooFar = errors.New("s2gnomonic: point too far from tangent point")

// ProjectionOptions holds configuration for Project.
type ProjectionOptions struct {
	// Eps is the smallest accepted cosine of the distance between the point
	// and the tangent point.
	Eps float64
}

// ProjectionOption is a function that modifies ProjectionOptions.
type ProjectionOption func(*ProjectionOptions) error

// WithEps sets the threshold below which a point counts as too far from the
// tangent point. It returns an error if eps is not positive.
func WithEps(eps float64) ProjectionOption {
	return func(o *ProjectionOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Project maps p onto the plane tangent to the sphere at tp.
// It returns ErrTooFar if p is not in the hemisphere centered on tp.
func Project(p, tp s2.LatLng, setters ...ProjectionOption) (r2.Point, error) {
	opts := ProjectionOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return r2.Point{}, err
		}
	}

	sinLat, cosLat := math.Sincos(p.Lat.Radians())
	sinLat0, cosLat0 := math.Sincos(tp.Lat.Radians())
	sinDLng, cosDLng := math.Sincos((p.Lng - tp.Lng).Radians())

	denom := sinLat*sinLat0 + cosLat*cosLat0*cosDLng
	if denom <= opts.Eps {
		return r2.Point{}, ErrTooFar
	}

	return r2.Point{
		X: cosLat * sinDLng / denom,
		Y: (sinLat*cosLat0 - cosLat*sinLat0*cosDLng) / denom,
	}, nil
}

// Deproject maps p on the plane tangent at tp back onto the sphere.
//
// The longitude is tp.Lng plus the projected longitude difference and is not
// normalized. When p.X is zero and p lies at the horizon of tp, the longitude
// difference is atan2(0, 0) = 0.
func Deproject(p r2.Point, tp s2.LatLng) s2.LatLng {
	sinLat0, cosLat0 := math.Sincos(tp.Lat.Radians())

	denom := cosLat0 - p.Y*sinLat0
	return s2.LatLng{
		Lat: s1.Angle(math.Atan2(sinLat0+p.Y*cosLat0, math.Hypot(p.X, denom))),
		Lng: tp.Lng + s1.Angle(math.Atan2(p.X, denom)),
	}
}
