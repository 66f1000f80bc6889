// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2offset perturbs sky positions by random angular offsets.
//
// An offset is a distance and a uniformly random position angle, laid out on
// the plane tangent to the sphere at the base position and mapped back onto
// the sphere with the inverse gnomonic projection. RandomOffsetUniform and
// RandomOffsetGaussian reseed a fresh source from their arguments on every
// call, so equal inputs always give equal outputs without any shared state.
//
// Positions are longitude/latitude pairs in degrees. Inputs are not
// validated; NaN and infinite values propagate to the result.
package s2offset
