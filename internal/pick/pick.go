// Package pick implements mouse selection: a cursor ray is intersected with
// the ground plane and the body nearest the hit point is highlighted.
package pick

import (
	"planetoids/internal/geom"
	"planetoids/internal/scene"
)

// MaxRange bounds the nearest-body scan. A click further than this from
// every body selects nothing.
const MaxRange = 100.0

// Ray is a world-space ray cast from the camera through the cursor.
type Ray struct {
	Origin, Dir geom.Vec3
}

// HitGround intersects the ray with the ground plane (y = 0) and returns
// the hit point. A ray parallel to the plane, or one whose intersection
// lies behind the origin, misses.
func (r Ray) HitGround() (geom.Vec3, bool) {
	if r.Dir.Y == 0 {
		return geom.Vec3{}, false
	}
	t := -r.Origin.Y / r.Dir.Y
	if t <= 0 {
		return geom.Vec3{}, false
	}
	return r.Origin.Add(r.Dir.Scale(t)).Flat(), true
}

// Closest returns the index of the body whose world position minimizes the
// Euclidean distance to point, along with that distance. Exact ties break
// to the lowest index. Returns ok=false when no body lies within MaxRange.
func Closest(bodies []*scene.Body, point geom.Vec3) (int, float64, bool) {
	best, bestDist := -1, MaxRange
	for i, b := range bodies {
		if d := b.Position.Distance(point); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, 0, false
	}
	return best, bestDist, true
}

// Select resets every body to the unselected color, then recolors the body
// closest to point. It returns the selected index in Scene.Bodies order, or
// -1 when nothing was in range.
func Select(s *scene.Scene, point geom.Vec3) int {
	s.ResetColors()
	bodies := s.Bodies()
	idx, _, ok := Closest(bodies, point)
	if !ok {
		return -1
	}
	bodies[idx].Color = scene.ColorSelected
	return idx
}
