// Package orbit computes body positions as a pure function of elapsed time.
//
// A body's angle at time t is speed * (phase - t); its local position is the
// orbit radius along (cos, 0, sin) of that angle, relative to the parent.
// There is no velocity integration and no interaction between bodies, so the
// update is total over all real inputs.
package orbit

import (
	"math"

	"planetoids/internal/geom"
	"planetoids/internal/scene"
)

// Angle returns the orbital angle of o at time t.
func Angle(o scene.Orbit, t float64) float64 {
	return o.Speed * (o.Phase - t)
}

// Local returns the position of o relative to its parent at time t.
func Local(o scene.Orbit, t float64) geom.Vec3 {
	a := Angle(o, t)
	return geom.Vec3{X: math.Cos(a), Y: 0, Z: math.Sin(a)}.Scale(o.Radius)
}

// Update recomputes every body's world position for time t, walking the
// scene graph top-down so moon orbits compose with their planet's.
func Update(s *scene.Scene, t float64) {
	for _, p := range s.Planets {
		p.Position = Local(p.Orbit, t)
		for _, m := range p.Moons {
			m.Position = p.Position.Add(Local(m.Orbit, t))
		}
	}
}
