package scene

import "planetoids/internal/geom"

// Color is an 8-bit RGB triple. Both front ends convert it to their native
// color type.
type Color struct {
	R, G, B uint8
}

var (
	// ColorBody is the unselected body color (lime green).
	ColorBody = Color{50, 205, 50}
	// ColorSelected marks the body closest to the last pick.
	ColorSelected = Color{255, 255, 255}
	// ColorSun is used for the sun sphere and its light.
	ColorSun = Color{255, 255, 0}
)

// Orbit holds the parameters of a body's circular orbit. Values are fixed
// at build time and never mutated afterwards.
type Orbit struct {
	Speed  float64 // angular speed, rad/s
	Radius float64 // orbit radius, scene units
	Phase  float64 // time offset desynchronizing bodies, s
}

// Body is an orbiting scene object: a planet or a moon. Position is world
// space, recomputed top-down every simulation tick; Color is the only other
// mutable field.
type Body struct {
	Orbit
	DrawRadius float64
	Color      Color
	Position   geom.Vec3
}

// Planet is a top-level body owning its moons. Moon orbits compose with the
// planet orbit through the parent position.
type Planet struct {
	Body
	Moons []*Body
}

// Sun is the single light source at the origin.
type Sun struct {
	DrawRadius float64
	Color      Color
	Intensity  float64 // lumens
}

// PickSource is attached to the camera and refreshed with the cursor
// position every frame. It carries no other state.
type PickSource struct {
	CursorX, CursorY float64
}

// Camera is the single scene camera with its pick-ray source.
type Camera struct {
	Position geom.Vec3
	Target   geom.Vec3
	Pick     PickSource
}

// Ground is the pickable plane the sun and orbits sit on.
type Ground struct {
	Size  float64
	Color Color
}

// Scene is the explicit scene graph: exactly one sun, one ground plane and
// one camera, plus the configured planets.
type Scene struct {
	Planets []*Planet
	Sun     Sun
	Ground  Ground
	Camera  Camera
}

// Bodies returns every planet and moon in a stable order: planet 0, its
// moons, planet 1, and so on. Pick results index into this slice.
func (s *Scene) Bodies() []*Body {
	out := make([]*Body, 0, len(s.Planets)*3)
	for _, p := range s.Planets {
		out = append(out, &p.Body)
		out = append(out, p.Moons...)
	}
	return out
}

// ResetColors restores the unselected color on every body.
func (s *Scene) ResetColors() {
	for _, b := range s.Bodies() {
		b.Color = ColorBody
	}
}
