package scene

import (
	"fmt"
	"math/rand"

	"planetoids/internal/geom"
)

// Parameter ranges for randomized bodies.
const (
	PlanetSpeedMin = 0.1
	PlanetSpeedMax = 0.5
	MoonSpeedMin   = 1.0
	MoonSpeedMax   = 2.0
	PhaseMax       = 10.0

	PlanetDrawMin = 0.005
	PlanetDrawMax = 0.01
	MoonDrawMin   = 0.003
	MoonDrawMax   = 0.006

	MoonsMin = 1
	MoonsMax = 3

	SunDrawRadius = 0.02
	SunIntensity  = 50.0
	GroundSize    = 100.0
)

// PlanetOrbitRadius returns the orbit radius assigned to the planet at
// index i.
func PlanetOrbitRadius(i int) float64 { return 0.15 + float64(i)/6.0 }

// MoonOrbitRadius returns the orbit radius assigned to the moon at index j
// within its planet.
func MoonOrbitRadius(j int) float64 { return 0.05 + float64(j)/35.0 }

// Build creates the scene graph: one ground plane, one sun, one camera with
// a pick-ray source, and planets top-level bodies each owning 1-3 moons.
// All randomized parameters are drawn from rng so a fixed seed reproduces
// the exact layout.
func Build(planets int, rng *rand.Rand) (*Scene, error) {
	if planets < 0 {
		return nil, fmt.Errorf("planet count must be non-negative, got %d", planets)
	}

	s := &Scene{
		Planets: make([]*Planet, 0, planets),
		Sun: Sun{
			DrawRadius: SunDrawRadius,
			Color:      ColorSun,
			Intensity:  SunIntensity,
		},
		Ground: Ground{Size: GroundSize, Color: Color{0, 0, 0}},
		Camera: Camera{
			Position: geom.Vec3{X: 0, Y: 2, Z: 0},
			Target:   geom.Vec3{},
		},
	}

	for i := 0; i < planets; i++ {
		p := &Planet{
			Body: Body{
				Orbit: Orbit{
					Speed:  randRange(rng, PlanetSpeedMin, PlanetSpeedMax),
					Radius: PlanetOrbitRadius(i),
					Phase:  rng.Float64() * PhaseMax,
				},
				DrawRadius: randRange(rng, PlanetDrawMin, PlanetDrawMax),
				Color:      ColorBody,
			},
		}

		moons := MoonsMin + rng.Intn(MoonsMax-MoonsMin+1)
		for j := 0; j < moons; j++ {
			p.Moons = append(p.Moons, &Body{
				Orbit: Orbit{
					Speed:  randRange(rng, MoonSpeedMin, MoonSpeedMax),
					Radius: MoonOrbitRadius(j),
					Phase:  rng.Float64() * PhaseMax,
				},
				DrawRadius: randRange(rng, MoonDrawMin, MoonDrawMax),
				Color:      ColorBody,
			})
		}

		s.Planets = append(s.Planets, p)
	}

	return s, nil
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
