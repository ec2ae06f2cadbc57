package scene_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"planetoids/internal/scene"
)

var _ = Describe("Build", func() {
	newRand := func() *rand.Rand { return rand.New(rand.NewSource(42)) }

	It("rejects a negative planet count", func() {
		_, err := scene.Build(-1, newRand())
		Expect(err).To(HaveOccurred())
	})

	It("builds an empty system with a sun, ground and camera", func() {
		s, err := scene.Build(0, newRand())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Planets).To(BeEmpty())
		Expect(s.Bodies()).To(BeEmpty())
		Expect(s.Sun.DrawRadius).To(Equal(scene.SunDrawRadius))
		Expect(s.Sun.Intensity).To(Equal(scene.SunIntensity))
		Expect(s.Ground.Size).To(Equal(scene.GroundSize))
		Expect(s.Camera.Position.Y).To(Equal(2.0))
	})

	It("creates the requested number of planets, each with 1-3 moons", func() {
		s, err := scene.Build(5, newRand())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Planets).To(HaveLen(5))
		for _, p := range s.Planets {
			Expect(len(p.Moons)).To(And(
				BeNumerically(">=", scene.MoonsMin),
				BeNumerically("<=", scene.MoonsMax),
			))
		}
	})

	It("assigns orbit radii from the body index", func() {
		s, err := scene.Build(6, newRand())
		Expect(err).NotTo(HaveOccurred())
		for i, p := range s.Planets {
			Expect(p.Radius).To(Equal(0.15 + float64(i)/6.0))
			for j, m := range p.Moons {
				Expect(m.Radius).To(Equal(0.05 + float64(j)/35.0))
			}
		}
	})

	It("draws randomized parameters within their ranges", func() {
		s, err := scene.Build(8, newRand())
		Expect(err).NotTo(HaveOccurred())
		for _, p := range s.Planets {
			Expect(p.Speed).To(And(
				BeNumerically(">=", scene.PlanetSpeedMin),
				BeNumerically("<", scene.PlanetSpeedMax),
			))
			Expect(p.Phase).To(And(
				BeNumerically(">=", 0.0),
				BeNumerically("<", scene.PhaseMax),
			))
			Expect(p.DrawRadius).To(And(
				BeNumerically(">=", scene.PlanetDrawMin),
				BeNumerically("<", scene.PlanetDrawMax),
			))
			for _, m := range p.Moons {
				Expect(m.Speed).To(And(
					BeNumerically(">=", scene.MoonSpeedMin),
					BeNumerically("<", scene.MoonSpeedMax),
				))
				Expect(m.DrawRadius).To(And(
					BeNumerically(">=", scene.MoonDrawMin),
					BeNumerically("<", scene.MoonDrawMax),
				))
			}
		}
	})

	It("reproduces the same layout for the same seed", func() {
		a, err := scene.Build(4, rand.New(rand.NewSource(7)))
		Expect(err).NotTo(HaveOccurred())
		b, err := scene.Build(4, rand.New(rand.NewSource(7)))
		Expect(err).NotTo(HaveOccurred())

		ba, bb := a.Bodies(), b.Bodies()
		Expect(bb).To(HaveLen(len(ba)))
		for i := range ba {
			Expect(bb[i].Orbit).To(Equal(ba[i].Orbit))
			Expect(bb[i].DrawRadius).To(Equal(ba[i].DrawRadius))
		}
	})

	It("lists bodies in planet order with moons trailing their planet", func() {
		s, err := scene.Build(3, newRand())
		Expect(err).NotTo(HaveOccurred())

		bodies := s.Bodies()
		idx := 0
		for _, p := range s.Planets {
			Expect(bodies[idx]).To(BeIdenticalTo(&p.Body))
			idx++
			for _, m := range p.Moons {
				Expect(bodies[idx]).To(BeIdenticalTo(m))
				idx++
			}
		}
		Expect(idx).To(Equal(len(bodies)))
	})

	It("starts every body unselected and resets colors", func() {
		s, err := scene.Build(3, newRand())
		Expect(err).NotTo(HaveOccurred())

		bodies := s.Bodies()
		for _, b := range bodies {
			Expect(b.Color).To(Equal(scene.ColorBody))
		}

		bodies[0].Color = scene.ColorSelected
		s.ResetColors()
		for _, b := range bodies {
			Expect(b.Color).To(Equal(scene.ColorBody))
		}
	})
})
