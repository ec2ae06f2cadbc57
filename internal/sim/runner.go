// Package sim drives the orbit update at a fixed cadence decoupled from the
// render rate.
package sim

import (
	"context"
	"fmt"

	"planetoids/internal/orbit"
	"planetoids/internal/scene"
)

// TimeStep is the fixed simulation step, 60 ticks per second.
const TimeStep = 1.0 / 60.0

// maxFrame caps the time a single frame may feed into the accumulator, so a
// stalled window does not trigger a catch-up burst.
const maxFrame = 0.25

// Runner advances a scene on the fixed step. Front ends feed it raw frame
// times; it converts them into whole simulation ticks.
type Runner struct {
	scene *scene.Scene
	t     float64
	acc   float64
}

func NewRunner(s *scene.Scene) *Runner {
	r := &Runner{scene: s}
	orbit.Update(s, 0)
	return r
}

// Time returns the current simulation time in seconds.
func (r *Runner) Time() float64 { return r.t }

// Advance consumes elapsed render time and performs as many fixed steps as
// fit. Body positions are a pure function of simulation time, so only the
// final tick's positions need recomputing. Returns the number of ticks
// performed.
func (r *Runner) Advance(elapsed float64) int {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxFrame {
		elapsed = maxFrame
	}
	r.acc += elapsed

	steps := 0
	for r.acc >= TimeStep {
		r.acc -= TimeStep
		r.t += TimeStep
		steps++
	}
	if steps > 0 {
		orbit.Update(r.scene, r.t)
	}
	return steps
}

// Config parameterizes a headless run.
type Config struct {
	Dt       float64
	Duration float64
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	return nil
}

// Run steps the scene for cfg.Duration without a front end, invoking
// callback after every tick. Returning false from the callback stops the
// run early. The context cancels a run in progress.
func Run(ctx context.Context, s *scene.Scene, cfg Config, callback func(t float64) bool) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	t := 0.0
	orbit.Update(s, t)

	steps := int(cfg.Duration / cfg.Dt)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t += cfg.Dt
		orbit.Update(s, t)

		if callback != nil && !callback(t) {
			return nil
		}
	}
	return nil
}
