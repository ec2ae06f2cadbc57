package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"planetoids/internal/geom"
	"planetoids/internal/scene"
)

func vec3(v rl.Vector3) geom.Vec3 {
	return geom.Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func rlVec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func rlColor(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func (a *App) drawScene() {
	// Pickable ground plane underneath the whole system.
	g := a.Sys.Ground
	rl.DrawPlane(rl.NewVector3(0, 0, 0),
		rl.NewVector2(float32(g.Size), float32(g.Size)), rlColor(g.Color))

	// The sun sits at the origin; raylib's default material is unlit, so
	// the point light reduces to an emissive-looking sphere.
	sun := a.Sys.Sun
	rl.DrawSphere(rl.NewVector3(0, 0, 0), float32(sun.DrawRadius), rlColor(sun.Color))

	for i, b := range a.Sys.Bodies() {
		rl.DrawSphere(rlVec(b.Position), float32(b.DrawRadius), rlColor(b.Color))
		if i == a.Selected {
			rl.DrawCircle3D(rlVec(b.Position), float32(b.DrawRadius)*3,
				rl.NewVector3(1, 0, 0), 90, rl.NewColor(255, 255, 255, 120))
		}
	}
}
