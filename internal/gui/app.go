// Package gui is the windowed front end: a raylib scene with a top-down
// camera, the fixed-step orbit simulation, and mouse-ray picking.
package gui

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"planetoids/internal/config"
	"planetoids/internal/pick"
	"planetoids/internal/scene"
	"planetoids/internal/sim"
)

var (
	colBg      = rl.NewColor(0, 0, 0, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colBright  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Cfg    *config.Config
	Sys    *scene.Scene
	Runner *sim.Runner
	Camera rl.Camera3D

	Running  bool
	Selected int
	quit     bool
}

func NewApp(cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg, Running: true, Selected: -1}
	if err := a.rebuild(cfg.Seed); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) rebuild(seed int64) error {
	sys, err := scene.Build(a.Cfg.Planets, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	a.Sys = sys
	a.Runner = sim.NewRunner(sys)
	a.Selected = -1

	cam := sys.Camera
	a.Camera = rl.NewCamera3D(
		rl.NewVector3(float32(cam.Position.X), float32(cam.Position.Y), float32(cam.Position.Z)),
		rl.NewVector3(float32(cam.Target.X), float32(cam.Target.Y), float32(cam.Target.Z)),
		// Looking straight down, so up points along world X.
		rl.NewVector3(1, 0, 0),
		45.0,
		rl.CameraPerspective,
	)
	return nil
}

// Run opens the window and blocks until the user quits.
func Run(cfg *config.Config) error {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "planetoids")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.rebuild(time.Now().UnixNano())
	}

	if a.Running {
		a.Runner.Advance(float64(rl.GetFrameTime()))
	}

	// The pick source tracks the cursor every frame; picking itself only
	// fires on the press edge.
	mouse := rl.GetMousePosition()
	a.Sys.Camera.Pick.CursorX = float64(mouse.X)
	a.Sys.Camera.Pick.CursorY = float64(mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		ray := rl.GetMouseRay(mouse, a.Camera)
		a.pickAt(ray)
	}

	// Scroll to zoom the camera along its view axis.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Camera.Position.Y -= wheel * 0.1
		if a.Camera.Position.Y < 0.2 {
			a.Camera.Position.Y = 0.2
		}
	}
}

func (a *App) pickAt(ray rl.Ray) {
	r := pick.Ray{
		Origin: vec3(ray.Position),
		Dir:    vec3(ray.Direction),
	}
	point, ok := r.HitGround()
	if !ok {
		return
	}
	a.Selected = pick.Select(a.Sys, point)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.Camera)
	a.drawScene()
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	rl.DrawText("planetoids", 30, 30, 24, colBright)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, 60, 14, colTextDim)
	rl.DrawText(fmt.Sprintf("t = %.1fs", a.Runner.Time()), 30, 80, 14, colText)

	status := "RUNNING"
	col := colBright
	if !a.Running {
		status = "PAUSED"
		col = colTextDim
	}
	rl.DrawText(status, int32(a.Cfg.Window.Width)-130, 30, 16, col)

	if a.Selected >= 0 {
		rl.DrawText(fmt.Sprintf("picked body %d", a.Selected), 30, 100, 14, colBright)
	}

	rl.DrawText("[CLICK] PICK  [SPACE] PAUSE  [R] RESHUFFLE  [Q] QUIT",
		30, int32(a.Cfg.Window.Height)-40, 14, colTextDim)
}
