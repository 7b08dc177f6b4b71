package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"space-renderer/camera"
	"space-renderer/core"
	"space-renderer/internal/present"
	"space-renderer/renderer"
	"space-renderer/scene"
)

const (
	rotateSpeed = 1.5 // rad/s for camera orbit and freelook
	zoomSpeed   = 5.0
	moveSpeed   = 5.0
	shipTurn    = 2.0
	shipThrust  = 3.0
)

// inputState tracks which toggle keys were down last frame so holds do not
// re-fire.
type inputState struct {
	wasDown map[glfw.Key]bool
}

func newInputState() *inputState {
	return &inputState{wasDown: make(map[glfw.Key]bool)}
}

// pressed reports a fresh press of a toggle key.
func (in *inputState) pressed(w *core.Window, key glfw.Key) bool {
	down := w.IsKeyPressed(key)
	fired := down && !in.wasDown[key]
	in.wasDown[key] = down
	return fired
}

func main() {
	shipModel := flag.String("ship", "", "path to a ship model (.glb, .gltf or .obj)")
	renderScale := flag.Int("scale", 2, "window pixels per rendered pixel")
	flag.Parse()
	if *renderScale < 1 {
		*renderScale = 1
	}

	cfg := core.DefaultWindowConfig()
	window, err := core.NewWindow(cfg)
	if err != nil {
		fmt.Println("window:", err)
		os.Exit(1)
	}
	defer window.Destroy()

	blitter, err := present.NewBlitter()
	if err != nil {
		fmt.Println("present:", err)
		os.Exit(1)
	}

	sc := scene.NewSolarSystem()
	if *shipModel != "" {
		var mesh *core.MeshData
		if strings.HasSuffix(*shipModel, ".obj") {
			mesh, err = scene.LoadOBJ(*shipModel)
		} else {
			mesh, err = scene.LoadGLTFShip(*shipModel)
		}
		if err != nil {
			fmt.Println("ship model:", err)
		} else {
			sc.Ship.Mesh = mesh
			fmt.Printf("ship model loaded: %d vertices\n", len(mesh.Vertices))
		}
	}

	cam := camera.New(camera.DefaultConfig(), sc, "sun")
	eng := renderer.New(cfg.Width / *renderScale, cfg.Height / *renderScale)

	input := newInputState()
	var simTime float32
	paused := false

	last := time.Now()
	frames := 0
	statClock := last

	for !window.ShouldClose() {
		window.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > 0.1 {
			dt = 0.1 // clamp stalls so physics stays stable
		}

		handleInput(window, input, cam, sc, &paused, dt)

		if !paused {
			simTime += dt
			sc.Update(dt)
		}
		cam.Update(dt)

		eng.RenderFrame(sc, cam, simTime)
		ww, wh := window.GetFramebufferSize()
		blitter.Present(eng.Framebuffer(), ww, wh)
		window.SwapBuffers()

		frames++
		if time.Since(statClock) >= time.Second {
			drawn, _, _ := eng.Stats()
			window.SetTitle(fmt.Sprintf("%s | %d fps | %d tris | focus %s (%s)",
				cfg.Title, frames, drawn, cam.Focus(), cam.Mode()))
			frames = 0
			statClock = time.Now()
		}
	}
}

func handleInput(w *core.Window, in *inputState, cam *camera.Camera, sc *scene.Scene, paused *bool, dt float32) {
	if w.IsKeyPressed(glfw.KeyEscape) {
		w.Handle.SetShouldClose(true)
		return
	}

	// Camera: arrows orbit (or look in freelook), W/S zoom (or fly),
	// A/D strafe, Q/E vertical.
	yaw, pitch := float32(0), float32(0)
	if w.IsKeyPressed(glfw.KeyLeft) {
		yaw += rotateSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyRight) {
		yaw -= rotateSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyUp) {
		pitch += rotateSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyDown) {
		pitch -= rotateSpeed * dt
	}
	if yaw != 0 || pitch != 0 {
		cam.Orbit(yaw, pitch)
		cam.Look(yaw, pitch)
	}

	forward, right, up := float32(0), float32(0), float32(0)
	if w.IsKeyPressed(glfw.KeyW) {
		cam.Zoom(-zoomSpeed * dt)
		forward += moveSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyS) {
		cam.Zoom(zoomSpeed * dt)
		forward -= moveSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyA) {
		right -= moveSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyD) {
		right += moveSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyQ) {
		up -= moveSpeed * dt
	}
	if w.IsKeyPressed(glfw.KeyE) {
		up += moveSpeed * dt
	}
	if forward != 0 || right != 0 || up != 0 {
		cam.Move(forward, right, up)
	}

	// Ship: J/L turn, I thrust.
	if w.IsKeyPressed(glfw.KeyJ) {
		sc.Ship.Rotate(shipTurn * dt)
	}
	if w.IsKeyPressed(glfw.KeyL) {
		sc.Ship.Rotate(-shipTurn * dt)
	}
	if w.IsKeyPressed(glfw.KeyI) {
		sc.Ship.ApplyThrust(shipThrust * dt)
	}

	// Toggles and warp targets.
	if in.pressed(w, glfw.KeyF) {
		cam.ToggleMode()
	}
	if in.pressed(w, glfw.KeyO) {
		sc.ShowOrbits = !sc.ShowOrbits
	}
	if in.pressed(w, glfw.KeySpace) {
		*paused = !*paused
	}

	targets := sc.TargetNames()
	warpKeys := []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6}
	for i, key := range warpKeys {
		if i >= len(targets) {
			break
		}
		if in.pressed(w, key) {
			if err := cam.WarpTo(targets[i]); err != nil {
				fmt.Println("warp:", err)
			}
		}
	}
}
