package main

import (
	"log"
	"math"
	"time"

	"github.com/rita19f/meadow/engine/camera"
	"github.com/rita19f/meadow/engine/renderer"
	"github.com/rita19f/meadow/engine/scene"
	"github.com/rita19f/meadow/engine/window"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	win := window.NewWindow(
		window.WithTitle("Meadow"),
		window.WithWidth(1280),
		window.WithHeight(720),
	)
	defer win.Close()

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithMSAA(renderer.MSAA4x),
		renderer.WithClearColor(wgpu.Color{R: 0.4, G: 0.6, B: 0.9, A: 1.0}),
	)

	cam := camera.NewCamera(
		camera.WithPosition(mgl32.Vec3{0, 1, 3}),
		camera.WithOrientation(-90, -12),
		camera.WithFov(float32(60.0*math.Pi/180.0)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	sc := scene.NewScene(cam, r)
	defer sc.Release()

	win.SetResizeCallback(func(width, height int) {
		sc.Resize(width, height)
	})

	// Held-key state for continuous fly-camera movement. Callbacks and the
	// update loop both run on the message loop goroutine, so no locking.
	held := make(map[uint32]bool)
	win.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == 'T' {
			sc.ToggleFieldDebug()
			return
		}
		held[keyCode] = true
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		delete(held, keyCode)
	})

	var lastMouseX, lastMouseY int32
	mouseSeen := false
	win.SetMouseMoveCallback(func(x, y int32) {
		if !mouseSeen {
			lastMouseX, lastMouseY = x, y
			mouseSeen = true
			return
		}
		dx := float32(x - lastMouseX)
		dy := float32(lastMouseY - y)
		lastMouseX, lastMouseY = x, y
		cam.ProcessMouse(dx, dy)
	})

	win.SetScrollCallback(func(delta float32) {
		fov := cam.Fov() - delta*float32(2.0*math.Pi/180.0)
		fov = min(max(fov, float32(20.0*math.Pi/180.0)), float32(90.0*math.Pi/180.0))
		cam.SetFov(fov)
	})

	prev := time.Now()
	win.SetUpdateCallback(func() {
		now := time.Now()
		dt := float32(now.Sub(prev).Seconds())
		prev = now

		for key := range held {
			switch key {
			case 'W':
				cam.ProcessKeyboard(camera.MoveForward, dt)
			case 'S':
				cam.ProcessKeyboard(camera.MoveBackward, dt)
			case 'A':
				cam.ProcessKeyboard(camera.MoveLeft, dt)
			case 'D':
				cam.ProcessKeyboard(camera.MoveRight, dt)
			}
		}

		if err := sc.Update(); err != nil {
			log.Printf("frame skipped: %v", err)
		}
	})

	log.Println("meadow running: WASD to fly, mouse to look, scroll to zoom, T to toggle the deformation field view, Esc to quit")
	win.ProcessMessages()
}
