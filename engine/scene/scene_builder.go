package scene

import (
	"time"

	"github.com/rita19f/meadow/common"
	"github.com/rita19f/meadow/engine/trample"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option used to configure a Scene during construction.
type SceneBuilderOption func(*scene)

// WithMotionSource sets the function driving the interactor's position.
// Defaults to a circular orbit of radius 3 at 1 radian per second.
//
// Parameters:
//   - m: the MotionSource to sample each frame
//
// Returns:
//   - SceneBuilderOption: a function that sets the motion source on the scene
func WithMotionSource(m MotionSource) SceneBuilderOption {
	return func(s *scene) {
		if m != nil {
			s.motion = m
		}
	}
}

// WithInteractorRadius sets the press footprint radius of the interactor and
// rederives the simulation parameters from it. Defaults to 1.
//
// Parameters:
//   - radius: the interactor radius in world units
//
// Returns:
//   - SceneBuilderOption: a function that sets the interactor radius on the scene
func WithInteractorRadius(radius float32) SceneBuilderOption {
	return func(s *scene) {
		s.params = trample.NewParams(radius)
	}
}

// WithSunLight sets the primary directional light.
//
// Parameters:
//   - direction: direction toward the sun (normalized internally)
//   - color: the sun light color
//
// Returns:
//   - SceneBuilderOption: a function that sets the sun light on the scene
func WithSunLight(direction, color mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.sunDirection = direction.Normalize()
		s.sunColor = color
	}
}

// WithFillLight sets the secondary directional light.
//
// Parameters:
//   - direction: direction toward the fill light (normalized internally)
//   - color: the fill light color
//
// Returns:
//   - SceneBuilderOption: a function that sets the fill light on the scene
func WithFillLight(direction, color mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.lightDirection = direction.Normalize()
		s.lightColor = color
	}
}

// WithGroundTexture sets the candidate file paths for the ground texture, tried
// in order. When none can be loaded the scene falls back to a generated
// checkerboard.
//
// Parameters:
//   - paths: candidate texture file paths
//
// Returns:
//   - SceneBuilderOption: a function that sets the ground texture paths on the scene
func WithGroundTexture(paths ...string) SceneBuilderOption {
	return func(s *scene) {
		if len(paths) > 0 {
			s.groundTexturePaths = paths
		}
	}
}

// WithClockSource sets the time source for the frame clock. Defaults to
// time.Now.
//
// Parameters:
//   - now: the function returning the current time
//
// Returns:
//   - SceneBuilderOption: a function that sets the clock source on the scene
func WithClockSource(now func() time.Time) SceneBuilderOption {
	return func(s *scene) {
		s.clock = newFrameClock(now)
	}
}

// WithLogger sets the logger used by the scene.
// Defaults to a standard logger with the "scene" prefix.
//
// Parameters:
//   - logger: the Logger to use
//
// Returns:
//   - SceneBuilderOption: a function that sets the logger on the scene
func WithLogger(logger common.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.logger = logger
	}
}

// WithPassRecorder sets an observer called with each pass name in encode order.
// Useful for profiling overlays and frame debugging.
//
// Parameters:
//   - recorder: the function receiving each pass name
//
// Returns:
//   - SceneBuilderOption: a function that sets the pass recorder on the scene
func WithPassRecorder(recorder func(name string)) SceneBuilderOption {
	return func(s *scene) {
		s.recorder = recorder
	}
}
