package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MotionSource produces the interactor's center position for a given time in
// seconds. The scene samples it once per frame to drive both the visible ball
// and the deformation press.
type MotionSource func(t float64) mgl32.Vec3

// CircularMotion returns a MotionSource that orbits the origin on the ground
// plane at the given radius and angular speed in radians per second. The y
// component stays at centerY.
//
// Parameters:
//   - radius: orbit radius in world units
//   - speed: angular speed in radians per second
//   - centerY: the fixed height of the motion
//
// Returns:
//   - MotionSource: the orbit position function
func CircularMotion(radius, speed float32, centerY float32) MotionSource {
	return func(t float64) mgl32.Vec3 {
		angle := float64(speed) * t
		return mgl32.Vec3{
			radius * float32(math.Cos(angle)),
			centerY,
			radius * float32(math.Sin(angle)),
		}
	}
}
