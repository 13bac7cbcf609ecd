package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardFromYawPitch(t *testing.T) {
	c := NewCamera(WithOrientation(-90, 0))

	fwd := c.Forward()
	assert.InDelta(t, 0.0, float64(fwd.X()), 1e-6)
	assert.InDelta(t, 0.0, float64(fwd.Y()), 1e-6)
	assert.InDelta(t, -1.0, float64(fwd.Z()), 1e-6)
}

func TestPitchClamped(t *testing.T) {
	c := NewCamera()
	c.SetOrientation(-90, 120)

	fwd := c.Forward()
	// Pitch clamps at 89 degrees, so the forward vector never reaches straight up.
	assert.Less(t, float64(fwd.Y()), 1.0)
	assert.InDelta(t, math.Sin(float64(mgl32.DegToRad(89))), float64(fwd.Y()), 1e-5)
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	pos := mgl32.Vec3{0, 1, 3}
	c := NewCamera(WithPosition(pos), WithOrientation(-90, 0))

	view := c.ViewMatrix()
	// The camera position must map to the view-space origin.
	origin := view.Mul4x1(pos.Vec4(1))
	assert.InDelta(t, 0.0, float64(origin.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(origin.Y()), 1e-5)
	assert.InDelta(t, 0.0, float64(origin.Z()), 1e-5)

	// A point one unit ahead of the camera lands on the negative view-space Z axis.
	ahead := view.Mul4x1(pos.Add(c.Forward()).Vec4(1))
	assert.InDelta(t, -1.0, float64(ahead.Z()), 1e-5)
}

func TestProjectionDepthRangeZeroToOne(t *testing.T) {
	c := NewCamera()

	proj := c.ProjectionMatrix()
	// Near and far plane points map to clip-space depth 0 and 1 after the w divide.
	near := proj.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -100, 1})
	assert.InDelta(t, 0.0, float64(near.Z()/near.W()), 1e-5)
	assert.InDelta(t, 1.0, float64(far.Z()/far.W()), 1e-4)
}

func TestProcessKeyboardMovesAlongForward(t *testing.T) {
	c := NewCamera(WithOrientation(-90, 0))

	c.ProcessKeyboard(MoveForward, 0.5)

	pos := c.Position()
	assert.InDelta(t, 0.0, float64(pos.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(pos.Y()), 1e-5)
	// moveSpeed 4.0 units/s for half a second, straight down negative Z.
	assert.InDelta(t, -2.0, float64(pos.Z()), 1e-5)
}

func TestProcessKeyboardStrafePerpendicularToForward(t *testing.T) {
	c := NewCamera(WithOrientation(-90, 0))

	c.ProcessKeyboard(MoveRight, 0.25)

	pos := c.Position()
	assert.InDelta(t, 1.0, float64(pos.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(pos.Z()), 1e-5)
}

func TestProcessMouseClampsPitch(t *testing.T) {
	c := NewCamera(WithOrientation(-90, 0))

	c.ProcessMouse(0, 1e6)

	fwd := c.Forward()
	assert.InDelta(t, math.Sin(float64(mgl32.DegToRad(89))), float64(fwd.Y()), 1e-5)
}

func TestSetAspectChangesProjection(t *testing.T) {
	c := NewCamera(WithAspect(1.0))
	before := c.ProjectionMatrix()

	c.SetAspect(16.0 / 9.0)
	after := c.ProjectionMatrix()

	require.NotEqual(t, before, after)
	// Horizontal scale shrinks as the viewport widens, vertical scale is unchanged.
	assert.InDelta(t, float64(before.At(0, 0))/(16.0/9.0), float64(after.At(0, 0)), 1e-5)
	assert.Equal(t, before.At(1, 1), after.At(1, 1))
}
