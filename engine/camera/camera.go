package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement tuning for keyboard and mouse control.
const (
	moveSpeed        float32 = 4.0 // world units per second
	mouseSensitivity float32 = 0.1 // degrees per pixel
)

// MoveDirection identifies a camera-relative movement direction for keyboard
// control.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	up       mgl32.Vec3

	// yaw and pitch are in degrees. Yaw -90 looks down the negative Z axis.
	yaw   float32
	pitch float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

// Camera defines the interface for the viewpoint of the scene.
// The camera holds perspective settings and computes view/projection matrices
// from its position and yaw/pitch orientation.
type Camera interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Forward returns the normalized view direction derived from yaw and pitch.
	//
	// Returns:
	//   - mgl32.Vec3: the forward unit vector
	Forward() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// SetPosition moves the camera to the given world-space position and
	// recomputes the view matrix.
	//
	// Parameters:
	//   - position: new camera position
	SetPosition(position mgl32.Vec3)

	// SetOrientation sets yaw and pitch in degrees and recomputes the view matrix.
	// Pitch is clamped to (-89, 89) to avoid gimbal flip at the poles.
	//
	// Parameters:
	//   - yaw: rotation around the Y axis in degrees
	//   - pitch: rotation around the X axis in degrees
	SetOrientation(yaw, pitch float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes the
	// projection matrix. Called on window resize.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetFov sets the vertical field of view in radians and recomputes the
	// projection matrix.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// ProcessKeyboard moves the camera along its basis vectors for one frame of
	// held-key movement at a fixed speed.
	//
	// Parameters:
	//   - direction: which camera-relative direction to move
	//   - dt: frame delta time in seconds
	ProcessKeyboard(direction MoveDirection, dt float32)

	// ProcessMouse applies a mouse-look delta to yaw and pitch. Pitch is
	// clamped to (-89, 89) degrees.
	//
	// Parameters:
	//   - dx: horizontal mouse delta in pixels, positive looks right
	//   - dy: vertical mouse delta in pixels, positive looks up
	ProcessMouse(dx, dy float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings: positioned
// at the origin looking down negative Z, 60 degree vertical field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		yaw:      -90.0,
		pitch:    0.0,
		fov:      60.0 * (math.Pi / 180.0), // radians
		aspect:   1.0,
		near:     0.1,
		far:      100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *cameraImpl) SetOrientation(yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
	c.pitch = min(max(pitch, -89.0), 89.0)
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) ProcessKeyboard(direction MoveDirection, dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fwd := c.forward()
	right := fwd.Cross(c.up).Normalize()
	step := moveSpeed * dt
	switch direction {
	case MoveForward:
		c.position = c.position.Add(fwd.Mul(step))
	case MoveBackward:
		c.position = c.position.Sub(fwd.Mul(step))
	case MoveLeft:
		c.position = c.position.Sub(right.Mul(step))
	case MoveRight:
		c.position = c.position.Add(right.Mul(step))
	}
	c.updateMatrices()
}

func (c *cameraImpl) ProcessMouse(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += dx * mouseSensitivity
	c.pitch = min(max(c.pitch+dy*mouseSensitivity, -89.0), 89.0)
	c.updateMatrices()
}

// forward derives the view direction from yaw/pitch. Caller must hold the mutex.
func (c *cameraImpl) forward() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	pitchRad := float64(mgl32.DegToRad(c.pitch))
	return mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
}

// depthZeroToOne remaps clip-space depth from OpenGL's [-1, 1] to WebGPU's
// [0, 1]. Column-major, applied on the left of the perspective matrix.
var depthZeroToOne = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// updateMatrices recalculates the view and projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	target := c.position.Add(c.forward())
	c.viewMatrix = mgl32.LookAtV(c.position, target, c.up)
	c.projectionMatrix = depthZeroToOne.Mul4(mgl32.Perspective(c.fov, c.aspect, c.near, c.far))
}
