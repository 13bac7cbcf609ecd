// Package trample maintains the persistent ground deformation field. The field
// is a square single-channel texture over the meadow bounds: 0 means upright
// grass, 1 means fully flattened. Each frame a compute kernel presses the field
// down under the interactor and decays it everywhere else, writing from one
// texture of a ping-pong pair into the other.
package trample

import (
	_ "embed"
	"math"

	"github.com/rita19f/meadow/engine/geometry"
)

// KernelSource is the WGSL compute kernel that advances the field by one step.
// The frame uniform struct definition must be prepended before compilation.
//
//go:embed assets/trample_update.wgsl
var KernelSource string

const (
	// FieldSize is the resolution of the deformation field texture on each axis.
	FieldSize = 1024

	// WorkgroupSize is the kernel's workgroup edge length. Must match the
	// @workgroup_size attribute in KernelSource.
	WorkgroupSize = 16
)

// Default simulation parameters.
const (
	// DefaultDecayRate controls how quickly flattened grass springs back,
	// applied as exp(-rate*dt) per step.
	DefaultDecayRate float32 = 0.35

	// DefaultFlattenStrength is the field value written directly under the
	// interactor. Grass is never pressed past this value.
	DefaultFlattenStrength float32 = 0.75

	// BandWidthFactor sizes the soft falloff band around the interactor as a
	// fraction of its radius.
	BandWidthFactor float32 = 0.35
)

// Params holds the per-step simulation inputs derived from the interactor.
type Params struct {
	// InteractorRadius is the footprint radius of the pressing object in world units.
	InteractorRadius float32

	// BandWidth is the width of the smooth falloff ring beyond the radius.
	BandWidth float32

	// FlattenStrength is the maximum field value the press can produce.
	FlattenStrength float32

	// DecayRate is the exponential recovery rate outside the press area.
	DecayRate float32
}

// NewParams builds simulation parameters for an interactor of the given radius
// using the default strength, decay, and band sizing.
//
// Parameters:
//   - radius: the interactor footprint radius in world units
//
// Returns:
//   - Params: the derived simulation parameters
func NewParams(radius float32) Params {
	return Params{
		InteractorRadius: radius,
		BandWidth:        radius * BandWidthFactor,
		FlattenStrength:  DefaultFlattenStrength,
		DecayRate:        DefaultDecayRate,
	}
}

// Field tracks which texture of the ping-pong pair holds the current state.
// The generation only advances after the frame that wrote the new state was
// successfully submitted, so a failed frame re-reads and re-writes the same
// textures instead of consuming a step that never ran.
type Field struct {
	generation uint64
}

// Generation returns the number of completed simulation steps.
//
// Returns:
//   - uint64: the step count
func (f *Field) Generation() uint64 {
	return f.generation
}

// ReadIndex returns the index (0 or 1) of the texture holding the current state.
//
// Returns:
//   - int: the read texture index
func (f *Field) ReadIndex() int {
	return int(f.generation % 2)
}

// WriteIndex returns the index (0 or 1) of the texture the next step writes into.
//
// Returns:
//   - int: the write texture index
func (f *Field) WriteIndex() int {
	return int((f.generation + 1) % 2)
}

// Swap advances the generation, making the texture written by the completed
// step the new read texture.
func (f *Field) Swap() {
	f.generation++
}

// DispatchSize returns the workgroup counts needed to cover the full field with
// the kernel's workgroup size.
//
// Returns:
//   - [3]uint32: workgroup counts in x, y, and z
func DispatchSize() [3]uint32 {
	n := uint32(FieldSize / WorkgroupSize)
	return [3]uint32{n, n, 1}
}

// WorldToUV maps a world-space ground position to field texture coordinates.
// Positions at the ground bounds map to 0 and 1.
//
// Parameters:
//   - x, z: the world-space position on the ground plane
//
// Returns:
//   - float32: the u coordinate
//   - float32: the v coordinate
func WorldToUV(x, z float32) (float32, float32) {
	span := geometry.GroundMax - geometry.GroundMin
	return (x - geometry.GroundMin) / span, (z - geometry.GroundMin) / span
}

// UVToWorld maps field texture coordinates back to a world-space ground position.
//
// Parameters:
//   - u, v: the texture coordinates
//
// Returns:
//   - float32: the world x coordinate
//   - float32: the world z coordinate
func UVToWorld(u, v float32) (float32, float32) {
	span := geometry.GroundMax - geometry.GroundMin
	return geometry.GroundMin + u*span, geometry.GroundMin + v*span
}

// TexelStep is the CPU reference for one kernel step on a single texel. Inside
// the press footprint the field rises to the smoothstep-shaped press value
// (never dropping below its previous value); outside it decays exponentially.
// Kept in lockstep with KernelSource so the simulation rule can be tested
// without a GPU.
//
// Parameters:
//   - prev: the texel's previous field value
//   - dist: world-space distance from the texel to the interactor center
//   - p: the simulation parameters
//   - dt: the step's time delta in seconds
//
// Returns:
//   - float32: the texel's next field value
func TexelStep(prev, dist float32, p Params, dt float32) float32 {
	if dist <= p.InteractorRadius+p.BandWidth {
		pressed := p.FlattenStrength * (1.0 - smoothstep(p.InteractorRadius, p.InteractorRadius+p.BandWidth, dist))
		if pressed > prev {
			return pressed
		}
		return prev
	}
	return prev * float32(math.Exp(float64(-p.DecayRate*dt)))
}

// smoothstep mirrors the WGSL builtin: 0 below edge0, 1 above edge1, with a
// cubic Hermite ramp in between.
func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
