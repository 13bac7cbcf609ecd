package scene

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameStateSource is the canonical WGSL definition of the FrameState uniform
// struct shared by every pipeline. It is prepended to each shader body before
// compilation so the struct exists in exactly one place.
// Matches FrameState layout exactly (256 bytes, std140 aligned).
//
//go:embed assets/frame_state.wgsl
var FrameStateSource string

// FrameStateSize is the byte size of the FrameState uniform buffer.
const FrameStateSize = 256

// FrameState is the CPU-side representation of the per-frame uniform shared by
// the sky, ground, grass, and ball pipelines and the deformation kernel.
// Matches the WGSL FrameState struct layout exactly (see FrameStateSource).
// Size: 256 bytes (std140 aligned).
type FrameState struct {
	View mgl32.Mat4 // offset   0: world-to-view transform (64 bytes)
	Proj mgl32.Mat4 // offset  64: view-to-clip transform (64 bytes)

	CameraPos mgl32.Vec3 // offset 128: camera position in world space (12 bytes)
	Time      float32    // offset 140: seconds since startup

	SunDirection mgl32.Vec3 // offset 144: normalized direction toward the sun (12 bytes)
	Dt           float32    // offset 156: frame delta time in seconds

	SunColor         mgl32.Vec3 // offset 160: sun light color (12 bytes)
	InteractorRadius float32    // offset 172: press footprint radius in world units

	LightDirection mgl32.Vec3 // offset 176: normalized direction toward the fill light (12 bytes)
	DecayRate      float32    // offset 188: field recovery rate

	LightColor       mgl32.Vec3 // offset 192: fill light color (12 bytes)
	FlattenBandWidth float32    // offset 204: soft falloff band width in world units

	InteractorPos   mgl32.Vec3 // offset 208: interactor center in world space (12 bytes)
	FlattenStrength float32    // offset 220: maximum field value under the press

	GroundMin mgl32.Vec2 // offset 224: meadow minimum corner on x/z (8 bytes)
	GroundMax mgl32.Vec2 // offset 232: meadow maximum corner on x/z (8 bytes)

	ContactShadowRadius   float32 // offset 240: ground contact shadow radius in world units
	ContactShadowStrength float32 // offset 244: contact shadow darkening factor
	DebugShowField        float32 // offset 248: 1.0 to visualize the raw field on the grass
}

// Marshal serializes the FrameState struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 256-byte buffer ready for GPU upload.
func (f *FrameState) Marshal() []byte {
	buf := make([]byte, FrameStateSize)

	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f.View[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(f.Proj[i]))
	}

	putVec3(buf[128:], f.CameraPos)
	binary.LittleEndian.PutUint32(buf[140:], math.Float32bits(f.Time))

	putVec3(buf[144:], f.SunDirection)
	binary.LittleEndian.PutUint32(buf[156:], math.Float32bits(f.Dt))

	putVec3(buf[160:], f.SunColor)
	binary.LittleEndian.PutUint32(buf[172:], math.Float32bits(f.InteractorRadius))

	putVec3(buf[176:], f.LightDirection)
	binary.LittleEndian.PutUint32(buf[188:], math.Float32bits(f.DecayRate))

	putVec3(buf[192:], f.LightColor)
	binary.LittleEndian.PutUint32(buf[204:], math.Float32bits(f.FlattenBandWidth))

	putVec3(buf[208:], f.InteractorPos)
	binary.LittleEndian.PutUint32(buf[220:], math.Float32bits(f.FlattenStrength))

	binary.LittleEndian.PutUint32(buf[224:], math.Float32bits(f.GroundMin[0]))
	binary.LittleEndian.PutUint32(buf[228:], math.Float32bits(f.GroundMin[1]))
	binary.LittleEndian.PutUint32(buf[232:], math.Float32bits(f.GroundMax[0]))
	binary.LittleEndian.PutUint32(buf[236:], math.Float32bits(f.GroundMax[1]))

	binary.LittleEndian.PutUint32(buf[240:], math.Float32bits(f.ContactShadowRadius))
	binary.LittleEndian.PutUint32(buf[244:], math.Float32bits(f.ContactShadowStrength))
	binary.LittleEndian.PutUint32(buf[248:], math.Float32bits(f.DebugShowField))

	return buf
}

func putVec3(dst []byte, v mgl32.Vec3) {
	binary.LittleEndian.PutUint32(dst[0:], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:], math.Float32bits(v[2]))
}
