package geometry

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/rita19f/meadow/common"

	"github.com/cogentcore/webgpu/wgpu"
)

// World-space extents of the meadow. The ground plane spans these bounds and all
// grass instances are placed inside them.
const (
	GroundMin float32 = -15.0
	GroundMax float32 = 15.0

	// GroundY is the height of the ground plane. Grass blades and the rolling
	// ball rest on this plane.
	GroundY float32 = -0.5

	// GroundUVScale is how many times the ground texture tiles across the plane.
	GroundUVScale float32 = 20.0
)

// Grass blade shape parameters. A blade is a tapered quad strip of BladeSegments
// quads in model space, one unit tall before per-instance height scaling.
const (
	BladeSegments           = 7
	BladeWidth      float32 = 0.25
	BladeHeightBase float32 = 0.7
)

// Ball shape parameters.
const (
	BallRadius     float32 = 0.5
	SphereSegments         = 64
	SphereRings            = 32
)

// VertexStride is the byte size of one Vertex as uploaded to the GPU.
const VertexStride = 32

// InstanceStride is the byte size of one per-instance transform (mat4x4<f32>).
const InstanceStride = 64

// Vertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly.
// Size: 32 bytes (std430 aligned, no padding required).
type Vertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the Vertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *Vertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// Marshal serializes the Vertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexStride)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(v.TexCoord[1]))
	return buf
}

// Mesh holds CPU-side geometry ready for upload via Renderer.InitMeshBuffers.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// VertexData serializes all vertices into a contiguous byte buffer for GPU upload.
//
// Returns:
//   - []byte: the vertex buffer contents
func (m *Mesh) VertexData() []byte {
	buf := make([]byte, 0, len(m.Vertices)*VertexStride)
	for i := range m.Vertices {
		buf = append(buf, m.Vertices[i].Marshal()...)
	}
	return buf
}

// IndexData returns the index buffer contents for GPU upload. The returned slice
// aliases the mesh's index storage.
//
// Returns:
//   - []byte: the index buffer contents
func (m *Mesh) IndexData() []byte {
	return common.SliceToBytes(m.Indices)
}

// VertexLayout returns the vertex buffer layout for slot 0, shared by every mesh
// pipeline. Locations 0 through 2 carry position, normal, and UV.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-vertex buffer layout
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}

// InstanceLayout returns the vertex buffer layout for slot 1, carrying the
// per-instance model matrix as four vec4 columns at locations 3 through 6.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-instance buffer layout
func InstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: InstanceStride,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 4},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 5},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 6},
		},
	}
}

// GrassBlade builds the canonical grass blade mesh: a vertical strip of
// BladeSegments quads, one unit tall, tapering from BladeWidth at the root to a
// point at the tip. The blade faces +Z; the vertex shader bends and orients it
// per instance. UV v runs 0 at the root to 1 at the tip so the fragment shader
// can shade along the blade.
//
// Returns:
//   - *Mesh: the blade mesh ((BladeSegments+1)*2 vertices, BladeSegments*6 indices)
func GrassBlade() *Mesh {
	rows := BladeSegments + 1
	m := &Mesh{
		Vertices: make([]Vertex, 0, rows*2),
		Indices:  make([]uint16, 0, BladeSegments*6),
	}

	for row := 0; row < rows; row++ {
		t := float32(row) / float32(BladeSegments)
		// Taper follows a smooth curve so the silhouette bows slightly outward
		// near the root instead of shrinking linearly.
		halfWidth := BladeWidth * 0.5 * (1.0 - t*t)
		y := t

		m.Vertices = append(m.Vertices,
			Vertex{
				Position: [3]float32{-halfWidth, y, 0},
				Normal:   [3]float32{0, 0, 1},
				TexCoord: [2]float32{0, t},
			},
			Vertex{
				Position: [3]float32{halfWidth, y, 0},
				Normal:   [3]float32{0, 0, 1},
				TexCoord: [2]float32{1, t},
			},
		)
	}

	for seg := 0; seg < BladeSegments; seg++ {
		base := uint16(seg * 2)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	return m
}

// GroundPlane builds the single-quad ground mesh at GroundY spanning GroundMin
// to GroundMax on x and z, with UVs tiling GroundUVScale times across the plane.
//
// Returns:
//   - *Mesh: the ground mesh (4 vertices, 6 indices)
func GroundPlane() *Mesh {
	up := [3]float32{0, 1, 0}
	return &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{GroundMin, GroundY, GroundMin}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{GroundMax, GroundY, GroundMin}, Normal: up, TexCoord: [2]float32{GroundUVScale, 0}},
			{Position: [3]float32{GroundMax, GroundY, GroundMax}, Normal: up, TexCoord: [2]float32{GroundUVScale, GroundUVScale}},
			{Position: [3]float32{GroundMin, GroundY, GroundMax}, Normal: up, TexCoord: [2]float32{0, GroundUVScale}},
		},
		Indices: []uint16{0, 2, 1, 0, 3, 2},
	}
}

// UVSphere builds a latitude/longitude sphere of the given radius centered at
// the origin, used for the rolling ball. Seam vertices are duplicated so UVs
// wrap cleanly.
//
// Parameters:
//   - radius: the sphere radius
//   - segments: longitude subdivisions
//   - rings: latitude subdivisions
//
// Returns:
//   - *Mesh: the sphere mesh ((segments+1)*(rings+1) vertices)
func UVSphere(radius float32, segments, rings int) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, (segments+1)*(rings+1)),
		Indices:  make([]uint16, 0, segments*rings*6),
	}

	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			sinTheta := float32(math.Sin(theta))
			cosTheta := float32(math.Cos(theta))

			n := [3]float32{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	stride := segments + 1
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint16(ring*stride + seg)
			b := uint16((ring+1)*stride + seg)
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return m
}
