package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrassBladeShape(t *testing.T) {
	m := GrassBlade()

	require.Len(t, m.Vertices, (BladeSegments+1)*2)
	require.Len(t, m.Indices, BladeSegments*6)

	// Root row spans the full blade width, tip row converges to a point.
	root := m.Vertices[0:2]
	assert.InDelta(t, -BladeWidth/2, root[0].Position[0], 1e-6)
	assert.InDelta(t, BladeWidth/2, root[1].Position[0], 1e-6)

	tip := m.Vertices[len(m.Vertices)-2:]
	assert.InDelta(t, 0, tip[0].Position[0], 1e-6)
	assert.InDelta(t, 0, tip[1].Position[0], 1e-6)
	assert.InDelta(t, 1.0, tip[0].Position[1], 1e-6)

	// UV v climbs monotonically from root to tip.
	for row := 0; row <= BladeSegments; row++ {
		want := float32(row) / float32(BladeSegments)
		assert.InDelta(t, want, m.Vertices[row*2].TexCoord[1], 1e-6)
	}

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestGroundPlaneBounds(t *testing.T) {
	m := GroundPlane()

	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Indices, 6)

	for _, v := range m.Vertices {
		assert.Equal(t, GroundY, v.Position[1])
		assert.GreaterOrEqual(t, v.Position[0], GroundMin)
		assert.LessOrEqual(t, v.Position[0], GroundMax)
		assert.GreaterOrEqual(t, v.Position[2], GroundMin)
		assert.LessOrEqual(t, v.Position[2], GroundMax)
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal)
	}

	// UVs tile the texture GroundUVScale times across the plane.
	var maxU float32
	for _, v := range m.Vertices {
		if v.TexCoord[0] > maxU {
			maxU = v.TexCoord[0]
		}
	}
	assert.Equal(t, GroundUVScale, maxU)
}

func TestUVSphereGeometry(t *testing.T) {
	m := UVSphere(BallRadius, SphereSegments, SphereRings)

	require.Len(t, m.Vertices, (SphereSegments+1)*(SphereRings+1))
	require.Len(t, m.Indices, SphereSegments*SphereRings*6)

	for _, v := range m.Vertices {
		dist := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		assert.InDelta(t, float64(BallRadius), dist, 1e-5)

		n := math.Sqrt(float64(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]))
		assert.InDelta(t, 1.0, n, 1e-5)
	}

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestMeshSerializationSizes(t *testing.T) {
	m := GrassBlade()

	assert.Len(t, m.VertexData(), len(m.Vertices)*VertexStride)
	assert.Len(t, m.IndexData(), len(m.Indices)*2)
}

func TestVertexLayoutMatchesStride(t *testing.T) {
	layout := VertexLayout()

	assert.Equal(t, uint64(VertexStride), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(24), layout.Attributes[2].Offset)

	instance := InstanceLayout()
	assert.Equal(t, uint64(InstanceStride), instance.ArrayStride)
	require.Len(t, instance.Attributes, 4)
	assert.Equal(t, uint32(6), instance.Attributes[3].ShaderLocation)
}
