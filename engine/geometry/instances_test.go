package geometry

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrassInstancesDeterministic(t *testing.T) {
	a := GrassInstances(2048, 7)
	b := GrassInstances(2048, 7)

	require.Len(t, a, 2048*InstanceStride)
	assert.True(t, bytes.Equal(a, b), "same seed must produce identical instance data")

	c := GrassInstances(2048, 8)
	assert.False(t, bytes.Equal(a, c), "different seeds must produce different instance data")
}

func TestGrassInstancesWithinBounds(t *testing.T) {
	const count = 4096
	data := GrassInstances(count, 1)

	for i := 0; i < count; i++ {
		// Translation lives in the fourth column of the column-major matrix.
		base := i*InstanceStride + 48
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[base : base+4]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(data[base+4 : base+8]))
		z := math.Float32frombits(binary.LittleEndian.Uint32(data[base+8 : base+12]))

		assert.GreaterOrEqual(t, x, GroundMin)
		assert.LessOrEqual(t, x, GroundMax)
		assert.GreaterOrEqual(t, z, GroundMin)
		assert.LessOrEqual(t, z, GroundMax)
		assert.Equal(t, GroundY, y)
	}
}

func TestGrassInstancesPartialChunk(t *testing.T) {
	// A count that is not a multiple of the chunk size still fills every slot.
	const count = instanceChunkSize + 37
	data := GrassInstances(count, 3)

	require.Len(t, data, count*InstanceStride)

	// The last instance must have a non-zero matrix (diagonal carries the scale).
	last := data[(count-1)*InstanceStride:]
	m5 := math.Float32frombits(binary.LittleEndian.Uint32(last[20:24]))
	assert.Greater(t, m5, float32(0), "height scale of last instance should be positive")
}
