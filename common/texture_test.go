package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMipLevelCount(t *testing.T) {
	assert.Equal(t, uint32(1), MipLevelCount(1, 1))
	assert.Equal(t, uint32(11), MipLevelCount(1024, 1024))
	assert.Equal(t, uint32(10), MipLevelCount(512, 512))
	assert.Equal(t, uint32(11), MipLevelCount(1024, 512))
}

func TestCheckerTextureMipChain(t *testing.T) {
	staged := CheckerTexture(64, 8, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255})
	require.NotNil(t, staged)

	assert.Equal(t, uint32(64), staged.Width)
	assert.Equal(t, uint32(64), staged.Height)
	assert.Len(t, staged.Pixels, 64*64*4)

	// 64 -> 32 -> 16 -> 8 -> 4 -> 2 -> 1
	require.Len(t, staged.MipLevels, 6)
	assert.Len(t, staged.MipLevels[0], 32*32*4)
	assert.Len(t, staged.MipLevels[5], 1*1*4)
}

func TestCheckerTextureCellColors(t *testing.T) {
	white := [4]byte{255, 255, 255, 255}
	black := [4]byte{0, 0, 0, 255}
	staged := CheckerTexture(8, 2, white, black)

	// Top-left cell uses the first color, its right neighbor the second.
	assert.Equal(t, white[:], staged.Pixels[0:4])
	right := (0*8 + 4) * 4
	assert.Equal(t, black[:], staged.Pixels[right:right+4])
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)
	assert.Len(t, b, 12)
	assert.Nil(t, SliceToBytes([]float32(nil)))
}
