package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPointDefaultsPerType(t *testing.T) {
	vs := NewShader("vs", ShaderTypeVertex, "@vertex fn vs_main() {}")
	fs := NewShader("fs", ShaderTypeFragment, "@fragment fn fs_main() {}")
	cs := NewShader("cs", ShaderTypeCompute, "@compute fn cs_main() {}")

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, "cs_main", cs.EntryPoint())

	custom := NewShader("vs2", ShaderTypeVertex, "@vertex fn entry() {}", WithEntryPoint("entry"))
	assert.Equal(t, "entry", custom.EntryPoint())
}

func TestEmptySourcePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeVertex, "")
	})
}

func TestBindGroupLayoutsKeyedByGroup(t *testing.T) {
	uniform := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
		Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
	}
	texture := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
		},
	}

	s := NewShader("layered", ShaderTypeVertex, "@vertex fn vs_main() {}",
		WithBindGroupLayout(0, uniform),
		WithBindGroupLayout(2, texture),
	)

	descriptors := s.BindGroupLayoutDescriptors()
	require.Len(t, descriptors, 2)
	require.Len(t, descriptors[0].Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, descriptors[0].Entries[0].Buffer.Type)
	require.Len(t, descriptors[2].Entries, 1)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, descriptors[2].Entries[0].Texture.SampleType)
}

func TestWorkgroupSize(t *testing.T) {
	s := NewShader("kernel", ShaderTypeCompute, "@compute @workgroup_size(16, 16) fn cs_main() {}",
		WithWorkgroupSize(16, 16, 1),
	)

	assert.Equal(t, [3]uint32{16, 16, 1}, s.WorkgroupSize())

	vs := NewShader("vs", ShaderTypeVertex, "@vertex fn vs_main() {}")
	assert.Equal(t, [3]uint32{0, 0, 0}, vs.WorkgroupSize())
}
