package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the default entry point name for this shader.
//
// Parameters:
//   - name: the entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point for this shader
func WithEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = name
	}
}

// WithBindGroupLayout declares the bind group layout for a group index. The entries
// must match the @group/@binding declarations in the WGSL source, with Visibility
// covering every stage that reads the binding.
//
// Parameters:
//   - group: the bind group index
//   - entries: the layout entries for the group, in binding order
//
// Returns:
//   - ShaderBuilderOption: a function that declares the bind group layout
func WithBindGroupLayout(group int, entries ...wgpu.BindGroupLayoutEntry) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = wgpu.BindGroupLayoutDescriptor{
			Label:   s.key,
			Entries: entries,
		}
	}
}

// WithVertexLayouts declares the vertex buffer layouts for a vertex shader, one per
// vertex buffer slot in slot order.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - ShaderBuilderOption: a function that declares the vertex layouts
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}

// WithWorkgroupSize declares the workgroup size of a compute shader. Must match the
// @workgroup_size attribute in the WGSL source.
//
// Parameters:
//   - x, y, z: the workgroup dimensions
//
// Returns:
//   - ShaderBuilderOption: a function that sets the workgroup size
func WithWorkgroupSize(x, y, z uint32) ShaderBuilderOption {
	return func(s *shader) {
		s.workGroupSize = [3]uint32{x, y, z}
	}
}
