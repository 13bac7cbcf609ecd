package pipeline

import (
	"testing"

	"github.com/rita19f/meadow/engine/renderer/shader"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPipelineDefaults(t *testing.T) {
	p := NewPipeline("plain", PipelineTypeRender)

	assert.Equal(t, PipelineTypeRender, p.Type())
	assert.Equal(t, "plain", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.False(t, p.AlphaToCoverage())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	require.NotNil(t, p.BlendState())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
}

func TestPipelineOptionsApply(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, "@vertex fn vs_main() {}")
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, "@fragment fn fs_main() {}")

	p := NewPipeline("foliage", PipelineTypeRender,
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithAlphaToCoverage(true),
		WithCullMode(wgpu.CullModeBack),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.Nil(t, p.Shader(shader.ShaderTypeCompute))
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.AlphaToCoverage())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
}

func TestComputePipelineShaderLookup(t *testing.T) {
	cs := shader.NewShader("cs", shader.ShaderTypeCompute, "@compute fn cs_main() {}",
		shader.WithWorkgroupSize(16, 16, 1),
	)

	p := NewPipeline("kernel", PipelineTypeCompute, WithComputeShader(cs))

	assert.Equal(t, PipelineTypeCompute, p.Type())
	assert.Same(t, cs, p.Shader(shader.ShaderTypeCompute))
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
}

func TestPipelineReturnsNilUntilRegistered(t *testing.T) {
	render := NewPipeline("r", PipelineTypeRender)
	compute := NewPipeline("c", PipelineTypeCompute)

	rp, ok := render.Pipeline().(*wgpu.RenderPipeline)
	require.True(t, ok)
	assert.Nil(t, rp)

	cp, ok := compute.Pipeline().(*wgpu.ComputePipeline)
	require.True(t, ok)
	assert.Nil(t, cp)
}
