package renderer

import (
	"sync"
	"testing"

	"github.com/rita19f/meadow/common"
	"github.com/rita19f/meadow/engine/renderer/bind_group_provider"
	"github.com/rita19f/meadow/engine/renderer/pipeline"
	"github.com/rita19f/meadow/engine/renderer/shader"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records backend calls without touching a GPU. Setting
// degradeOnConfigure simulates a surface reconfiguration that loses its
// multisampled targets and drops to single-sample rendering.
type fakeBackend struct {
	configures         [][2]int
	samples            uint32
	degradeOnConfigure bool

	renderRegisters  []string
	computeRegisters []string
	storagePairs     int
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) Device() *wgpu.Device     { return nil }
func (f *fakeBackend) Queue() *wgpu.Queue       { return nil }
func (f *fakeBackend) Instance() *wgpu.Instance { return nil }
func (f *fakeBackend) Adapter() *wgpu.Adapter   { return nil }
func (f *fakeBackend) Surface() *wgpu.Surface   { return nil }

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configures = append(f.configures, [2]int{width, height})
	if f.degradeOnConfigure {
		f.samples = 1
	}
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) {}
func (f *fakeBackend) SampleCount() uint32             { return f.samples }

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	f.renderRegisters = append(f.renderRegisters, p.PipelineKey())
	return nil
}

func (f *fakeBackend) RegisterComputePipeline(p pipeline.Pipeline) error {
	f.computeRegisters = append(f.computeRegisters, p.PipelineKey())
	return nil
}

func (f *fakeBackend) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}

func (f *fakeBackend) InitInstanceBuffer(provider bind_group_provider.BindGroupProvider, instanceData []byte) error {
	return nil
}

func (f *fakeBackend) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}

func (f *fakeBackend) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (f *fakeBackend) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (f *fakeBackend) CreateStorageTexturePair(label string, width, height int) ([2]*wgpu.TextureView, [2]*wgpu.Texture, error) {
	f.storagePairs++
	return [2]*wgpu.TextureView{}, [2]*wgpu.Texture{}, nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {}
func (f *fakeBackend) BeginFrame() error                                     { return nil }

func (f *fakeBackend) EncodeComputePass(p pipeline.Pipeline, computeProvider bind_group_provider.BindGroupProvider, workGroupCount [3]uint32) {
}

func (f *fakeBackend) BeginRenderPass() {}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) {
}

func (f *fakeBackend) EndFrame() error { return nil }
func (f *fakeBackend) Present()        {}

// newTestRenderer wires a renderer around the fake backend without GPU setup.
func newTestRenderer(f *fakeBackend) *renderer {
	return &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backend:       f,
		logger:        common.NewNopLogger(),
	}
}

func testRenderPipeline(key string) pipeline.Pipeline {
	vs := shader.NewShader(key+"_vs", shader.ShaderTypeVertex, "@vertex fn vs_main() {}")
	fs := shader.NewShader(key+"_fs", shader.ShaderTypeFragment, "@fragment fn fs_main() {}")
	return pipeline.NewPipeline(key, pipeline.PipelineTypeRender,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)
}

func testComputePipeline(key string) pipeline.Pipeline {
	cs := shader.NewShader(key+"_cs", shader.ShaderTypeCompute, "@compute fn cs_main() {}")
	return pipeline.NewPipeline(key, pipeline.PipelineTypeCompute,
		pipeline.WithComputeShader(cs),
	)
}

func TestResizeRebuildsRenderPipelinesOnSampleCountChange(t *testing.T) {
	f := &fakeBackend{samples: 4}
	r := newTestRenderer(f)

	require.NoError(t, r.RegisterPipelines(testRenderPipeline("meadow_draw"), testComputePipeline("meadow_sim")))
	require.Equal(t, []string{"meadow_draw"}, f.renderRegisters)

	// The reconfiguration loses the multisampled targets, so the cached render
	// pipeline must be rebuilt at the new sample count. The compute pipeline
	// does not depend on the attachments and stays as it is.
	f.degradeOnConfigure = true
	r.Resize(800, 600)

	assert.Equal(t, []string{"meadow_draw", "meadow_draw"}, f.renderRegisters)
	assert.Equal(t, []string{"meadow_sim"}, f.computeRegisters)
}

func TestResizeKeepsPipelinesWhenSampleCountUnchanged(t *testing.T) {
	f := &fakeBackend{samples: 4}
	r := newTestRenderer(f)

	require.NoError(t, r.RegisterPipelines(testRenderPipeline("meadow_draw")))
	r.Resize(1920, 1080)

	assert.Equal(t, [][2]int{{1920, 1080}}, f.configures)
	assert.Equal(t, []string{"meadow_draw"}, f.renderRegisters)
}

func TestResizeReconfiguresSurfaceWithNewDimensions(t *testing.T) {
	f := &fakeBackend{samples: 4}
	r := newTestRenderer(f)

	r.Resize(640, 480)
	r.Resize(2560, 1440)

	assert.Equal(t, [][2]int{{640, 480}, {2560, 1440}}, f.configures)
}

func TestResizeLeavesStorageTexturePairAlone(t *testing.T) {
	f := &fakeBackend{samples: 4}
	r := newTestRenderer(f)

	_, _, err := r.CreateStorageTexturePair("Field", 1024, 1024)
	require.NoError(t, err)
	require.Equal(t, 1, f.storagePairs)

	// Surface reconfiguration rebuilds the render targets only; the simulation
	// textures keep their size and contents.
	r.Resize(640, 480)
	r.Resize(1280, 720)

	assert.Equal(t, 1, f.storagePairs)
}

func TestRenderTargetsReleaseSafeOnPartialSet(t *testing.T) {
	// A build that fails half way cleans up through release, so it must
	// tolerate nil views, nil textures, and a nil receiver.
	tg := &renderTargets{width: 1280, height: 720}
	tg.release()
	assert.Nil(t, tg.msaaColorView)
	assert.Nil(t, tg.resolveDepthView)

	var none *renderTargets
	none.release()
}
