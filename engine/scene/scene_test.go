package scene

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rita19f/meadow/common"
	"github.com/rita19f/meadow/engine/camera"
	"github.com/rita19f/meadow/engine/renderer"
	"github.com/rita19f/meadow/engine/renderer/bind_group_provider"
	"github.com/rita19f/meadow/engine/renderer/pipeline"
	"github.com/rita19f/meadow/engine/trample"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records the commands a frame encodes without touching a GPU.
// Errors can be injected per pipeline key to exercise the degraded paths.
type fakeRenderer struct {
	commands    []string
	endFrameErr error
	dispatchErr error

	// registerErrs fails RegisterPipelines for the given pipeline keys.
	registerErrs map[string]error

	// drawErrs fails DrawCall for the given pipeline keys.
	drawErrs map[string]error
}

var _ renderer.Renderer = &fakeRenderer{}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline   { return nil }
func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline { return nil }

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		if err := f.registerErrs[p.PipelineKey()]; err != nil {
			return err
		}
	}
	return nil
}
func (f *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline)    {}
func (f *fakeRenderer) Resize(width, height int)                       {}
func (f *fakeRenderer) SampleCount() uint32                            { return 4 }
func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode)       {}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}

func (f *fakeRenderer) InitInstanceBuffer(provider bind_group_provider.BindGroupProvider, instanceData []byte) error {
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}

func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (f *fakeRenderer) CreateStorageTexturePair(label string, width, height int) ([2]*wgpu.TextureView, [2]*wgpu.Texture, error) {
	return [2]*wgpu.TextureView{}, [2]*wgpu.Texture{}, nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.commands = append(f.commands, "write_buffers")
}

func (f *fakeRenderer) BeginFrame() error {
	f.commands = append(f.commands, "begin_frame")
	return nil
}

func (f *fakeRenderer) DispatchCompute(pipelineKey string, computeProvider bind_group_provider.BindGroupProvider, workGroupCount [3]uint32) error {
	if f.dispatchErr != nil {
		return f.dispatchErr
	}
	f.commands = append(f.commands, "compute:"+pipelineKey)
	return nil
}

func (f *fakeRenderer) BeginRenderPass() {
	f.commands = append(f.commands, "begin_render_pass")
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	if err := f.drawErrs[pipelineKey]; err != nil {
		return err
	}
	f.commands = append(f.commands, "draw:"+pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() error {
	f.commands = append(f.commands, "end_frame")
	return f.endFrameErr
}

func (f *fakeRenderer) Present() {
	f.commands = append(f.commands, "present")
}

// newTestScene wires a scene around the fake renderer without GPU setup.
func newTestScene(f *fakeRenderer) *scene {
	s := &scene{
		mu:       &sync.Mutex{},
		logger:   common.NewNopLogger(),
		cam:      camera.NewCamera(),
		r:        f,
		clock:    newFrameClock(time.Now),
		motion:   CircularMotion(3.0, 1.0, 0.0),
		params:   trample.NewParams(1.0),
		frameBGP: bind_group_provider.NewBindGroupProvider("Test Frame Uniform"),
		disabled: make(map[string]bool),
		warned:   make(map[string]bool),
	}
	s.buildPasses()
	return s
}

func TestUpdateEncodesFrameInOrder(t *testing.T) {
	f := &fakeRenderer{}
	s := newTestScene(f)

	require.NoError(t, s.Update())

	assert.Equal(t, []string{
		"write_buffers",
		"begin_frame",
		"compute:" + trampPipelineKey,
		"begin_render_pass",
		"draw:" + skyPipelineKey,
		"draw:" + groundPipelineKey,
		"draw:" + grassPipelineKey,
		"draw:" + ballPipelineKey,
		"end_frame",
		"present",
	}, f.commands)
}

func TestUpdateSwapsFieldOnSuccess(t *testing.T) {
	f := &fakeRenderer{}
	s := newTestScene(f)

	require.Equal(t, uint64(0), s.field.Generation())

	require.NoError(t, s.Update())
	assert.Equal(t, uint64(1), s.field.Generation())

	require.NoError(t, s.Update())
	assert.Equal(t, uint64(2), s.field.Generation())
}

func TestUpdateKeepsFieldOnSubmitFailure(t *testing.T) {
	f := &fakeRenderer{endFrameErr: errors.New("device lost")}
	s := newTestScene(f)

	err := s.Update()
	require.Error(t, err)

	// A failed submission must not consume a simulation step, and the surface
	// must still be presented to release the swapchain texture.
	assert.Equal(t, uint64(0), s.field.Generation())
	assert.Equal(t, "present", f.commands[len(f.commands)-1])
}

func TestUpdateRendersAllPassesWhenKernelUnavailable(t *testing.T) {
	f := &fakeRenderer{dispatchErr: errors.New(`compute pipeline "trample_update" not found in cache`)}
	s := newTestScene(f)

	// A failing kernel dispatch must not cancel the frame: the field freezes
	// and every render pass still draws.
	require.NoError(t, s.Update())

	assert.NotContains(t, f.commands, "compute:"+trampPipelineKey)
	assert.Contains(t, f.commands, "draw:"+skyPipelineKey)
	assert.Contains(t, f.commands, "draw:"+groundPipelineKey)
	assert.Contains(t, f.commands, "draw:"+grassPipelineKey)
	assert.Contains(t, f.commands, "draw:"+ballPipelineKey)
	assert.Equal(t, uint64(0), s.field.Generation())
	assert.Equal(t, "present", f.commands[len(f.commands)-1])
}

func TestRenderPipelineFailureDisablesOnlyItsPass(t *testing.T) {
	f := &fakeRenderer{registerErrs: map[string]error{groundPipelineKey: errors.New("shader compile failed")}}
	s := newTestScene(f)
	s.initPipelines()

	require.NoError(t, s.Update())

	assert.NotContains(t, f.commands, "draw:"+groundPipelineKey)
	assert.Contains(t, f.commands, "draw:"+skyPipelineKey)
	assert.Contains(t, f.commands, "draw:"+grassPipelineKey)
	assert.Contains(t, f.commands, "draw:"+ballPipelineKey)
	// The unaffected frame still submits and advances the field.
	assert.Equal(t, uint64(1), s.field.Generation())
}

func TestComputePipelineFailureFreezesFieldOnly(t *testing.T) {
	f := &fakeRenderer{registerErrs: map[string]error{trampPipelineKey: errors.New("shader compile failed")}}
	s := newTestScene(f)
	s.initPipelines()

	require.NoError(t, s.Update())
	require.NoError(t, s.Update())

	assert.NotContains(t, f.commands, "compute:"+trampPipelineKey)
	assert.Contains(t, f.commands, "draw:"+grassPipelineKey)
	assert.Equal(t, uint64(0), s.field.Generation())
}

func TestPassEncodeErrorSkipsOnlyThatPass(t *testing.T) {
	f := &fakeRenderer{drawErrs: map[string]error{grassPipelineKey: errors.New("bind group missing")}}
	s := newTestScene(f)

	require.NoError(t, s.Update())

	assert.NotContains(t, f.commands, "draw:"+grassPipelineKey)
	assert.Contains(t, f.commands, "draw:"+skyPipelineKey)
	assert.Contains(t, f.commands, "draw:"+ballPipelineKey)
	assert.Contains(t, f.commands, "end_frame")
	assert.Equal(t, uint64(1), s.field.Generation())
}

func TestPassRecorderSeesEveryPass(t *testing.T) {
	f := &fakeRenderer{}
	s := newTestScene(f)

	var seen []string
	s.recorder = func(name string) { seen = append(seen, name) }

	require.NoError(t, s.Update())
	assert.Equal(t, []string{skyPipelineKey, groundPipelineKey, grassPipelineKey, ballPipelineKey}, seen)
}

func TestToggleFieldDebug(t *testing.T) {
	s := newTestScene(&fakeRenderer{})

	assert.False(t, s.debugShowField)
	s.ToggleFieldDebug()
	assert.True(t, s.debugShowField)
	s.ToggleFieldDebug()
	assert.False(t, s.debugShowField)
}

func TestFrameClockFloorClamp(t *testing.T) {
	current := time.Unix(0, 0)
	clock := newFrameClock(func() time.Time { return current })

	// A frame faster than the floor reports the floor delta.
	current = current.Add(time.Millisecond)
	_, dt := clock.Tick()
	assert.InDelta(t, minFrameDt, float64(dt), 1e-9)

	// A slower frame reports its real delta.
	current = current.Add(100 * time.Millisecond)
	elapsed, dt := clock.Tick()
	assert.InDelta(t, 0.1, float64(dt), 1e-9)
	assert.InDelta(t, 0.101, elapsed, 1e-9)
}

func TestCircularMotionOrbit(t *testing.T) {
	m := CircularMotion(3.0, 1.0, 0.0)

	p0 := m(0)
	assert.InDelta(t, 3.0, float64(p0.X()), 1e-6)
	assert.InDelta(t, 0.0, float64(p0.Y()), 1e-6)
	assert.InDelta(t, 0.0, float64(p0.Z()), 1e-6)

	// Quarter turn lands on the z axis.
	p1 := m(3.14159265358979 / 2)
	assert.InDelta(t, 0.0, float64(p1.X()), 1e-5)
	assert.InDelta(t, 3.0, float64(p1.Z()), 1e-5)

	// The orbit radius is constant.
	for _, tm := range []float64{0.3, 1.7, 4.2} {
		p := m(tm)
		r := p.X()*p.X() + p.Z()*p.Z()
		assert.InDelta(t, 9.0, float64(r), 1e-4)
	}
}

func TestFrameStateMarshalLayout(t *testing.T) {
	fs := FrameState{
		View:             mgl32.Ident4(),
		Proj:             mgl32.Ident4(),
		CameraPos:        mgl32.Vec3{1, 2, 3},
		Time:             42.5,
		SunDirection:     mgl32.Vec3{0, 1, 0},
		Dt:               0.016,
		InteractorRadius: 1.5,
		InteractorPos:    mgl32.Vec3{4, 5, 6},
		GroundMin:        mgl32.Vec2{-15, -15},
		GroundMax:        mgl32.Vec2{15, 15},
		DebugShowField:   1.0,
	}

	buf := fs.Marshal()
	require.Len(t, buf, FrameStateSize)

	assert.InDelta(t, 1.0, float64(readF32(buf, 0)), 1e-6, "view[0][0]")
	assert.InDelta(t, 1.0, float64(readF32(buf, 64)), 1e-6, "proj[0][0]")
	assert.InDelta(t, 1.0, float64(readF32(buf, 128)), 1e-6, "camera_pos.x")
	assert.InDelta(t, 42.5, float64(readF32(buf, 140)), 1e-6, "time")
	assert.InDelta(t, 0.016, float64(readF32(buf, 156)), 1e-6, "dt")
	assert.InDelta(t, 1.5, float64(readF32(buf, 172)), 1e-6, "interactor_radius")
	assert.InDelta(t, 4.0, float64(readF32(buf, 208)), 1e-6, "interactor_pos.x")
	assert.InDelta(t, -15.0, float64(readF32(buf, 224)), 1e-6, "ground_min.x")
	assert.InDelta(t, 15.0, float64(readF32(buf, 232)), 1e-6, "ground_max.x")
	assert.InDelta(t, 1.0, float64(readF32(buf, 248)), 1e-6, "debug_show_field")
}

func readF32(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}
