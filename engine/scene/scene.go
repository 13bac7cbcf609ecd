// Package scene owns the meadow: the sky, ground, grass field, and rolling
// ball, plus the deformation simulation that ties them together. It builds all
// GPU resources up front and drives the per-frame update loop.
package scene

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/rita19f/meadow/common"
	"github.com/rita19f/meadow/engine/camera"
	"github.com/rita19f/meadow/engine/geometry"
	"github.com/rita19f/meadow/engine/renderer"
	"github.com/rita19f/meadow/engine/renderer/bind_group_provider"
	"github.com/rita19f/meadow/engine/renderer/pipeline"
	"github.com/rita19f/meadow/engine/renderer/shader"
	"github.com/rita19f/meadow/engine/trample"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/sky.wgsl
var skySource string

//go:embed assets/ground.wgsl
var groundSource string

//go:embed assets/grass.wgsl
var grassSource string

//go:embed assets/ball.wgsl
var ballSource string

// Pipeline cache keys.
const (
	skyPipelineKey     = "sky"
	groundPipelineKey  = "ground"
	grassPipelineKey   = "grass"
	ballPipelineKey    = "ball"
	trampPipelineKey   = "trample_update"
	fieldTextureLabel  = "Trample Field"
	skyFullscreenVerts = 3
)

// renderPass is one named step of the frame's draw sequence. Passes run in
// slice order between BeginRenderPass and EndFrame.
type renderPass struct {
	name   string
	encode func() error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu     *sync.Mutex
	logger common.Logger

	cam camera.Camera
	r   renderer.Renderer

	clock  *frameClock
	motion MotionSource
	params trample.Params
	field  trample.Field

	sunDirection   mgl32.Vec3
	sunColor       mgl32.Vec3
	lightDirection mgl32.Vec3
	lightColor     mgl32.Vec3

	debugShowField bool

	groundTexturePaths []string

	// frameBGP owns the shared FrameState uniform buffer bound at group 0 of
	// every render pipeline and at binding 0 of the compute bind groups.
	frameBGP  bind_group_provider.BindGroupProvider
	groundBGP bind_group_provider.BindGroupProvider

	// Ping-pong bind groups, indexed by the field's read texture index.
	computeBGP    [2]bind_group_provider.BindGroupProvider
	grassFieldBGP [2]bind_group_provider.BindGroupProvider

	fieldViews    [2]*wgpu.TextureView
	fieldTextures [2]*wgpu.Texture

	skyMesh    bind_group_provider.BindGroupProvider
	groundMesh bind_group_provider.BindGroupProvider
	grassMesh  bind_group_provider.BindGroupProvider
	ballMesh   bind_group_provider.BindGroupProvider

	passes []renderPass

	// disabled holds pipeline keys whose GPU pipeline failed to build. The
	// corresponding pass (or the kernel dispatch) is skipped; every other pass
	// keeps rendering.
	disabled map[string]bool

	// warned tracks per-key warnings already emitted so a permanently missing
	// resource does not flood the log at frame rate.
	warned map[string]bool

	// recorder, when set, observes each pass name as it is encoded.
	recorder func(name string)

	// writePool is reused each frame to avoid per-frame allocations.
	writePool []bind_group_provider.BufferWrite
}

// Scene drives the meadow simulation and rendering.
type Scene interface {
	// Update advances the simulation by one frame and renders it: ticks the
	// clock, moves the interactor, uploads the frame uniform, dispatches the
	// deformation kernel, and encodes the sky, ground, grass, and ball passes.
	// The field's ping-pong textures only swap after the frame was submitted
	// successfully. A kernel or pass that cannot be encoded is skipped with a
	// one-time warning while the remaining passes still render; when the kernel
	// is skipped the field stays frozen at its last state.
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or submitted
	Update() error

	// Resize propagates a new surface size to the renderer and camera. The
	// deformation field keeps its resolution and contents across resizes.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// ToggleFieldDebug flips the debug visualization that renders the raw
	// deformation field onto the grass.
	ToggleFieldDebug()

	// FieldGeneration returns the number of completed simulation steps.
	//
	// Returns:
	//   - uint64: the step count
	FieldGeneration() uint64

	// Release frees all GPU resources owned by the scene.
	Release()
}

var _ Scene = &scene{}

// NewScene creates the meadow scene and allocates every GPU resource it needs:
// meshes, the ground texture, the deformation field textures, all pipelines,
// and all bind groups. Both camera and renderer are required and NewScene
// panics if either is nil or if mesh or bind group allocation fails. A
// pipeline that fails to build does not panic: its pass is disabled with a
// diagnostic and the rest of the scene renders without it.
//
// Parameters:
//   - cam: the camera to render from (must not be nil)
//   - r: the renderer to allocate on and draw with (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:                 &sync.Mutex{},
		cam:                cam,
		r:                  r,
		motion:             CircularMotion(3.0, 1.0, 0.0),
		params:             trample.NewParams(1.0),
		sunDirection:       mgl32.Vec3{0.35, 0.75, 0.25}.Normalize(),
		sunColor:           mgl32.Vec3{1.0, 0.96, 0.85},
		lightDirection:     mgl32.Vec3{-0.4, 0.5, -0.6}.Normalize(),
		lightColor:         mgl32.Vec3{0.25, 0.3, 0.4},
		groundTexturePaths: []string{"assets/ground.png", "assets/ground.jpg"},
		disabled:           make(map[string]bool),
		warned:             make(map[string]bool),
		writePool:          make([]bind_group_provider.BufferWrite, 0, 1),
	}

	for _, option := range options {
		option(s)
	}

	if s.logger == nil {
		s.logger = common.NewDefaultLogger("scene", false)
	}
	if s.clock == nil {
		s.clock = newFrameClock(time.Now)
	}

	s.initPipelines()
	if err := s.initMeshes(); err != nil {
		panic(fmt.Sprintf("scene: failed to init meshes: %v", err))
	}
	if err := s.initBindGroups(); err != nil {
		panic(fmt.Sprintf("scene: failed to init bind groups: %v", err))
	}

	s.buildPasses()
	s.logger.Infof("scene ready: %d grass instances, %dx%d deformation field", geometry.GrassInstanceCount, trample.FieldSize, trample.FieldSize)

	return s
}

// frameLayoutEntry is the group 0 uniform entry shared by every render pipeline.
func frameLayoutEntry() wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: FrameStateSize,
		},
	}
}

// initPipelines registers each pipeline individually. A pipeline that fails to
// build disables only its own pass; the rest of the frame is unaffected.
func (s *scene) initPipelines() {
	frameEntry := frameLayoutEntry()

	skyVS := shader.NewShader("sky_vs", shader.ShaderTypeVertex, FrameStateSource+skySource,
		shader.WithBindGroupLayout(0, frameEntry),
	)
	skyFS := shader.NewShader("sky_fs", shader.ShaderTypeFragment, FrameStateSource+skySource,
		shader.WithBindGroupLayout(0, frameEntry),
	)

	groundVS := shader.NewShader("ground_vs", shader.ShaderTypeVertex, FrameStateSource+groundSource,
		shader.WithBindGroupLayout(0, frameEntry),
		shader.WithVertexLayouts(geometry.VertexLayout()),
	)
	groundFS := shader.NewShader("ground_fs", shader.ShaderTypeFragment, FrameStateSource+groundSource,
		shader.WithBindGroupLayout(0, frameEntry),
		shader.WithBindGroupLayout(1,
			wgpu.BindGroupLayoutEntry{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		),
	)

	grassVS := shader.NewShader("grass_vs", shader.ShaderTypeVertex, FrameStateSource+grassSource,
		shader.WithBindGroupLayout(0, frameEntry),
		shader.WithBindGroupLayout(1,
			wgpu.BindGroupLayoutEntry{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		),
		shader.WithVertexLayouts(geometry.VertexLayout(), geometry.InstanceLayout()),
	)
	grassFS := shader.NewShader("grass_fs", shader.ShaderTypeFragment, FrameStateSource+grassSource,
		shader.WithBindGroupLayout(0, frameEntry),
	)

	ballVS := shader.NewShader("ball_vs", shader.ShaderTypeVertex, FrameStateSource+ballSource,
		shader.WithBindGroupLayout(0, frameEntry),
		shader.WithVertexLayouts(geometry.VertexLayout()),
	)
	ballFS := shader.NewShader("ball_fs", shader.ShaderTypeFragment, FrameStateSource+ballSource,
		shader.WithBindGroupLayout(0, frameEntry),
	)

	trampCS := shader.NewShader("trample_update_cs", shader.ShaderTypeCompute, FrameStateSource+trample.KernelSource,
		shader.WithBindGroupLayout(0,
			wgpu.BindGroupLayoutEntry{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: FrameStateSize,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: wgpu.ShaderStageCompute,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				StorageTexture: wgpu.StorageTextureBindingLayout{
					Access:        wgpu.StorageTextureAccessWriteOnly,
					Format:        wgpu.TextureFormatR32Float,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		),
		shader.WithWorkgroupSize(trample.WorkgroupSize, trample.WorkgroupSize, 1),
	)

	for _, p := range []pipeline.Pipeline{
		pipeline.NewPipeline(skyPipelineKey, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(skyVS),
			pipeline.WithFragmentShader(skyFS),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
		pipeline.NewPipeline(groundPipelineKey, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(groundVS),
			pipeline.WithFragmentShader(groundFS),
		),
		pipeline.NewPipeline(grassPipelineKey, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(grassVS),
			pipeline.WithFragmentShader(grassFS),
			pipeline.WithAlphaToCoverage(true),
		),
		pipeline.NewPipeline(ballPipelineKey, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(ballVS),
			pipeline.WithFragmentShader(ballFS),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(trampPipelineKey, pipeline.PipelineTypeCompute,
			pipeline.WithComputeShader(trampCS),
		),
	} {
		if err := s.r.RegisterPipelines(p); err != nil {
			s.logger.Errorf("pipeline %q failed to build, its pass is disabled: %v", p.PipelineKey(), err)
			s.disabled[p.PipelineKey()] = true
		}
	}
}

func (s *scene) initMeshes() error {
	// Sky is a bufferless fullscreen triangle.
	s.skyMesh = bind_group_provider.NewBindGroupProvider("Sky Mesh")
	s.skyMesh.SetVertexCount(skyFullscreenVerts)

	ground := geometry.GroundPlane()
	s.groundMesh = bind_group_provider.NewBindGroupProvider("Ground Mesh")
	if err := s.r.InitMeshBuffers(s.groundMesh, ground.VertexData(), ground.IndexData(), len(ground.Indices)); err != nil {
		return err
	}

	blade := geometry.GrassBlade()
	s.grassMesh = bind_group_provider.NewBindGroupProvider("Grass Mesh")
	if err := s.r.InitMeshBuffers(s.grassMesh, blade.VertexData(), blade.IndexData(), len(blade.Indices)); err != nil {
		return err
	}
	instances := geometry.GrassInstances(geometry.GrassInstanceCount, 1)
	if err := s.r.InitInstanceBuffer(s.grassMesh, instances); err != nil {
		return err
	}

	ball := geometry.UVSphere(geometry.BallRadius, geometry.SphereSegments, geometry.SphereRings)
	s.ballMesh = bind_group_provider.NewBindGroupProvider("Ball Mesh")
	return s.r.InitMeshBuffers(s.ballMesh, ball.VertexData(), ball.IndexData(), len(ball.Indices))
}

func (s *scene) initBindGroups() error {
	// Shared frame uniform at group 0. The buffer also backs binding 0 of the
	// compute bind groups, so its usage must include the compute stage reads.
	s.frameBGP = bind_group_provider.NewBindGroupProvider("Frame Uniform")
	if err := s.r.InitBindGroup(s.frameBGP, wgpu.BindGroupLayoutDescriptor{
		Label:   "Frame Uniform Layout",
		Entries: []wgpu.BindGroupLayoutEntry{frameLayoutEntry()},
	}, nil, nil); err != nil {
		return err
	}

	// Ground material: texture from disk, checkerboard fallback.
	staging, err := common.LoadTexture(s.groundTexturePaths...)
	if err != nil {
		s.logger.Warnf("ground texture unavailable (%v), using generated checkerboard", err)
		staging = common.CheckerTexture(256, 8, [4]byte{92, 128, 48, 255}, [4]byte{72, 104, 40, 255})
	}
	s.groundBGP = bind_group_provider.NewBindGroupProvider("Ground Material")
	if err := s.r.InitTextureView(s.groundBGP, 0, *staging); err != nil {
		return err
	}
	if err := s.r.InitSampler(s.groundBGP, 1, common.SamplerStagingData{}); err != nil {
		return err
	}
	if err := s.r.InitBindGroup(s.groundBGP, wgpu.BindGroupLayoutDescriptor{
		Label: "Ground Material Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}, nil, nil); err != nil {
		return err
	}

	// Deformation field ping-pong pair.
	s.fieldViews, s.fieldTextures, err = s.r.CreateStorageTexturePair(fieldTextureLabel, trample.FieldSize, trample.FieldSize)
	if err != nil {
		return err
	}

	// One compute bind group per read direction: read holds the previous state,
	// 1-read receives the new one. Binding 0 reuses the frame uniform buffer.
	for read := 0; read < 2; read++ {
		bgp := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("Trample Compute %d", read))
		bgp.SetBuffer(0, s.frameBGP.Buffer(0))
		bgp.SetTextureView(1, s.fieldViews[read])
		bgp.SetTextureView(2, s.fieldViews[1-read])
		if err := s.r.InitBindGroup(bgp, wgpu.BindGroupLayoutDescriptor{
			Label: "Trample Compute Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageCompute,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: FrameStateSize,
					},
				},
				{
					Binding:    1,
					Visibility: wgpu.ShaderStageCompute,
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
				{
					Binding:    2,
					Visibility: wgpu.ShaderStageCompute,
					StorageTexture: wgpu.StorageTextureBindingLayout{
						Access:        wgpu.StorageTextureAccessWriteOnly,
						Format:        wgpu.TextureFormatR32Float,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
			},
		}, nil, nil); err != nil {
			return err
		}
		s.computeBGP[read] = bgp
	}

	// One grass field bind group per read direction so the grass always samples
	// the texture written by the frame's kernel dispatch.
	for read := 0; read < 2; read++ {
		bgp := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("Grass Field %d", read))
		bgp.SetTextureView(0, s.fieldViews[1-read])
		if err := s.r.InitBindGroup(bgp, wgpu.BindGroupLayoutDescriptor{
			Label: "Grass Field Layout",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageVertex,
					Texture: wgpu.TextureBindingLayout{
						SampleType:    wgpu.TextureSampleTypeUnfilterableFloat,
						ViewDimension: wgpu.TextureViewDimension2D,
					},
				},
			},
		}, nil, nil); err != nil {
			return err
		}
		s.grassFieldBGP[read] = bgp
	}

	return nil
}

// buildPasses assembles the frame's draw sequence. Order matters: sky first
// with depth test off, then opaque ground and ball around the grass so the
// alpha-to-coverage blades resolve against a complete depth buffer.
func (s *scene) buildPasses() {
	s.passes = []renderPass{
		{name: skyPipelineKey, encode: func() error {
			return s.r.DrawCall(skyPipelineKey, s.skyMesh, 1, []bind_group_provider.BindGroupProvider{s.frameBGP})
		}},
		{name: groundPipelineKey, encode: func() error {
			return s.r.DrawCall(groundPipelineKey, s.groundMesh, 1, []bind_group_provider.BindGroupProvider{s.frameBGP, s.groundBGP})
		}},
		{name: grassPipelineKey, encode: func() error {
			return s.r.DrawCall(grassPipelineKey, s.grassMesh, geometry.GrassInstanceCount, []bind_group_provider.BindGroupProvider{s.frameBGP, s.grassFieldBGP[s.field.ReadIndex()]})
		}},
		{name: ballPipelineKey, encode: func() error {
			return s.r.DrawCall(ballPipelineKey, s.ballMesh, 1, []bind_group_provider.BindGroupProvider{s.frameBGP})
		}},
	}
}

// runPassGraph encodes every enabled pass. A pass that fails to encode is
// skipped with a one-time warning so the rest of the frame still renders.
func (s *scene) runPassGraph() {
	for _, pass := range s.passes {
		if s.disabled[pass.name] {
			continue
		}
		if s.recorder != nil {
			s.recorder(pass.name)
		}
		if err := pass.encode(); err != nil {
			s.warnOnce(pass.name, "pass %s could not be encoded, skipping it: %v", pass.name, err)
		}
	}
}

// warnOnce logs a warning for the given key only the first time it occurs.
func (s *scene) warnOnce(key, format string, args ...any) {
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.logger.Warnf(format, args...)
}

func (s *scene) Update() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, dt := s.clock.Tick()
	pos := s.motion(t)

	fs := FrameState{
		View:                  s.cam.ViewMatrix(),
		Proj:                  s.cam.ProjectionMatrix(),
		CameraPos:             s.cam.Position(),
		Time:                  float32(t),
		SunDirection:          s.sunDirection,
		Dt:                    dt,
		SunColor:              s.sunColor,
		InteractorRadius:      s.params.InteractorRadius,
		LightDirection:        s.lightDirection,
		DecayRate:             s.params.DecayRate,
		LightColor:            s.lightColor,
		FlattenBandWidth:      s.params.BandWidth,
		InteractorPos:         pos,
		FlattenStrength:       s.params.FlattenStrength,
		GroundMin:             mgl32.Vec2{geometry.GroundMin, geometry.GroundMin},
		GroundMax:             mgl32.Vec2{geometry.GroundMax, geometry.GroundMax},
		ContactShadowRadius:   s.params.InteractorRadius * 0.90,
		ContactShadowStrength: 0.55,
	}
	if s.debugShowField {
		fs.DebugShowField = 1.0
	}

	s.writePool = s.writePool[:0]
	s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
		Provider: s.frameBGP,
		Binding:  0,
		Data:     fs.Marshal(),
	})
	s.r.WriteBuffers(s.writePool)

	if err := s.r.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}

	// A kernel that cannot be dispatched freezes the field at its last state;
	// the render passes still run against it.
	fieldAdvanced := false
	if !s.disabled[trampPipelineKey] {
		if err := s.r.DispatchCompute(trampPipelineKey, s.computeBGP[s.field.ReadIndex()], trample.DispatchSize()); err != nil {
			s.warnOnce(trampPipelineKey, "deformation kernel unavailable, field frozen: %v", err)
		} else {
			fieldAdvanced = true
		}
	}

	s.r.BeginRenderPass()
	s.runPassGraph()

	if err := s.r.EndFrame(); err != nil {
		s.r.Present()
		return fmt.Errorf("end frame: %w", err)
	}

	// The frame that wrote the new field state was submitted, so the written
	// texture becomes the read texture for the next step. A frame whose kernel
	// was skipped wrote nothing and must not flip.
	if fieldAdvanced {
		s.field.Swap()
	}

	s.r.Present()
	return nil
}

func (s *scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}

	s.r.Resize(width, height)
	s.cam.SetAspect(float32(width) / float32(height))
}

func (s *scene) ToggleFieldDebug() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugShowField = !s.debugShowField
	s.logger.Infof("field debug view: %v", s.debugShowField)
}

func (s *scene) FieldGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.Generation()
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The compute and grass field bind groups hold borrowed references to the
	// frame uniform buffer and the field views, which are released exactly once
	// below. Only their bind group objects are released here.
	for _, bgp := range []bind_group_provider.BindGroupProvider{
		s.computeBGP[0], s.computeBGP[1], s.grassFieldBGP[0], s.grassFieldBGP[1],
	} {
		if bgp == nil {
			continue
		}
		if bg := bgp.BindGroup(); bg != nil {
			bg.Release()
		}
		if bgl := bgp.BindGroupLayout(); bgl != nil {
			bgl.Release()
		}
	}

	for i := range s.fieldViews {
		if s.fieldViews[i] != nil {
			s.fieldViews[i].Release()
			s.fieldViews[i] = nil
		}
		if s.fieldTextures[i] != nil {
			s.fieldTextures[i].Release()
			s.fieldTextures[i] = nil
		}
	}

	for _, bgp := range []bind_group_provider.BindGroupProvider{
		s.frameBGP, s.groundBGP, s.skyMesh, s.groundMesh, s.grassMesh, s.ballMesh,
	} {
		if bgp != nil {
			bgp.Release()
		}
	}
}
