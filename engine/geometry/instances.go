package geometry

import (
	"encoding/binary"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

// GrassInstanceCount is the number of grass blades scattered across the meadow.
const GrassInstanceCount = 30000

// instanceChunkSize is the number of instances generated per worker task.
// Each chunk seeds its own PRNG from the chunk index so the field layout is
// identical regardless of worker count or scheduling.
const instanceChunkSize = 1024

// GrassInstances generates the per-instance model matrices for every grass blade,
// serialized as InstanceStride-byte column-major mat4x4<f32> values ready for
// upload via Renderer.InitInstanceBuffer. Each blade gets a position inside the
// ground bounds, a yaw rotation, and a height scale around BladeHeightBase. The
// chunks are generated in parallel on a bounded worker pool and the output is
// deterministic for a given seed.
//
// Parameters:
//   - count: the number of instances to generate
//   - seed: base seed for the deterministic placement
//
// Returns:
//   - []byte: count*InstanceStride bytes of instance data
func GrassInstances(count int, seed int64) []byte {
	buf := make([]byte, count*InstanceStride)

	// Workers idle-exit after the timeout, so the pool needs no explicit teardown.
	workers := max(runtime.NumCPU()-1, 1)
	pool := worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < count; start += instanceChunkSize {
		end := min(start+instanceChunkSize, count)

		wg.Add(1)
		chunkStart, chunkEnd := start, end
		id := taskID
		taskID++
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				rng := rand.New(rand.NewSource(seed + int64(chunkStart)))
				for i := chunkStart; i < chunkEnd; i++ {
					mat := grassInstanceMatrix(rng)
					marshalMat4(buf[i*InstanceStride:(i+1)*InstanceStride], mat)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return buf
}

// grassInstanceMatrix composes one blade transform: translate to a random spot
// on the ground plane, rotate around y, and scale the height around
// BladeHeightBase. Width is left at 1 so the taper baked into the mesh is
// preserved.
func grassInstanceMatrix(rng *rand.Rand) mgl32.Mat4 {
	span := GroundMax - GroundMin
	x := GroundMin + rng.Float32()*span
	z := GroundMin + rng.Float32()*span
	yaw := rng.Float32() * 2 * math.Pi
	height := BladeHeightBase + rng.Float32()*0.6

	translate := mgl32.Translate3D(x, GroundY, z)
	rotate := mgl32.HomogRotate3DY(yaw)
	scale := mgl32.Scale3D(1, height, 1)
	return translate.Mul4(rotate).Mul4(scale)
}

// marshalMat4 writes a column-major mat4 into dst as 16 little-endian float32
// values, matching the WGSL mat4x4<f32> instance attribute layout.
func marshalMat4(dst []byte, m mgl32.Mat4) {
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:(i+1)*4], math.Float32bits(m[i]))
	}
}
