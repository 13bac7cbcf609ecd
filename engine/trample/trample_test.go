package trample

import (
	"math"
	"testing"

	"github.com/rita19f/meadow/engine/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTexelStepPressUnderInteractor(t *testing.T) {
	p := NewParams(1.0)

	// Directly under the interactor the field jumps to full strength.
	got := TexelStep(0, 0, p, 1.0/60.0)
	assert.InDelta(t, float64(p.FlattenStrength), float64(got), 1e-6)

	// At the edge of the radius the press is still at full strength.
	got = TexelStep(0, p.InteractorRadius, p, 1.0/60.0)
	assert.InDelta(t, float64(p.FlattenStrength), float64(got), 1e-6)

	// Past the band the press has no effect and the texel just decays.
	got = TexelStep(0.5, p.InteractorRadius+p.BandWidth+0.01, p, 1.0/60.0)
	assert.Less(t, got, float32(0.5))
}

func TestTexelStepNeverOvershoots(t *testing.T) {
	p := NewParams(1.0)

	for dist := float32(0); dist < 3.0; dist += 0.05 {
		v := float32(0)
		for i := 0; i < 200; i++ {
			v = TexelStep(v, dist, p, 1.0/60.0)
			require.LessOrEqual(t, v, p.FlattenStrength, "field value must never exceed flatten strength")
			require.GreaterOrEqual(t, v, float32(0))
		}
	}
}

func TestTexelStepPressIsMonotoneInDistance(t *testing.T) {
	p := NewParams(1.0)

	prev := float32(math.Inf(1))
	for dist := float32(0); dist < p.InteractorRadius+p.BandWidth; dist += 0.01 {
		v := TexelStep(0, dist, p, 1.0/60.0)
		assert.LessOrEqual(t, v, prev, "press value must not increase with distance")
		prev = v
	}
}

func TestTexelStepDecayLaw(t *testing.T) {
	p := NewParams(1.0)
	far := p.InteractorRadius + p.BandWidth + 5.0

	v := float32(1.0)
	dt := float32(0.5)
	got := TexelStep(v, far, p, dt)
	want := float32(math.Exp(float64(-p.DecayRate * dt)))
	assert.InDelta(t, float64(want), float64(got), 1e-6)

	// Decay compounds across steps.
	got = TexelStep(got, far, p, dt)
	assert.InDelta(t, float64(want*want), float64(got), 1e-6)
}

func TestFieldPingPongParity(t *testing.T) {
	var f Field

	require.Equal(t, 0, f.ReadIndex())
	require.Equal(t, 1, f.WriteIndex())

	f.Swap()
	assert.Equal(t, 1, f.ReadIndex())
	assert.Equal(t, 0, f.WriteIndex())
	assert.Equal(t, uint64(1), f.Generation())

	f.Swap()
	assert.Equal(t, 0, f.ReadIndex())
	assert.Equal(t, 1, f.WriteIndex())

	// Read and write never alias.
	for i := 0; i < 5; i++ {
		assert.NotEqual(t, f.ReadIndex(), f.WriteIndex())
		f.Swap()
	}
}

func TestWorldUVRoundTrip(t *testing.T) {
	u, v := WorldToUV(geometry.GroundMin, geometry.GroundMin)
	assert.InDelta(t, 0, float64(u), 1e-6)
	assert.InDelta(t, 0, float64(v), 1e-6)

	u, v = WorldToUV(geometry.GroundMax, geometry.GroundMax)
	assert.InDelta(t, 1, float64(u), 1e-6)
	assert.InDelta(t, 1, float64(v), 1e-6)

	u, v = WorldToUV(0, 0)
	assert.InDelta(t, 0.5, float64(u), 1e-6)
	assert.InDelta(t, 0.5, float64(v), 1e-6)

	x, z := UVToWorld(0.25, 0.75)
	u, v = WorldToUV(x, z)
	assert.InDelta(t, 0.25, float64(u), 1e-6)
	assert.InDelta(t, 0.75, float64(v), 1e-6)
}

func TestDispatchCoversField(t *testing.T) {
	d := DispatchSize()

	assert.Equal(t, uint32(FieldSize/WorkgroupSize), d[0])
	assert.Equal(t, d[0], d[1])
	assert.Equal(t, uint32(1), d[2])
	assert.Equal(t, uint32(FieldSize), d[0]*WorkgroupSize, "workgroups must tile the field exactly")
}

func TestNewParamsDerivesBand(t *testing.T) {
	p := NewParams(2.0)

	assert.InDelta(t, float64(2.0*BandWidthFactor), float64(p.BandWidth), 1e-6)
	assert.Equal(t, DefaultFlattenStrength, p.FlattenStrength)
	assert.Equal(t, DefaultDecayRate, p.DecayRate)
}
