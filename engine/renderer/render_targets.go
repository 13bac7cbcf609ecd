package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// renderTargets holds the offscreen attachments for the main render pass: a
// multisampled color target, a multisampled depth target, and a single-sample
// depth target used when multisampling is unavailable. All three are sized to
// the surface and rebuilt together on resize.
type renderTargets struct {
	msaaColorTexture *wgpu.Texture
	msaaColorView    *wgpu.TextureView

	msaaDepthTexture *wgpu.Texture
	msaaDepthView    *wgpu.TextureView

	resolveDepthTexture *wgpu.Texture
	resolveDepthView    *wgpu.TextureView

	width  uint32
	height uint32
}

// depthFormat is the depth attachment format used by every render pipeline.
const depthFormat = wgpu.TextureFormatDepth24Plus

// buildRenderTargets creates the full attachment set for the given surface size.
// Existing targets must be released by the caller first. When sampleCount is 1
// only the single-sample depth target is created and the MSAA fields stay nil.
//
// Parameters:
//   - device: the GPU device to allocate on
//   - format: the surface color format
//   - width, height: surface size in pixels
//   - sampleCount: MSAA sample count for the color and depth targets
//
// Returns:
//   - *renderTargets: the created attachment set
//   - error: an error if any texture or view could not be created
func buildRenderTargets(device *wgpu.Device, format wgpu.TextureFormat, width, height int, sampleCount uint32) (*renderTargets, error) {
	t := &renderTargets{
		width:  uint32(width),
		height: uint32(height),
	}

	if sampleCount > 1 {
		var err error
		t.msaaColorTexture, err = device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Color Target",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   sampleCount,
			Dimension:     wgpu.TextureDimension2D,
			Format:        format,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			t.release()
			return nil, fmt.Errorf("failed to create MSAA color target: %w", err)
		}
		t.msaaColorView, err = t.msaaColorTexture.CreateView(nil)
		if err != nil {
			t.release()
			return nil, fmt.Errorf("failed to create MSAA color view: %w", err)
		}

		t.msaaDepthTexture, err = device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Depth Target",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   sampleCount,
			Dimension:     wgpu.TextureDimension2D,
			Format:        depthFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			t.release()
			return nil, fmt.Errorf("failed to create MSAA depth target: %w", err)
		}
		t.msaaDepthView, err = t.msaaDepthTexture.CreateView(nil)
		if err != nil {
			t.release()
			return nil, fmt.Errorf("failed to create MSAA depth view: %w", err)
		}
	}

	// Single-sample depth target, used as the depth attachment when MSAA is
	// unavailable. Always created so the fallback path never allocates mid-frame.
	resolveDepthTexture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Resolve Depth Target",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.release()
		return nil, fmt.Errorf("failed to create resolve depth target: %w", err)
	}
	t.resolveDepthTexture = resolveDepthTexture
	t.resolveDepthView, err = resolveDepthTexture.CreateView(nil)
	if err != nil {
		t.release()
		return nil, fmt.Errorf("failed to create resolve depth view: %w", err)
	}

	return t, nil
}

// release frees every texture and view held by the target set. Safe to call on a
// partially built set.
func (t *renderTargets) release() {
	if t == nil {
		return
	}
	if t.msaaColorView != nil {
		t.msaaColorView.Release()
		t.msaaColorView = nil
	}
	if t.msaaColorTexture != nil {
		t.msaaColorTexture.Release()
		t.msaaColorTexture = nil
	}
	if t.msaaDepthView != nil {
		t.msaaDepthView.Release()
		t.msaaDepthView = nil
	}
	if t.msaaDepthTexture != nil {
		t.msaaDepthTexture.Release()
		t.msaaDepthTexture = nil
	}
	if t.resolveDepthView != nil {
		t.resolveDepthView.Release()
		t.resolveDepthView = nil
	}
	if t.resolveDepthTexture != nil {
		t.resolveDepthTexture.Release()
		t.resolveDepthTexture = nil
	}
}
