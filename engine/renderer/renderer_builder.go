package renderer

import (
	"github.com/rita19f/meadow/common"

	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option used to configure a Renderer during construction.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the initial present mode for the Renderer's surface.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that sets the present mode on the Renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the Renderer.
// Defaults to MSAA4x when not specified. When the adapter cannot create the
// multisampled targets the backend falls back to single-sample rendering.
//
// Parameters:
//   - samples: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that sets the MSAA sample count on the Renderer
func WithMSAA(samples MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &samples
	}
}

// WithClearColor sets the color the main render pass clears to each frame.
// Defaults to opaque black when not specified.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that sets the clear color on the Renderer
func WithClearColor(c wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingClearColor = &c
	}
}

// WithLogger sets the logger used by the Renderer and its backend.
// Defaults to a standard logger with the "renderer" prefix when not specified.
//
// Parameters:
//   - logger: the Logger to use
//
// Returns:
//   - RendererBuilderOption: a function that sets the logger on the Renderer
func WithLogger(logger common.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = logger
	}
}

// WithForceSoftwareRenderer forces the Renderer to request a fallback (software) adapter.
// Useful for headless environments or driver debugging.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that sets the fallback adapter flag on the Renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
