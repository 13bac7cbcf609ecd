package common

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// LoadTexture decodes the first readable image among the candidate paths into
// RGBA staging data with a full mip chain. Supports PNG and JPEG.
//
// Parameters:
//   - paths: candidate file paths, tried in order
//
// Returns:
//   - *TextureStagingData: decoded pixels plus generated mip levels
//   - error: error if no candidate could be opened and decoded
func LoadTexture(paths ...string) (*TextureStagingData, error) {
	var lastErr error
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(file)
		file.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to decode texture file %s: %w", path, err)
			continue
		}
		return stageImage(img), nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no texture paths provided")
	}
	return nil, fmt.Errorf("failed to load texture: %w", lastErr)
}

// CheckerTexture generates a procedural two-tone checkerboard as a stand-in when
// no texture file is available. The result carries a full mip chain.
//
// Parameters:
//   - size: width and height in pixels (power of two recommended)
//   - cells: number of checker cells along each axis
//   - a, b: the two cell colors as RGBA
//
// Returns:
//   - *TextureStagingData: generated pixels plus mip levels
func CheckerTexture(size, cells int, a, b [4]byte) *TextureStagingData {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := img.PixOffset(x, y)
			copy(img.Pix[i:i+4], c[:])
		}
	}
	return stageImage(img)
}

// stageImage converts an image to RGBA staging data and builds its mip chain by
// repeated half-size CatmullRom downscales.
func stageImage(img image.Image) *TextureStagingData {
	bounds := img.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(base, base.Bounds(), img, bounds.Min, xdraw.Src)

	staged := &TextureStagingData{
		Pixels: base.Pix,
		Width:  uint32(base.Bounds().Dx()),
		Height: uint32(base.Bounds().Dy()),
	}

	prev := base
	for prev.Bounds().Dx() > 1 || prev.Bounds().Dy() > 1 {
		w := max(prev.Bounds().Dx()/2, 1)
		h := max(prev.Bounds().Dy()/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(next, next.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		staged.MipLevels = append(staged.MipLevels, next.Pix)
		prev = next
	}
	return staged
}

// MipLevelCount returns the number of mip levels for a texture of the given
// dimensions, including the base level.
func MipLevelCount(width, height uint32) uint32 {
	levels := uint32(1)
	for width > 1 || height > 1 {
		width = max(width/2, 1)
		height = max(height/2, 1)
		levels++
	}
	return levels
}
