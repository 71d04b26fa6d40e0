// Package debug provides frame capture for inspecting rendered output.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FrameCapture writes rendered frames to PNG files.
type FrameCapture struct {
	outputDir string
	prefix    string
}

// NewFrameCapture creates a capture that writes <prefix>_<frame>.png files
// into outputDir. An empty outputDir means the working directory.
func NewFrameCapture(outputDir, prefix string) *FrameCapture {
	return &FrameCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// Filename returns the path a given frame is written to.
func (fc *FrameCapture) Filename(frame uint64) string {
	name := fmt.Sprintf("%s_%06d.png", fc.prefix, frame)
	if fc.outputDir != "" {
		name = filepath.Join(fc.outputDir, name)
	}
	return name
}

// SavePixels writes raw RGBA framebuffer data as a PNG.
// pixels must hold width*height*4 bytes with the bottom row first, as
// glReadPixels returns it; the image is flipped while copying.
func (fc *FrameCapture) SavePixels(frame uint64, pixels []byte, width, height int) (string, error) {
	img, err := PixelsToImage(pixels, width, height)
	if err != nil {
		return "", err
	}
	return fc.SaveImage(frame, img)
}

// SaveImage writes an image as the PNG for a frame.
func (fc *FrameCapture) SaveImage(frame uint64, img image.Image) (string, error) {
	if fc.outputDir != "" {
		if err := os.MkdirAll(fc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := fc.Filename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// PixelsToImage converts bottom-up RGBA rows into a top-down image.
func PixelsToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return img, nil
}
