package service

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Scans narrower than this are upscaled; Tesseract misses handwriting on
// low-resolution phone photos.
const minOCRWidth = 1000

// ImagePreprocessor prepares a scanned document for OCR: grayscale, upscale
// of small scans, gamma darkening of faint pen strokes and a sharpening
// pass to restore edge contrast.
type ImagePreprocessor struct {
	debugDir string
}

// NewImagePreprocessor creates a preprocessor. When debugDir is non-empty,
// every prepared bitmap is also written there for inspection.
func NewImagePreprocessor(debugDir string) *ImagePreprocessor {
	return &ImagePreprocessor{debugDir: debugDir}
}

// Prepare decodes raw image bytes and runs the OCR preparation chain.
func (p *ImagePreprocessor) Prepare(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return p.PrepareImage(img), nil
}

// PrepareImage runs the preparation chain on an already-decoded image.
func (p *ImagePreprocessor) PrepareImage(img image.Image) image.Image {
	out := imaging.Grayscale(img)

	if out.Bounds().Dx() < minOCRWidth {
		out = imaging.Resize(out, minOCRWidth, 0, imaging.Lanczos)
	}

	// Gamma below 1 darkens faint strokes without crushing the paper
	// background.
	out = imaging.AdjustGamma(out, 0.8)
	out = imaging.Sharpen(out, 3.0)

	if p.debugDir != "" {
		path := filepath.Join(p.debugDir, "debug_preprocessed.png")
		if err := imaging.Save(out, path); err != nil {
			log.Printf("Failed to save debug image: %v", err)
		}
	}

	return out
}
