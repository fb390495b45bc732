// Package imaging downsizes and re-encodes item photos before upload.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // accept png uploads alongside jpeg

	"github.com/nfnt/resize"
)

const (
	// MaxDimension bounds the longer image side after downscaling.
	MaxDimension = 1200
	// MaxEncodedBytes is the target ceiling for the re-encoded payload (0.5 MB).
	MaxEncodedBytes = 512 * 1024

	startQuality = 85
	floorQuality = 25
	qualityStep  = 10
)

// Result is a processed photo: the upload payload plus a locally renderable
// preview so the caller can show the image before any upload happens.
type Result struct {
	Data           []byte
	ContentType    string
	PreviewDataURL string
	Width          int
	Height         int
}

// Process decodes the photo, scales it down so neither dimension exceeds
// MaxDimension and re-encodes it as JPEG, stepping the quality down until the
// payload fits MaxEncodedBytes. If even the floor quality stays over budget
// the smallest attempt is kept rather than failing the intake.
func Process(data []byte) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		if bounds.Dx() >= bounds.Dy() {
			img = resize.Resize(MaxDimension, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, MaxDimension, img, resize.Lanczos3)
		}
	}

	encoded, err := encodeUnderBudget(img)
	if err != nil {
		return nil, err
	}

	final := img.Bounds()
	return &Result{
		Data:           encoded,
		ContentType:    "image/jpeg",
		PreviewDataURL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded),
		Width:          final.Dx(),
		Height:         final.Dy(),
	}, nil
}

func encodeUnderBudget(img image.Image) ([]byte, error) {
	var best []byte
	for quality := startQuality; quality >= floorQuality; quality -= qualityStep {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("error encoding image: %w", err)
		}
		if buf.Len() <= MaxEncodedBytes {
			return buf.Bytes(), nil
		}
		if best == nil || buf.Len() < len(best) {
			best = buf.Bytes()
		}
	}
	return best, nil
}
