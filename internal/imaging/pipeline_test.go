package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestProcessKeepsSmallImages(t *testing.T) {
	result, err := Process(encodePNG(t, gradientImage(640, 480)))
	require.NoError(t, err)
	require.Equal(t, 640, result.Width)
	require.Equal(t, 480, result.Height)
	require.Equal(t, "image/jpeg", result.ContentType)
	require.LessOrEqual(t, len(result.Data), MaxEncodedBytes)
}

func TestProcessDownscalesWideImage(t *testing.T) {
	result, err := Process(encodePNG(t, gradientImage(2400, 1600)))
	require.NoError(t, err)
	require.Equal(t, MaxDimension, result.Width, "the longer side lands exactly on the bound")
	require.LessOrEqual(t, result.Height, MaxDimension)
	require.LessOrEqual(t, len(result.Data), MaxEncodedBytes)
}

func TestProcessDownscalesTallImage(t *testing.T) {
	result, err := Process(encodePNG(t, gradientImage(900, 2000)))
	require.NoError(t, err)
	require.Equal(t, MaxDimension, result.Height)
	require.LessOrEqual(t, result.Width, MaxDimension)
}

func TestProcessAcceptsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradientImage(300, 200), nil))

	result, err := Process(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 300, result.Width)
}

func TestProcessPreviewIsDataURL(t *testing.T) {
	result, err := Process(encodePNG(t, gradientImage(100, 100)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.PreviewDataURL, "data:image/jpeg;base64,"))
	require.Greater(t, len(result.PreviewDataURL), len("data:image/jpeg;base64,"))
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process([]byte("definitely not an image"))
	require.Error(t, err)

	_, err = Process(nil)
	require.Error(t, err)
}
