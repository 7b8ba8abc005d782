package service_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica-vista-me/service"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageService_UploadStoresOptimizedJPEG(t *testing.T) {
	dir := t.TempDir()
	svc, err := service.NewImageService(dir)
	require.NoError(t, err)

	webPath, err := svc.Upload(pngBytes(t, 40, 40), "My Frame Photo.png", "frames", service.MaxSingleImageBytes)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(webPath, "/images/frames/"), webPath)
	assert.True(t, strings.HasSuffix(webPath, ".jpg"), webPath)

	diskPath, ok := svc.ResolveFile(webPath)
	require.True(t, ok)
	_, err = os.Stat(diskPath)
	assert.NoError(t, err)
}

func TestImageService_UploadValidation(t *testing.T) {
	svc, err := service.NewImageService(t.TempDir())
	require.NoError(t, err)

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := svc.Upload(nil, "x.png", "frames", service.MaxSingleImageBytes)
		assert.ErrorIs(t, err, service.ErrInvalidImage)
	})

	t.Run("rejects non-image payload", func(t *testing.T) {
		_, err := svc.Upload([]byte("<html>not an image</html>"), "x.png", "frames", service.MaxSingleImageBytes)
		assert.ErrorIs(t, err, service.ErrInvalidImage)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		data := pngBytes(t, 40, 40)
		_, err := svc.Upload(data, "x.png", "frames", len(data)-1)
		assert.ErrorIs(t, err, service.ErrInvalidImage)
	})
}

func TestImageService_DeleteBestEffortSemantics(t *testing.T) {
	svc, err := service.NewImageService(t.TempDir())
	require.NoError(t, err)

	t.Run("external URL is a no-op success", func(t *testing.T) {
		assert.NoError(t, svc.Delete("https://cdn.example.com/f.jpg"))
	})

	t.Run("data URI is a no-op success", func(t *testing.T) {
		assert.NoError(t, svc.Delete("data:image/png;base64,AAAA"))
	})

	t.Run("already-missing file counts as released", func(t *testing.T) {
		assert.NoError(t, svc.Delete("/images/frames/never-existed.jpg"))
	})

	t.Run("stored file is removed", func(t *testing.T) {
		webPath, err := svc.Upload(pngBytes(t, 20, 20), "gone.png", "frames", service.MaxSingleImageBytes)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(webPath))

		diskPath, ok := svc.ResolveFile(webPath)
		require.True(t, ok)
		_, statErr := os.Stat(diskPath)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestImageService_ResolveFileRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	svc, err := service.NewImageService(dir)
	require.NoError(t, err)

	_, ok := svc.ResolveFile("/images/../../etc/passwd")
	assert.False(t, ok)

	_, ok = svc.ResolveFile("/other/path.jpg")
	assert.False(t, ok)

	got, ok := svc.ResolveFile("/images/frames/a.jpg")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "frames", "a.jpg"), got)
}

func TestOptimizeImage_ResizesLargeImages(t *testing.T) {
	data := pngBytes(t, 700, 350)

	out, err := service.OptimizeImage(data, "thumb")
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}
