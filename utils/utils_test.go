package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"optica-vista-me/utils"
)

func TestSafeImageFileName(t *testing.T) {
	t.Run("sanitizes and keeps extension", func(t *testing.T) {
		name := utils.SafeImageFileName("My Fancy Frame (2).JPG")
		assert.True(t, strings.HasSuffix(name, "-my-fancy-frame-2.jpg"), name)
	})

	t.Run("empty base falls back to image", func(t *testing.T) {
		name := utils.SafeImageFileName("???.png")
		assert.True(t, strings.HasSuffix(name, "-image.png"), name)
	})
}

func TestIsExternalURL(t *testing.T) {
	assert.True(t, utils.IsExternalURL("https://cdn.example.com/f.jpg"))
	assert.True(t, utils.IsExternalURL("http://cdn.example.com/f.jpg"))
	assert.False(t, utils.IsExternalURL("/images/frames/f.jpg"))
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, utils.IsDataURI("data:image/png;base64,AAAA"))
	assert.False(t, utils.IsDataURI("/images/frames/f.jpg"))
}

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		0:       "$0.00",
		9.5:     "$9.50",
		149:     "$149.00",
		1249.99: "$1,249.99",
		1234567: "$1,234,567.00",
		-42.1:   "-$42.10",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.FormatUSD(in))
	}
}
