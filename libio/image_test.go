package libio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"learn-gl/libio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPng(t *testing.T) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(0, 2, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 2, color.NRGBA{0, 0, 255, 255})
	buf := bytes.NewBuffer(nil)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	data := encodeTestPng(t)

	img, format, err := libio.DecodeImage(bytes.NewReader(data), libio.ImageOptions{})
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 2, img.Rect.Dx())
	assert.Equal(t, 3, img.Rect.Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(1, 2))
}

func TestDecodeImageFlipped(t *testing.T) {
	data := encodeTestPng(t)

	img, _, err := libio.DecodeImage(bytes.NewReader(data), libio.ImageOptions{FlipVertically: true})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 2))
}

func TestDecodeImageGarbage(t *testing.T) {
	_, _, err := libio.DecodeImage(bytes.NewReader([]byte("not an image")), libio.ImageOptions{})
	assert.Error(t, err)
}

func TestLoadImageMissing(t *testing.T) {
	_, err := libio.LoadImage("testdata/does_not_exist.png", libio.ImageOptions{})
	assert.Error(t, err)
}
