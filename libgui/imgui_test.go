package libgui

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
)

func TestScissorRect(t *testing.T) {
	x, y, w, h := scissorRect(imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, 600)
	assert.Equal(t, []int{10, 530, 100, 50}, []int{x, y, w, h})

	// clip rects reaching past the framebuffer are clamped at the bottom
	_, y, _, _ = scissorRect(imgui.Vec4{X: 0, Y: 0, Z: 10, W: 700}, 600)
	assert.Equal(t, 0, y)
}

func TestIndexType(t *testing.T) {
	assert.Equal(t, uint32(gl.UNSIGNED_SHORT), indexTypeFor(2))
	assert.Equal(t, uint32(gl.UNSIGNED_INT), indexTypeFor(4))
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), indexTypeFor(1))
}

func TestFontAtlasWrapsPixels(t *testing.T) {
	context := imgui.CreateContext(nil)
	defer context.Destroy()

	img := fontAtlas(imgui.CurrentIO())
	data := imgui.CurrentIO().Fonts().TextureDataRGBA32()
	assert.Equal(t, data.Width, img.Rect.Dx())
	assert.Equal(t, data.Height, img.Rect.Dy())
	assert.Len(t, img.Pix, data.Width*data.Height*4)
	assert.Equal(t, data.Width*4, img.Stride)
}
