package libgl

import (
	"image"
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"learn-gl/libio"
)

type TextureOptions struct {
	WrapS, WrapT int32
	MinFilter    int32
	MagFilter    int32
	Mipmaps      bool
	// Flip rows on load so that uv (0,0) is the bottom left image corner.
	FlipVertically bool
}

var DefaultTextureOptions = TextureOptions{
	WrapS:          gl.REPEAT,
	WrapT:          gl.REPEAT,
	MinFilter:      gl.LINEAR_MIPMAP_LINEAR,
	MagFilter:      gl.LINEAR,
	Mipmaps:        true,
	FlipVertically: true,
}

// Texture is an RGBA8 GL_TEXTURE_2D.
type Texture struct {
	glId          uint32
	Width, Height int
}

func NewTexture2D(img *image.RGBA, opts TextureOptions) *Texture {
	tex := &Texture{
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
	}
	gl.GenTextures(1, &tex.glId)
	State.BindTexture(State.ActiveTextureUnit, tex.glId)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	minFilter := opts.MinFilter
	if !opts.Mipmaps && minFilter != gl.NEAREST && minFilter != gl.LINEAR {
		minFilter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, Pointer(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return tex
}

// LoadTexture decodes an image file and uploads it. On failure the error is
// logged and a texture with id 0 is returned, so callers keep rendering.
func LoadTexture(path string, opts TextureOptions) (*Texture, error) {
	img, err := libio.LoadImage(path, libio.ImageOptions{FlipVertically: opts.FlipVertically})
	if err != nil {
		log.Printf("failed to load texture: %v\n", err)
		return &Texture{}, err
	}
	tex := NewTexture2D(img, opts)
	tex.SetDebugLabel(filepath.Base(path))
	return tex, nil
}

func (tex *Texture) Id() uint32 {
	if tex == nil {
		return 0
	}
	return tex.glId
}

// Bind attaches the texture to the given unit; a nil texture unbinds it.
func (tex *Texture) Bind(unit int) {
	State.BindTexture(unit, tex.Id())
}

func (tex *Texture) Delete() {
	if tex == nil || tex.glId == 0 {
		return
	}
	for i, id := range State.TextureUnits {
		if id == tex.glId {
			State.TextureUnits[i] = 0
		}
	}
	gl.DeleteTextures(1, &tex.glId)
	tex.glId = 0
}
