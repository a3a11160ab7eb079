package libio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type ImageOptions struct {
	// Flip rows so that the first row is the bottom of the image,
	// matching the OpenGL texture coordinate origin.
	FlipVertically bool
}

// DecodeImage decodes any registered image format into tightly packed RGBA.
// The returned format name is the one reported by image.Decode.
func DecodeImage(r io.Reader, opts ImageOptions) (*image.RGBA, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	if opts.FlipVertically {
		FlipVertically(dst)
	}

	return dst, format, nil
}

func LoadImage(name string, opts ImageOptions) (*image.RGBA, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := DecodeImage(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

func FlipVertically(img *image.RGBA) {
	h := img.Rect.Dy()
	rowBytes := img.Rect.Dx() * 4
	tmp := make([]byte, rowBytes)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowBytes]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
