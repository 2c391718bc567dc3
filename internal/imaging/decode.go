package imaging

import (
	"fmt"
	"image"
	"os"

	// Registered decoders. The stdlib covers JPEG, PNG and GIF;
	// golang.org/x/image adds BMP. The remaining recognized extensions
	// fail at decode time with image.ErrFormat.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"golang.org/x/image/draw"
)

// decodeFile opens and decodes a single image file.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// resize resamples img to width x height with bilinear interpolation.
func resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// nativeChannels maps a decoded image's color model to a channel count:
// grayscale images report 1, images with an alpha channel 4, everything
// else (YCbCr, paletted, ...) 3.
func nativeChannels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return 4
	default:
		return 3
	}
}

// packPixels flattens an image into interleaved bytes, scanline by scanline.
// channels must be 1 (grayscale), 3 (RGB) or 4 (RGBA). With flipVertical
// set, scanlines are written bottom-up.
func packPixels(img image.Image, channels int, flipVertical bool) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*channels)

	i := 0
	for y := 0; y < h; y++ {
		sy := b.Min.Y + y
		if flipVertical {
			sy = b.Max.Y - 1 - y
		}
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, sy).RGBA()
			switch channels {
			case 1:
				gray := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bl>>8)
				out[i] = uint8(gray + 0.5)
				i++
			case 3:
				out[i] = uint8(r >> 8)
				out[i+1] = uint8(g >> 8)
				out[i+2] = uint8(bl >> 8)
				i += 3
			case 4:
				out[i] = uint8(r >> 8)
				out[i+1] = uint8(g >> 8)
				out[i+2] = uint8(bl >> 8)
				out[i+3] = uint8(a >> 8)
				i += 4
			}
		}
	}
	return out
}
