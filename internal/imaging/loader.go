package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/keel-ml/keel/internal/parallel"
	"github.com/keel-ml/keel/internal/tensor"
)

// Loader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDimensionMismatch = errors.New("image dimensions mismatch")
)

// Info reports the dimensions of pixel data as stored in the destination
// matrix (after any configured resampling and channel conversion).
type Info struct {
	Width    int
	Height   int
	Channels int
}

// Loader decodes image files into pixel matrices.
//
// A zero-target loader (NewLoader) keeps every image's native dimensions;
// batch loads then require all images to agree with the first. A sized
// loader (NewLoaderWithSize) resamples every image to the target width and
// height, so batches of mixed sizes load without error.
//
// All failure modes are reported through the error return. No call panics
// and no call retries: a single failed decode aborts the whole batch.
//
// A Loader holds no per-call state and is safe for concurrent use as long
// as each call uses a distinct destination.
type Loader struct {
	width    int // target width, 0 = native
	height   int // target height, 0 = native
	channels int // target channel count, 0 = native
	par      parallel.Config
}

// NewLoader creates a Loader that keeps native image dimensions.
func NewLoader() *Loader {
	return &Loader{par: parallel.IOConfig()}
}

// NewLoaderWithSize creates a Loader that resamples every image to
// width x height and converts to the given channel count (1, 3 or 4;
// 0 keeps the native channel count).
func NewLoaderWithSize(width, height, channels int) *Loader {
	return &Loader{
		width:    width,
		height:   height,
		channels: channels,
		par:      parallel.IOConfig(),
	}
}

// Load decodes the image at path into dst as a single column.
func (l *Loader) Load(path string, flipVertical bool, dst *Matrix) error {
	_, err := l.LoadInfo(path, flipVertical, dst)
	return err
}

// LoadInfo decodes the image at path into dst and reports the stored
// width, height and channel count.
func (l *Loader) LoadInfo(path string, flipVertical bool, dst *Matrix) (Info, error) {
	if err := l.validate(); err != nil {
		return Info{}, err
	}

	img, native, err := l.decodeOne(path)
	if err != nil {
		return Info{}, fmt.Errorf("load %s: %w", path, err)
	}

	channels := l.channels
	if channels == 0 {
		channels = native
	}

	px := packPixels(img, channels, flipVertical)
	raw, err := tensor.NewRaw(tensor.Shape{len(px), 1}, tensor.Uint8, tensor.CPU)
	if err != nil {
		return Info{}, fmt.Errorf("load %s: %w", path, err)
	}
	copy(raw.Data(), px)
	dst.raw = raw

	b := img.Bounds()
	return Info{Width: b.Dx(), Height: b.Dy(), Channels: channels}, nil
}

// LoadFiles decodes a list of same-sized images into dst, one image per
// column, preserving the input order. Any single failure aborts the whole
// call with dst untouched. Without a configured target size, the first
// image fixes the batch dimensions and any mismatch is an error.
//
// Files are decoded in parallel; the observable result is identical to a
// sequential load.
func (l *Loader) LoadFiles(files []string, flipVertical bool, dst *Matrix) error {
	if err := l.validate(); err != nil {
		return err
	}
	if len(files) == 0 {
		dst.raw = nil
		return nil
	}

	imgs := make([]image.Image, len(files))
	natives := make([]int, len(files))
	errs := make([]error, len(files))
	parallel.For(len(files), func(i int) {
		imgs[i], natives[i], errs[i] = l.decodeOne(files[i])
	}, l.par)
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("load %s: %w", files[i], err)
		}
	}

	first := imgs[0].Bounds()
	for i, img := range imgs[1:] {
		b := img.Bounds()
		if b.Dx() != first.Dx() || b.Dy() != first.Dy() {
			return fmt.Errorf("load %s: got %dx%d, want %dx%d: %w",
				files[i+1], b.Dx(), b.Dy(), first.Dx(), first.Dy(), ErrDimensionMismatch)
		}
	}

	channels := l.channels
	if channels == 0 {
		channels = natives[0]
	}

	cols := len(files)
	rows := first.Dx() * first.Dy() * channels
	raw, err := tensor.NewRaw(tensor.Shape{rows, cols}, tensor.Uint8, tensor.CPU)
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}

	// Columns are disjoint, so packing can run in parallel too.
	data := raw.Data()
	parallel.For(cols, func(j int) {
		px := packPixels(imgs[j], channels, flipVertical)
		for i, v := range px {
			data[i*cols+j] = v
		}
	}, l.par)

	dst.raw = raw
	return nil
}

// LoadDir decodes every supported image file directly inside dir (non-
// recursive, in directory order) into dst, one image per column. An empty
// directory succeeds with an empty matrix and no decode is attempted.
func (l *Loader) LoadDir(dir string, flipVertical bool, dst *Matrix) error {
	files, err := ImageFiles(dir)
	if err != nil {
		return err
	}
	return l.LoadFiles(files, flipVertical, dst)
}

// ImageFiles enumerates the supported image files directly inside dir, in
// directory order. Enumeration is decoupled from decoding so batch loads
// can also be driven from synthetic file lists.
func ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedFormat(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// decodeOne decodes a single file, applying the configured resampling.
// The returned channel count is taken from the image as decoded: resampling
// goes through an RGBA scratch image and must not change what counts as the
// file's native format.
func (l *Loader) decodeOne(path string) (image.Image, int, error) {
	if !IsSupportedFormat(path) {
		return nil, 0, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, 0, err
	}
	native := nativeChannels(img)

	b := img.Bounds()
	if l.width > 0 && l.height > 0 && (b.Dx() != l.width || b.Dy() != l.height) {
		img = resize(img, l.width, l.height)
	}
	return img, native, nil
}

// validate rejects channel counts the packer cannot produce.
func (l *Loader) validate() error {
	switch l.channels {
	case 0, 1, 3, 4:
		return nil
	default:
		return fmt.Errorf("unsupported channel count %d (want 1, 3 or 4)", l.channels)
	}
}
