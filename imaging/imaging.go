// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package imaging

import (
	"github.com/keel-ml/keel/internal/imaging"
)

// Loader errors.
var (
	ErrUnsupportedFormat = imaging.ErrUnsupportedFormat
	ErrDimensionMismatch = imaging.ErrDimensionMismatch
)

// Loader decodes image files into pixel matrices.
type Loader = imaging.Loader

// Matrix is a caller-owned destination for decoded pixel data,
// stored column-per-image.
type Matrix = imaging.Matrix

// Info reports the dimensions of loaded pixel data.
type Info = imaging.Info

// NewLoader creates a Loader that keeps native image dimensions.
func NewLoader() *Loader {
	return imaging.NewLoader()
}

// NewLoaderWithSize creates a Loader that resamples every image to
// width x height and converts to the given channel count.
func NewLoaderWithSize(width, height, channels int) *Loader {
	return imaging.NewLoaderWithSize(width, height, channels)
}

// IsSupportedFormat reports whether the path's extension matches one of
// the recognized image formats, without opening the file.
func IsSupportedFormat(path string) bool {
	return imaging.IsSupportedFormat(path)
}

// Formats returns the recognized extensions in sorted order.
func Formats() []string {
	return imaging.Formats()
}

// ImageFiles enumerates the supported image files directly inside dir,
// in directory order.
func ImageFiles(dir string) ([]string, error) {
	return imaging.ImageFiles(dir)
}
