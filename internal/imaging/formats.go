// Package imaging loads raster images into pixel matrices for ML pipelines.
package imaging

import (
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts is the fixed set of recognized image file extensions.
// The check is purely syntactic: whether a decoder is actually registered
// for a given format is only discovered at load time.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tga":  true,
	".bmp":  true,
	".psd":  true,
	".gif":  true,
	".hdr":  true,
	".pic":  true,
	".pnm":  true,
	".ppm":  true,
	".pgm":  true,
}

// IsSupportedFormat reports whether the path's extension matches one of the
// recognized image formats. The comparison is case-insensitive and the file
// is never opened.
func IsSupportedFormat(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}

// Formats returns the recognized extensions in sorted order.
func Formats() []string {
	exts := make([]string, 0, len(supportedExts))
	for ext := range supportedExts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
