// Copyright 2026 Keel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imaging loads raster image files into pixel matrices.
//
// # Overview
//
// The loader decodes common raster formats (JPEG, PNG, GIF, BMP) into a
// caller-provided Matrix, stored column-per-image so a batch of images maps
// directly onto the rows-are-features layout the nn package expects.
//
// # Basic Usage
//
//	loader := imaging.NewLoader()
//
//	var m imaging.Matrix
//	if err := loader.Load("photo.png", false, &m); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Batch load a directory, resampling everything to 64x64 RGB.
//	sized := imaging.NewLoaderWithSize(64, 64, 3)
//	if err := sized.LoadDir("./images", false, &m); err != nil {
//	    log.Fatal(err)
//	}
//
// All failures are reported through the error return; a single failed
// decode aborts a whole batch call with the destination untouched.
package imaging
