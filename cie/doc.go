// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard whitepoints and the
// elementwise companding curves shared by the CIE color spaces
// (CIELAB, CIELUV), along with sRGB conversions used to construct
// tristimulus inputs.
//
// Tristimulus values are 100-based (Y = 100 for the whitepoint)
// throughout, hence the XYZ100 naming.
package cie
