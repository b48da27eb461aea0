// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam implements the CIECAM02 and CAM16 color appearance models
// and their uniform color spaces (UCS, LCD, SCD).
//
// A [View] holds everything that depends only on the viewing conditions
// (whitepoint, surround, background and adapting luminance) and is
// computed once; conversions of individual colors are then cheap and
// free of side effects.
//
// Both models share the post-adaptation formulas; they differ in the
// chromatic adaptation matrix (CAT02 or CAT16) and in whether the
// adapted responses go through the Hunt-Pointer-Estevez cone space
// (CIECAM02 only).
package cam
