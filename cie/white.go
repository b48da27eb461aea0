// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/colorio/mat3"
)

// Whitepoints of the CIE standard illuminants for the
// CIE 1931 2 degree observer, normalized to Y = 100.
var (
	WhiteA   = mat3.Vec3{109.850, 100, 35.585}
	WhiteC   = mat3.Vec3{98.074, 100, 118.232}
	WhiteD50 = mat3.Vec3{96.422, 100, 82.521}
	WhiteD55 = mat3.Vec3{95.682, 100, 92.149}
	WhiteD65 = mat3.Vec3{95.047, 100, 108.883}
	WhiteD75 = mat3.Vec3{94.972, 100, 122.638}
	WhiteE   = mat3.Vec3{100, 100, 100}
	WhiteF2  = mat3.Vec3{99.186, 100, 67.393}
	WhiteF7  = mat3.Vec3{95.041, 100, 108.747}
	WhiteF11 = mat3.Vec3{100.962, 100, 64.350}
)

var whitepoints = map[string]mat3.Vec3{
	"A":   WhiteA,
	"C":   WhiteC,
	"D50": WhiteD50,
	"D55": WhiteD55,
	"D65": WhiteD65,
	"D75": WhiteD75,
	"E":   WhiteE,
	"F2":  WhiteF2,
	"F7":  WhiteF7,
	"F11": WhiteF11,
}

// Whitepoint returns the whitepoint of the named illuminant
// (case-insensitive, e.g., "D65").
func Whitepoint(name string) (mat3.Vec3, error) {
	wp, ok := whitepoints[strings.ToUpper(name)]
	if !ok {
		return wp, fmt.Errorf("cie: unknown illuminant %q (known: %s)", name, strings.Join(Illuminants(), ", "))
	}
	return wp, nil
}

// Illuminants returns the sorted names of the known illuminants.
func Illuminants() []string {
	names := make([]string, 0, len(whitepoints))
	for nm := range whitepoints {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}
