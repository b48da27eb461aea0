// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"fmt"
	"strings"

	"cogentcore.org/colorio/cam"
	"cogentcore.org/colorio/cie"
	"cogentcore.org/colorio/mat3"
)

// builtin are the constructors of the named color spaces, for the
// given whitepoint of the spaces that depend on one.
var builtin = []struct {
	name string
	new  func(wp mat3.Vec3) (ColorSpace, error)
}{
	{"XYZ", func(wp mat3.Vec3) (ColorSpace, error) { return NewXYZ(100) }},
	{"XYZ1", func(wp mat3.Vec3) (ColorSpace, error) { return NewXYZ(1) }},
	{"xyY", func(wp mat3.Vec3) (ColorSpace, error) { return NewXYY(100) }},
	{"xyY1", func(wp mat3.Vec3) (ColorSpace, error) { return NewXYY(1) }},
	{"CIELUV", func(wp mat3.Vec3) (ColorSpace, error) { return NewCIELUV(wp), nil }},
	{"CIELAB", func(wp mat3.Vec3) (ColorSpace, error) { return NewCIELAB(wp), nil }},
	{"CAM02-UCS", camSpace(cam.CAM02, cam.UCS)},
	{"CAM02-LCD", camSpace(cam.CAM02, cam.LCD)},
	{"CAM02-SCD", camSpace(cam.CAM02, cam.SCD)},
	{"CAM16-UCS", camSpace(cam.CAM16, cam.UCS)},
	{"CAM16-LCD", camSpace(cam.CAM16, cam.LCD)},
	{"CAM16-SCD", camSpace(cam.CAM16, cam.SCD)},
	{"OSA-UCS", func(wp mat3.Vec3) (ColorSpace, error) { return NewOsaUcs(), nil }},
	{"IPT", func(wp mat3.Vec3) (ColorSpace, error) { return NewIPT(0.43), nil }},
	{"JzAzBz", func(wp mat3.Vec3) (ColorSpace, error) { return NewJzAzBz(1), nil }},
	{"OKLAB", func(wp mat3.Vec3) (ColorSpace, error) { return NewOKLAB(), nil }},
	{"RLAB", func(wp mat3.Vec3) (ColorSpace, error) {
		var rc RLABConfig
		rc.Defaults()
		rc.Whitepoint = wp
		return NewRLAB(rc)
	}},
}

func camSpace(model cam.Model, variant cam.Variant) func(wp mat3.Vec3) (ColorSpace, error) {
	return func(wp mat3.Vec3) (ColorSpace, error) {
		var vc cam.ViewConfig
		vc.Defaults()
		vc.Whitepoint = wp
		return NewCAMUCS(model, variant, vc)
	}
}

// New returns the named color space (case insensitive) in its default
// configuration, with a D65 whitepoint; see [Names] for the known names.
func New(name string) (ColorSpace, error) {
	return NewWithWhitepoint(name, cie.WhiteD65)
}

// NewWithWhitepoint returns the named color space (case insensitive)
// with the given 100-based whitepoint. Spaces defined for a fixed
// white (XYZ, xyY, OSA-UCS, IPT, JzAzBz, OKLAB) ignore it.
func NewWithWhitepoint(name string, whitepoint mat3.Vec3) (ColorSpace, error) {
	for _, b := range builtin {
		if strings.EqualFold(b.name, name) {
			return b.new(whitepoint)
		}
	}
	return nil, fmt.Errorf("cs: unknown color space %q (known: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the names of the color spaces known to [New].
func Names() []string {
	names := make([]string, len(builtin))
	for i, b := range builtin {
		names[i] = b.name
	}
	return names
}
