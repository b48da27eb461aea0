// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
)

func randOrGlobal(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}

// UniformGen returns a uniformly distributed random number in [lo, hi).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformGen(lo, hi float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	return lo + (hi-lo)*rnd.Float64()
}

// TsallisGen returns a step drawn from the Tsallis-Stariolo visiting
// distribution of generalized simulated annealing, at the given
// temperature and visiting parameter qv (1 < qv < 3). Larger temperatures
// and larger qv give heavier tails, i.e., longer jumps.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func TsallisGen(temp, qv float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	f1 := math.Exp(math.Log(temp) / (qv - 1))
	f2 := math.Exp((4 - qv) * math.Log(qv-1))
	f3 := math.Exp((2 - qv) * math.Ln2 / (qv - 1))
	f4 := math.Sqrt(math.Pi) * f1 * f2 / (f3 * (3 - qv))
	f5 := 1/(qv-1) - 0.5
	lg, _ := math.Lgamma(2 - f5)
	f6 := math.Pi * (1 - f5) / math.Sin(math.Pi*(1-f5)) / math.Exp(lg)
	sigmax := math.Exp(-(qv - 1) * math.Log(f6/f4) / (3 - qv))
	x := sigmax * rnd.NormFloat64()
	y := rnd.NormFloat64()
	den := math.Exp((qv - 1) * math.Log(math.Abs(y)) / (3 - qv))
	return x / den
}
