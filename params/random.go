// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "cogentcore.org/lab/base/randx"

// Random is a deterministic uniform random stream. Each stem draws
// from its own Random so that stems can be generated in any order,
// or in parallel, with reproducible results.
type Random struct {
	rand randx.Rand
}

// NewRandom returns a new Random seeded with the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rand: randx.NewSysRand(seed)}
}

// Uniform returns a value uniformly distributed in [low, high).
func (r *Random) Uniform(low, high float32) float32 {
	return low + (high-low)*r.rand.Float32()
}

// Varied returns mean varied uniformly by up to +/- variation.
func (r *Random) Varied(mean, variation float32) float32 {
	return mean + r.Uniform(-variation, variation)
}

// streamStride separates the seeds of sibling streams.
const streamStride = 7919

// NewRandom returns the random stream with the given number for this
// tree. Streams with distinct numbers are independent, and the same
// seed and stream number always give the same sequence.
func (p *Params) NewRandom(stream int) *Random {
	return NewRandom(p.Seed*streamStride + int64(stream))
}
