package rng

import (
	"math"

	"github.com/pkg/errors"
)

// doubleDivisor is 2^53, the count of distinct doubles representable
// with full mantissa precision in [0, 1).
const doubleDivisor = float64(1 << 53)

// NextUint32 returns the low 32 bits of one Next call.
func (state *Xorshift128P) NextUint32() uint32 {
	return uint32(state.Next() & 0xFFFFFFFF)
}

// NextDouble returns a uniform float64 in [0, 1) carrying the full 53
// bits of mantissa precision, built from a single Next call: the low 21
// bits form the top of a 53-bit integer, bits 32-63 the bottom.
func (state *Xorshift128P) NextDouble() (float64, error) {
	v := state.Next()

	hi := v & 0x1FFFFF
	lo := (v >> 32) & 0xFFFFFFFF

	d := float64(hi<<32|lo) / doubleDivisor
	if d < 0 || d >= 1 {
		return 0, errors.Wrapf(ErrArithmeticInvariant, "unit interval draw came out as %v", d)
	}

	return d, nil
}

// NextRange returns a uniform integer in [min, max], both bounds
// inclusive. The range must hold at least two values; callers wanting a
// constant should not be asking a generator for one.
//
// The value is derived by scaling one NextDouble draw across the span.
// For spans far below 2^53 the bias of this technique is negligible, and
// it keeps the output sequence for a given seed stable, so it is not to
// be swapped for rejection sampling.
func (state *Xorshift128P) NextRange(min, max int) (int, error) {
	if min >= max {
		return 0, errors.Wrapf(ErrInvalidArgument, "range [%d, %d] holds fewer than two values", min, max)
	}

	span := max - min + 1

	d, err := state.NextDouble()
	if err != nil {
		return 0, err
	}

	if d < 0 || d >= 1 {
		return 0, errors.Wrapf(ErrArithmeticInvariant, "unit interval draw came out as %v", d)
	}

	return min + int(math.Floor(d*float64(span))), nil
}
