// Package rng implements a seedable, inspectable xorshift128+ generator
// for simulations, games and procedural generation. It is not suitable
// for anything cryptographic.
package rng

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSeed is returned when a seed has an unusable shape
	// (more than two state words).
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidState is returned for an explicitly supplied state that
	// is not exactly two words, or is the all-zero pair. xorshift can
	// never leave the all-zero state once in it.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument is returned for bad NextRange bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrArithmeticInvariant is returned when an internal consistency
	// check fails. Should be unreachable.
	ErrArithmeticInvariant = errors.New("arithmetic invariant violated")
)
