package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// SeedMixConstant decorrelates the two state words when seeding from a
// single 64-bit value (the fractional part of sqrt(2), an odd constant).
const SeedMixConstant uint64 = 0x6a09e667f3bcc909

type Xorshift128P struct {
	state [2]uint64
}

// New constructs a generator from zero, one or two state words.
//
// With no words the state is drawn from crypto/rand. With one word s the
// state is (s, s XOR SeedMixConstant). With two words the state is taken
// verbatim, and the all-zero pair is rejected with ErrInvalidState rather
// than corrected. Any other word count is ErrInvalidSeed.
func New(seed ...uint64) (*Xorshift128P, error) {
	switch len(seed) {
	case 0:
		return NewFromReader(cryptorand.Reader)
	case 1:
		return newChecked(seed[0], fixZeroState(seed[0], seed[0]^SeedMixConstant))
	case 2:
		return NewFromState(seed)
	default:
		return nil, errors.Wrapf(ErrInvalidSeed, "expected at most two state words, got %d", len(seed))
	}
}

// NewFromReader constructs a generator from 16 bytes of r, interpreted as
// two little-endian words. Pass crypto/rand.Reader for a randomly seeded
// generator, or a fixed byte stream for a reproducible one.
func NewFromReader(r io.Reader) (*Xorshift128P, error) {
	var buf [16]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.Wrap(err, "reading seed bytes")
	}

	s0 := binary.LittleEndian.Uint64(buf[0:8])
	s1 := binary.LittleEndian.Uint64(buf[8:16])

	return newChecked(s0, fixZeroState(s0, s1))
}

// NewFromState constructs a generator from an explicitly supplied state
// pair. Unlike the derived seeding paths there is no silent correction
// here: a caller handing over the all-zero pair (or the wrong number of
// words) gets ErrInvalidState.
func NewFromState(words []uint64) (*Xorshift128P, error) {
	if len(words) != 2 {
		return nil, errors.Wrapf(ErrInvalidState, "expected exactly two state words, got %d", len(words))
	}

	if words[0] == 0 && words[1] == 0 {
		return nil, errors.Wrap(ErrInvalidState, "the all-zero state is a fixed point of the generator")
	}

	return newChecked(words[0], words[1])
}

// fixZeroState corrects a derived all-zero pair; the generator would
// otherwise emit zeroes forever.
func fixZeroState(s0, s1 uint64) uint64 {
	if s0 == 0 && s1 == 0 {
		return 1
	}

	return s1
}

func newChecked(s0, s1 uint64) (*Xorshift128P, error) {
	if s0 == 0 && s1 == 0 {
		return nil, errors.Wrap(ErrInvalidState, "constructed an all-zero state")
	}

	return &Xorshift128P{state: [2]uint64{s0, s1}}, nil
}

// Next advances the state by one step and returns the raw 64-bit output.
func (state *Xorshift128P) Next() uint64 {
	return xorshift128PPermuteState(state.state[:])
}

// Discard advances the generator n steps, dropping the outputs.
func (state *Xorshift128P) Discard(n uint) {
	for i := uint(0); i < n; i++ {
		_ = state.Next()
	}
}

// CurrentState returns a snapshot of the state words, state0 first.
// Feeding the snapshot back through New resumes the sequence.
func (state *Xorshift128P) CurrentState() [2]uint64 {
	return state.state
}

func (state *Xorshift128P) String() string {
	s := ""

	for i := 0; i < 2; i++ {
		s += fmt.Sprintf("%016X", state.state[i])
	}

	return s
}
