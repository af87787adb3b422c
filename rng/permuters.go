package rng

// permutes a [2]uint64 state according to xorshift128+ with the
// 23/17/26 shift triple (the variant popularized by JS engines, not
// Vigna's 23/18/5 reference)
func xorshift128PPermuteState(s []uint64) (result uint64) {
	s1 := s[0]
	s0 := s[1]

	s[0] = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0
	s1 ^= s0 >> 26
	s[1] = s1

	result = s[0] + s[1]

	return
}
