package domain

import (
	"math/bits"
	"strconv"
	"strings"
)

// CandidateSet is the set of digits still considered possible for an
// unassigned cell, stored as a bitmask. Bit d-1 represents digit d.
type CandidateSet uint16

// AllDigits is the full candidate set {1..9}.
const AllDigits CandidateSet = 0x1ff

// SetOf builds a CandidateSet from explicit digits.
func SetOf(digits ...uint8) CandidateSet {
	var s CandidateSet
	for _, d := range digits {
		s |= 1 << (d - 1)
	}
	return s
}

// Has reports whether digit d is in the set.
func (s CandidateSet) Has(d uint8) bool {
	return s&(1<<(d-1)) != 0
}

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Sole returns the single digit in the set, if the set has exactly one.
func (s CandidateSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Remove deletes digit d from the set. It is a no-op when d is absent;
// the return value reports whether the set actually changed.
func (s *CandidateSet) Remove(d uint8) bool {
	mask := CandidateSet(1) << (d - 1)
	if *s&mask == 0 {
		return false
	}
	*s &^= mask
	return true
}

// RemoveAll deletes every digit of rm from the set, reporting change.
func (s *CandidateSet) RemoveAll(rm CandidateSet) bool {
	if *s&rm == 0 {
		return false
	}
	*s &^= rm
	return true
}

// KeepOnly intersects the set with keep, reporting change.
func (s *CandidateSet) KeepOnly(keep CandidateSet) bool {
	next := *s & keep
	if next == *s {
		return false
	}
	*s = next
	return true
}

// Union returns the set containing the digits of both sets.
func (s CandidateSet) Union(o CandidateSet) CandidateSet {
	return s | o
}

// Digits lists the digits of the set in ascending order.
func (s CandidateSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s CandidateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s.Digits() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(d)))
	}
	b.WriteByte('}')
	return b.String()
}
