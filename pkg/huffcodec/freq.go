package huffcodec

import "math"

// Symbol is one (byte value, occurrence count) entry.
type Symbol struct {
	Value byte
	Count uint32
}

// FrequencySequence lists every distinct byte of an input once, in order of
// first occurrence. The order is the tree builder's tie-break order and is
// stored as-is in the container.
type FrequencySequence []Symbol

// Analyze counts byte occurrences in a single pass.
func Analyze(data []byte) (FrequencySequence, error) {
	var counts [256]uint64
	order := make([]byte, 0, 256)
	for _, b := range data {
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	seq := make(FrequencySequence, 0, len(order))
	for _, b := range order {
		if counts[b] > math.MaxUint32 {
			return nil, &CapacityError{Field: "byte count", Value: counts[b], Limit: math.MaxUint32}
		}
		seq = append(seq, Symbol{Value: b, Count: uint32(counts[b])})
	}
	return seq, nil
}

// Total returns the sum of all counts, i.e. the decoded length.
func (s FrequencySequence) Total() uint64 {
	var n uint64
	for _, e := range s {
		n += uint64(e.Count)
	}
	return n
}

// validate 는 중복 바이트 / 0 빈도를 거부해요.
func (s FrequencySequence) validate() error {
	var seen [256]bool
	for _, e := range s {
		if seen[e.Value] {
			return errDuplicateSymbol
		}
		if e.Count == 0 {
			return errZeroCount
		}
		seen[e.Value] = true
	}
	return nil
}
