package huffcodec

import (
	"math"
	"strings"
)

// Code is a bit-code: the low Len bits of Bits, most significant first.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps a byte value to its code.
type CodeTable map[byte]Code

// Codes walks the tree and assigns 0 to every left edge and 1 to every right
// edge. A tree with a single leaf gets the 1-bit code "0" so that every
// encoded byte still takes up one bit. A nil tree yields an empty table.
func (t *Tree) Codes() (CodeTable, error) {
	table := make(CodeTable, t.Leaves())
	if t == nil {
		return table, nil
	}
	if t.single() {
		table[t.nodes[t.root].value] = Code{Bits: 0, Len: 1}
		return table, nil
	}

	var walk func(idx int, bits uint64, depth int) error
	walk = func(idx int, bits uint64, depth int) error {
		n := &t.nodes[idx]
		if n.isLeaf() {
			table[n.value] = Code{Bits: bits, Len: uint8(depth)}
			return nil
		}
		if depth == 64 {
			return &CapacityError{Field: "code length", Value: 65, Limit: 64}
		}
		if err := walk(n.left, bits<<1, depth+1); err != nil {
			return err
		}
		return walk(n.right, bits<<1|1, depth+1)
	}
	if err := walk(t.root, 0, 0); err != nil {
		return nil, err
	}
	return table, nil
}

// BitLength returns the number of payload bits seq encodes to under table.
func (table CodeTable) BitLength(seq FrequencySequence) uint64 {
	var n uint64
	for _, e := range seq {
		n += uint64(e.Count) * uint64(table[e.Value].Len)
	}
	return n
}

func fitsUint32(v uint64) bool { return v <= math.MaxUint32 }
