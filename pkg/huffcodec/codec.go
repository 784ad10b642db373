// Package huffcodec implements a static, byte-oriented Huffman codec.
//
// Compress builds a prefix code from the byte frequencies of its input and
// returns a self-describing container holding the frequency table and the
// packed bitstream. Decompress rebuilds the same tree from the stored table
// and recovers the original bytes. Both functions are pure and safe for
// concurrent use.
package huffcodec

import (
	"errors"
	"io"
)

/*** ---------- 공개 API ---------- ***/

// Compress encodes data. It only fails when the input is too large for the
// container's 32-bit fields.
func Compress(data []byte) ([]byte, error) {
	c, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Encode is Compress without the final serialization step.
func Encode(data []byte) (*Container, error) {
	freqs, err := Analyze(data)
	if err != nil {
		return nil, err
	}
	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	table, err := tree.Codes()
	if err != nil {
		return nil, err
	}

	if bits := table.BitLength(freqs); !fitsUint32(bits) {
		return nil, &CapacityError{Field: "bit count", Value: bits, Limit: 1<<32 - 1}
	}

	var lookup [256]Code
	for b, c := range table {
		lookup[b] = c
	}
	p := NewBitPacker()
	for _, b := range data {
		if err := p.WriteCode(lookup[b]); err != nil {
			return nil, err
		}
	}
	bitCount := p.BitCount()
	payload, padding, err := p.Finish()
	if err != nil {
		return nil, err
	}
	return &Container{
		Freqs:    freqs,
		BitCount: uint32(bitCount),
		Payload:  payload,
		Padding:  padding,
	}, nil
}

// Decompress decodes a container produced by Compress. Any structural problem
// is reported as a *FormatError.
func Decompress(blob []byte) ([]byte, error) {
	c, err := ParseContainer(blob)
	if err != nil {
		return nil, err
	}
	return c.Decode()
}

// Decode rebuilds the tree from c.Freqs and walks it over the payload bits.
func (c *Container) Decode() ([]byte, error) {
	tree, err := BuildTree(c.Freqs)
	if err != nil {
		return nil, formatErr(2, "inconsistent frequency table", err)
	}
	total := c.Freqs.Total()
	if tree == nil {
		if c.BitCount != 0 {
			return nil, formatErr(2, "payload without frequency table", nil)
		}
		return []byte{}, nil
	}

	if tree.encodedBits() != uint64(c.BitCount) {
		return nil, formatErr(c.HeaderLen(), "bit count does not match frequency table", nil)
	}

	payloadOff := c.HeaderLen() + 4
	br := newBitReader(c.Payload, uint64(c.BitCount))
	out := make([]byte, 0, total)

	if tree.single() {
		// 1비트 = 1바이트, 코드는 항상 0
		v := tree.nodes[tree.root].value
		for {
			bit, err := br.readBit()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, formatErr(payloadOff, "truncated payload", err)
			}
			if bit {
				return nil, formatErr(payloadOff+int(br.pos/8), "unexpected 1 bit in single-symbol payload", nil)
			}
			out = append(out, v)
		}
	} else {
		cur := tree.root
		for {
			bit, err := br.readBit()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, formatErr(payloadOff, "truncated payload", err)
			}
			n := &tree.nodes[cur]
			if bit {
				cur = n.right
			} else {
				cur = n.left
			}
			if leaf := &tree.nodes[cur]; leaf.isLeaf() {
				out = append(out, leaf.value)
				cur = tree.root
			}
		}
		if cur != tree.root {
			return nil, formatErr(payloadOff+len(c.Payload)-1, "bitstream ends inside a code", nil)
		}
	}

	if err := br.checkPadding(c.Padding); err != nil {
		return nil, formatErr(payloadOff+len(c.Payload)-1, "bad padding", err)
	}
	if uint64(len(out)) != total {
		return nil, formatErr(2, "decoded length does not match frequency table", nil)
	}
	var seen [256]uint32
	for _, b := range out {
		seen[b]++
	}
	for _, e := range c.Freqs {
		if seen[e.Value] != e.Count {
			return nil, formatErr(2, "decoded counts do not match frequency table", nil)
		}
	}
	return out, nil
}
