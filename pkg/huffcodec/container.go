package huffcodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// MaxSymbols is the largest entry count a container can declare.
const MaxSymbols = 256

// Container is the serialized form of a compressed input:
//
//	uint16  entry count (big-endian)
//	entry count x { byte value, uint32 count }
//	uint32  bit count
//	byte[]  payload, ceil(bit count / 8) bytes
//	byte    padding bits (0-7)
type Container struct {
	Freqs    FrequencySequence
	BitCount uint32
	Payload  []byte
	Padding  uint8
}

// HeaderLen returns the size of the frequency table in bytes.
func (c *Container) HeaderLen() int { return 2 + 5*len(c.Freqs) }

// Len returns the serialized size in bytes.
func (c *Container) Len() int { return c.HeaderLen() + 4 + len(c.Payload) + 1 }

func (c *Container) MarshalBinary() ([]byte, error) {
	if len(c.Freqs) > MaxSymbols {
		return nil, &CapacityError{Field: "entry count", Value: uint64(len(c.Freqs)), Limit: MaxSymbols}
	}
	out := make([]byte, 0, c.Len())
	out = binary.BigEndian.AppendUint16(out, uint16(len(c.Freqs)))
	for _, e := range c.Freqs {
		out = append(out, e.Value)
		out = binary.BigEndian.AppendUint32(out, e.Count)
	}
	out = binary.BigEndian.AppendUint32(out, c.BitCount)
	out = append(out, c.Payload...)
	out = append(out, c.Padding)
	return out, nil
}

/*** ---------- 빅엔디언 읽기 ---------- ***/

type containerReader struct {
	r    *bytes.Reader
	size int
}

func (cr *containerReader) offset() int { return cr.size - cr.r.Len() }

func (cr *containerReader) readU16(field string) (uint16, error) {
	off := cr.offset()
	var v uint16
	if err := binary.Read(cr.r, binary.BigEndian, &v); err != nil {
		return 0, truncated(off, field, err)
	}
	return v, nil
}

func (cr *containerReader) readU32(field string) (uint32, error) {
	off := cr.offset()
	var v uint32
	if err := binary.Read(cr.r, binary.BigEndian, &v); err != nil {
		return 0, truncated(off, field, err)
	}
	return v, nil
}

func (cr *containerReader) readByte(field string) (byte, error) {
	off := cr.offset()
	b, err := cr.r.ReadByte()
	if err != nil {
		return 0, truncated(off, field, err)
	}
	return b, nil
}

func truncated(off int, field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return formatErr(off, "truncated "+field, io.ErrUnexpectedEOF)
	}
	return formatErr(off, field, err)
}

// UnmarshalBinary parses b and checks that every declared size matches the
// bytes available. It does not decode the payload.
func (c *Container) UnmarshalBinary(b []byte) error {
	cr := &containerReader{r: bytes.NewReader(b), size: len(b)}

	entries, err := cr.readU16("entry count")
	if err != nil {
		return err
	}
	if entries > MaxSymbols {
		return formatErr(0, "entry count above 256", nil)
	}
	if int(entries)*5 > cr.r.Len() {
		return formatErr(cr.offset(), "frequency table longer than container", io.ErrUnexpectedEOF)
	}

	freqs := make(FrequencySequence, 0, entries)
	for i := 0; i < int(entries); i++ {
		v, err := cr.readByte("byte value")
		if err != nil {
			return err
		}
		n, err := cr.readU32("frequency")
		if err != nil {
			return err
		}
		freqs = append(freqs, Symbol{Value: v, Count: n})
	}
	if err := freqs.validate(); err != nil {
		return formatErr(2, "inconsistent frequency table", err)
	}

	bitCount, err := cr.readU32("bit count")
	if err != nil {
		return err
	}
	n := PayloadLen(uint64(bitCount))
	if n+1 > uint64(cr.r.Len()) {
		return formatErr(cr.offset(), "payload shorter than bit count", io.ErrUnexpectedEOF)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(cr.r, payload); err != nil {
		return truncated(cr.offset(), "payload", err)
	}
	padOff := cr.offset()
	padding, err := cr.readByte("padding")
	if err != nil {
		return err
	}
	if padding != PaddingFor(uint64(bitCount)) {
		return formatErr(padOff, "padding does not match bit count", nil)
	}
	if cr.r.Len() != 0 {
		return formatErr(cr.offset(), "trailing bytes after padding", nil)
	}

	// 심볼 하나당 최소 1비트
	if total := freqs.Total(); total > uint64(bitCount) || (total == 0) != (bitCount == 0) {
		return formatErr(2, "frequency total does not match bit count", nil)
	}

	*c = Container{Freqs: freqs, BitCount: bitCount, Payload: payload, Padding: padding}
	return nil
}

// ParseContainer is a convenience wrapper around UnmarshalBinary.
func ParseContainer(b []byte) (*Container, error) {
	c := &Container{}
	if err := c.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return c, nil
}

// Ratio returns compressed size over original size, 0 for empty input.
func (c *Container) Ratio() float64 {
	total := c.Freqs.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Len()) / float64(total)
}
