package huffcodec

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/icza/bitio"
)

/*** ---------- MSB-first 비트 패커 ---------- ***/

// BitPacker packs codes most-significant-bit first and keeps the exact number
// of meaningful bits written.
type BitPacker struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   uint64
}

func NewBitPacker() *BitPacker {
	p := &BitPacker{}
	p.w = bitio.NewWriter(&p.buf)
	return p
}

func (p *BitPacker) WriteCode(c Code) error {
	if err := p.w.WriteBits(c.Bits, c.Len); err != nil {
		return err
	}
	p.n += uint64(c.Len)
	return nil
}

// BitCount returns the number of meaningful bits written so far.
func (p *BitPacker) BitCount() uint64 { return p.n }

// Finish zero-pads the last byte and returns the packed bytes with the
// number of filler bits added.
func (p *BitPacker) Finish() (payload []byte, padding uint8, err error) {
	if p.n > math.MaxUint32 {
		return nil, 0, &CapacityError{Field: "bit count", Value: p.n, Limit: math.MaxUint32}
	}
	padding, err = p.w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := p.w.Close(); err != nil {
		return nil, 0, err
	}
	return p.buf.Bytes(), padding, nil
}

// PaddingFor returns the filler bits needed to complete the last byte.
func PaddingFor(bitCount uint64) uint8 { return uint8((8 - bitCount%8) % 8) }

// PayloadLen returns ceil(bitCount/8).
func PayloadLen(bitCount uint64) uint64 { return (bitCount + 7) / 8 }

/*** ---------- MSB-first 비트 리더 ---------- ***/

type bitReader struct {
	r    *bitio.Reader
	bits uint64
	pos  uint64
}

func newBitReader(b []byte, bits uint64) *bitReader {
	return &bitReader{r: bitio.NewReader(bytes.NewReader(b)), bits: bits}
}

// readBit 는 의미 있는 비트를 다 읽으면 io.EOF 를 돌려줘요.
func (br *bitReader) readBit() (bool, error) {
	if br.pos >= br.bits {
		return false, io.EOF
	}
	v, err := br.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return false, err
	}
	br.pos++
	return v, nil
}

// padding 비트는 전부 0 이어야 해요.
func (br *bitReader) checkPadding(padding uint8) error {
	if padding == 0 {
		return nil
	}
	v, err := br.r.ReadBits(padding)
	if err != nil {
		return err
	}
	if v != 0 {
		return errNonZeroPadding
	}
	return nil
}
