package huffcodec

import (
	"errors"
	"testing"
)

func TestAnalyzeOrder(t *testing.T) {
	got, err := Analyze([]byte("banana"))
	if err != nil {
		t.Fatal(err)
	}
	want := FrequencySequence{{'b', 1}, {'a', 3}, {'n', 2}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if got.Total() != 6 {
		t.Fatalf("total %d", got.Total())
	}

	empty, _ := Analyze(nil)
	if len(empty) != 0 {
		t.Fatalf("empty input gave %v", empty)
	}
}

func TestBuildTreeEdgeCases(t *testing.T) {
	tree, err := BuildTree(nil)
	if err != nil || tree != nil {
		t.Fatalf("empty: tree=%v err=%v", tree, err)
	}
	table, err := tree.Codes()
	if err != nil || len(table) != 0 {
		t.Fatalf("empty: table=%v err=%v", table, err)
	}

	if _, err := BuildTree(FrequencySequence{{'a', 1}, {'a', 2}}); !errors.Is(err, errDuplicateSymbol) {
		t.Fatalf("duplicate: err = %v", err)
	}
	if _, err := BuildTree(FrequencySequence{{'a', 0}}); !errors.Is(err, errZeroCount) {
		t.Fatalf("zero count: err = %v", err)
	}

	tree, _ = BuildTree(FrequencySequence{{'k', 5}})
	table, _ = tree.Codes()
	if c := table['k']; c.Len != 1 || c.Bits != 0 {
		t.Fatalf("single leaf code = %v", c)
	}
}

// Equal frequencies come out in insertion order, first one to the left.
func TestTieBreakInsertionOrder(t *testing.T) {
	tests := []struct {
		seq  FrequencySequence
		want map[byte]string
	}{
		{
			FrequencySequence{{'A', 1}, {'B', 1}, {'C', 1}, {'D', 1}},
			map[byte]string{'A': "00", 'B': "01", 'C': "10", 'D': "11"},
		},
		{
			FrequencySequence{{'D', 1}, {'C', 1}, {'B', 1}, {'A', 1}},
			map[byte]string{'D': "00", 'C': "01", 'B': "10", 'A': "11"},
		},
		{
			FrequencySequence{{'A', 4}, {'B', 3}, {'C', 2}, {'D', 1}},
			map[byte]string{'A': "0", 'B': "10", 'D': "110", 'C': "111"},
		},
		{
			// merged node (2) ties with C (2) and was pushed later
			FrequencySequence{{'A', 1}, {'B', 1}, {'C', 2}},
			map[byte]string{'C': "0", 'A': "10", 'B': "11"},
		},
	}
	for _, tt := range tests {
		tree, err := BuildTree(tt.seq)
		if err != nil {
			t.Fatal(err)
		}
		table, err := tree.Codes()
		if err != nil {
			t.Fatal(err)
		}
		for b, want := range tt.want {
			if got := table[b].String(); got != want {
				t.Errorf("%v: code[%c] = %s, want %s", tt.seq, b, got, want)
			}
		}
	}
}

func TestCodesPrefixFree(t *testing.T) {
	in := make([]byte, 0, 1<<14)
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%37; j++ {
			in = append(in, byte(i))
		}
	}
	seq, _ := Analyze(in)
	tree, _ := BuildTree(seq)
	table, err := tree.Codes()
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 256 || tree.Leaves() != 256 {
		t.Fatalf("table has %d codes, tree %d leaves", len(table), tree.Leaves())
	}
	for a, ca := range table {
		if ca.Len == 0 {
			t.Fatalf("empty code for %d", a)
		}
		for b, cb := range table {
			if a != b && ca.HasPrefix(cb) {
				t.Fatalf("code %s (%d) has prefix %s (%d)", ca, a, cb, b)
			}
		}
	}
	if got := table.BitLength(seq); got != tree.encodedBits() {
		t.Fatalf("BitLength %d != encodedBits %d", got, tree.encodedBits())
	}
}

func TestBitPacker(t *testing.T) {
	p := NewBitPacker()
	for _, c := range []Code{{0b1, 1}, {0b0, 1}, {0b111, 3}, {0b0101, 4}} {
		if err := p.WriteCode(c); err != nil {
			t.Fatal(err)
		}
	}
	if p.BitCount() != 9 {
		t.Fatalf("bit count %d", p.BitCount())
	}
	payload, padding, err := p.Finish()
	if err != nil {
		t.Fatal(err)
	}
	// 1 0 111 0101 -> 10111010 1(0000000)
	if len(payload) != 2 || payload[0] != 0xba || payload[1] != 0x80 {
		t.Fatalf("payload %x", payload)
	}
	if padding != 7 || PaddingFor(9) != 7 || PayloadLen(9) != 2 {
		t.Fatalf("padding %d", padding)
	}

	br := newBitReader(payload, 9)
	var got []bool
	for {
		b, err := br.readBit()
		if err != nil {
			break
		}
		got = append(got, b)
	}
	want := []bool{true, false, true, true, true, false, true, false, true}
	if len(got) != len(want) {
		t.Fatalf("read %d bits", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d = %v", i, got[i])
		}
	}
	if err := br.checkPadding(7); err != nil {
		t.Fatalf("padding: %v", err)
	}
}
