package huffcodec

/*** ---------- 트리 (노드 arena, 자식은 인덱스로 참조) ---------- ***/

const noChild = -1

type node struct {
	value       byte
	freq        uint64
	left, right int
}

func (n *node) isLeaf() bool { return n.left == noChild }

// Tree is a Huffman prefix tree. Nodes live in one slice and refer to their
// children by index; the root is the last node created.
type Tree struct {
	nodes []node
	root  int
}

/*** ---------- MinHeap (빈도 -> 삽입 순서로 비교) ---------- ***/

// heapItem 의 seq 는 push 될 때마다 1씩 증가해요.
// 빈도가 같으면 먼저 들어온 노드가 먼저 나와요.
type heapItem struct {
	idx int
	seq int
}

type minHeap struct {
	arr   []heapItem
	nodes []node
}

func (h *minHeap) size() int { return len(h.arr) }

func (h *minHeap) less(a, b heapItem) bool {
	fa, fb := h.nodes[a.idx].freq, h.nodes[b.idx].freq
	if fa != fb {
		return fa < fb
	}
	return a.seq < b.seq
}

func (h *minHeap) push(it heapItem) {
	h.arr = append(h.arr, it)
	i := len(h.arr) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.arr[i], h.arr[parent]) {
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapItem {
	out := h.arr[0]
	last := len(h.arr) - 1
	h.arr[0] = h.arr[last]
	h.arr = h.arr[:last]

	parent := 0
	for {
		child := 2*parent + 1
		if child >= h.size() {
			return out
		}
		if child+1 < h.size() && h.less(h.arr[child+1], h.arr[child]) {
			child++
		}
		if !h.less(h.arr[child], h.arr[parent]) {
			return out
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		parent = child
	}
}

// BuildTree builds the tree for seq. An empty sequence yields a nil tree.
// Duplicate byte values or zero counts are rejected.
func BuildTree(seq FrequencySequence) (*Tree, error) {
	if err := seq.validate(); err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}

	nodes := make([]node, 0, 2*len(seq)-1)
	h := &minHeap{arr: make([]heapItem, 0, len(seq))}
	seqNo := 0
	for _, e := range seq { // 직렬화 순서대로 push
		nodes = append(nodes, node{value: e.Value, freq: uint64(e.Count), left: noChild, right: noChild})
		h.nodes = nodes
		h.push(heapItem{idx: len(nodes) - 1, seq: seqNo})
		seqNo++
	}
	for h.size() > 1 {
		a := h.pop()
		b := h.pop()
		nodes = append(nodes, node{
			freq:  nodes[a.idx].freq + nodes[b.idx].freq,
			left:  a.idx, // 먼저 나온 쪽이 left
			right: b.idx,
		})
		h.nodes = nodes
		h.push(heapItem{idx: len(nodes) - 1, seq: seqNo})
		seqNo++
	}
	return &Tree{nodes: nodes, root: h.pop().idx}, nil
}

// Leaves returns the number of distinct byte values in the tree.
func (t *Tree) Leaves() int {
	if t == nil {
		return 0
	}
	return (len(t.nodes) + 1) / 2
}

func (t *Tree) single() bool { return t.nodes[t.root].isLeaf() }

// encodedBits returns the payload length the tree implies for its own leaf
// frequencies: the sum of frequency times depth, with a lone leaf at depth 1.
func (t *Tree) encodedBits() uint64 {
	if t.single() {
		return t.nodes[t.root].freq
	}
	var total uint64
	var walk func(idx int, depth uint64)
	walk = func(idx int, depth uint64) {
		n := &t.nodes[idx]
		if n.isLeaf() {
			total += n.freq * depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return total
}
