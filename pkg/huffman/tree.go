package huffman

import (
	"cmp"
	"container/heap"
)

// BuildTree consumes t and builds its Huffman tree. It returns nil when t
// holds no symbols and a single leaf when it holds exactly one.
func BuildTree[S Symbol](t *FrequencyTable[S]) *Node[S] {
	return BuildTreeFromCounts(t.Finalize())
}

// BuildTreeFromCounts builds the Huffman tree for a symbol→count mapping.
//
// The two smallest nodes are merged until one remains. Nodes are ordered by
// weight, then branches before leaves, then leaves by symbol and branches by
// their first child, so equal counts always produce the same tree no matter
// the iteration order of counts. The smaller of the two merged nodes becomes
// the second (1) child.
//
// Merged weights saturate at math.MaxUint64. Once totals reach that bound
// every saturated node weighs the same, the tie-break decides the merge
// order, and the tree is still a valid prefix code but may no longer be
// optimal.
func BuildTreeFromCounts[S Symbol](counts map[S]uint64) *Node[S] {
	switch len(counts) {
	case 0:
		return nil
	case 1:
		for symbol := range counts {
			return NewLeaf(symbol)
		}
	}

	h := nodeHeap[S]{list: make([]weightedNode[S], 0, len(counts))}
	for symbol, count := range counts {
		h.list = append(h.list, weightedNode[S]{NewLeaf(symbol), count})
	}
	h.Init()

	for h.Len() > 1 {
		lower := heap.Pop(&h).(weightedNode[S])
		greater := heap.Pop(&h).(weightedNode[S])
		heap.Push(&h, weightedNode[S]{
			node:   NewBranch(greater.node, lower.node),
			weight: saturatingAdd(lower.weight, greater.weight),
		})
	}

	return heap.Pop(&h).(weightedNode[S]).node
}

// type weightedNode + type nodeHeap {{{

type weightedNode[S Symbol] struct {
	node   *Node[S]
	weight uint64
}

func compareWeighted[S Symbol](a, b weightedNode[S]) int {
	if c := cmp.Compare(a.weight, b.weight); c != 0 {
		return c
	}
	return compareNodes(a.node, b.node)
}

type nodeHeap[S Symbol] struct {
	list []weightedNode[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	return compareWeighted(h.list[i], h.list[j]) < 0
}

func (h *nodeHeap[S]) Push(x any) {
	h.list = append(h.list, x.(weightedNode[S]))
}

func (h *nodeHeap[S]) Pop() any {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = weightedNode[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int])(nil)

// }}}
