package huffman

import (
	"iter"
	"math"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable accumulates occurrence counts per distinct symbol.
type FrequencyTable[S Symbol] struct {
	counts    map[S]uint64
	finalized bool
}

func NewFrequencyTable[S Symbol]() *FrequencyTable[S] {
	return &FrequencyTable[S]{counts: make(map[S]uint64)}
}

// Add increases the count of symbol by count. A symbol added with a count of
// 0 is still registered and gets a leaf of its own. Counts saturate at
// math.MaxUint64.
func (t *FrequencyTable[S]) Add(symbol S, count uint64) {
	assert.Assertf(!t.finalized, "FrequencyTable.Add after Finalize")
	t.counts[symbol] = saturatingAdd(t.counts[symbol], count)
}

// AddSlice counts one occurrence per element of symbols.
func (t *FrequencyTable[S]) AddSlice(symbols []S) {
	for _, symbol := range symbols {
		t.Add(symbol, 1)
	}
}

// AddSeq counts one occurrence per element yielded by seq.
func (t *FrequencyTable[S]) AddSeq(seq iter.Seq[S]) {
	for symbol := range seq {
		t.Add(symbol, 1)
	}
}

func (t *FrequencyTable[S]) Count(symbol S) uint64 {
	return t.counts[symbol]
}

// Len is the number of distinct symbols.
func (t *FrequencyTable[S]) Len() int {
	return len(t.counts)
}

// Finalize hands the accumulated counts over to the caller. The table must
// not be used afterwards.
func (t *FrequencyTable[S]) Finalize() map[S]uint64 {
	assert.Assertf(!t.finalized, "FrequencyTable.Finalize called twice")
	counts := t.counts
	t.counts = nil
	t.finalized = true
	return counts
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
