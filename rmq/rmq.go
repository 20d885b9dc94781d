package rmq

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Table answers range-minimum queries over a fixed slice in constant time.
// It borrows the slice: mutating it, or growing it so its backing array
// moves, invalidates the table.
//
// The slice is cut into blocks of Θ(log n). Blocks whose Cartesian trees
// have the same shape share one precomputed answer table, found by a
// signature of the shape, and a sparse table over the per-block minima
// answers the spans between blocks.
type Table[T constraints.Ordered] struct {
	values    []T
	blockSize int

	// memoKey[b] locates block b's shared in-block answer table.
	memoKey []uint64
	memos   map[uint64][]int32

	// sparse[j][i] is the index of the leftmost minimum across blocks
	// [i, i+2^j).
	sparse [][]int32
}

// New indexes values for RangeMin queries. Construction is linear in
// len(values).
func New[T constraints.Ordered](values []T) *Table[T] {
	t := &Table[T]{values: values}
	n := len(values)
	if n == 0 {
		return t
	}
	t.blockSize = floorLog2(n)/4 + 1

	numBlocks := (n + t.blockSize - 1) / t.blockSize
	t.memoKey = make([]uint64, numBlocks)
	t.memos = make(map[uint64][]int32)

	blockMins := make([]int32, numBlocks)
	for b := 0; b < numBlocks; b++ {
		start := b * t.blockSize
		block := values[start:min(start+t.blockSize, n)]

		key := signature(block)<<6 | uint64(len(block))
		t.memoKey[b] = key
		memo, ok := t.memos[key]
		if !ok {
			memo = buildMemo(block)
			t.memos[key] = memo
		}
		blockMins[b] = int32(start) + memo[len(block)-1]
	}

	t.sparse = [][]int32{blockMins}
	for span := 2; span <= numBlocks; span *= 2 {
		prev := t.sparse[len(t.sparse)-1]
		row := make([]int32, numBlocks-span+1)
		for i := range row {
			row[i] = int32(t.leftmostLess(int(prev[i]), int(prev[i+span/2])))
		}
		t.sparse = append(t.sparse, row)
	}
	return t
}

// Len returns the number of indexed values.
func (t *Table[T]) Len() int { return len(t.values) }

// RangeMin returns the index of the minimum value in the half-open range
// [i, j), choosing the leftmost when the minimum repeats. It panics if the
// range is empty or out of bounds.
func (t *Table[T]) RangeMin(i, j int) int {
	if i < 0 || j > len(t.values) || i >= j {
		panic("rmq: invalid range")
	}

	bi := i / t.blockSize
	bj := (j - 1) / t.blockSize
	if bi == bj {
		start := bi * t.blockSize
		return start + t.inBlock(bi, i-start, j-start)
	}

	// Ends live in different blocks: resolve each partial block, then any
	// whole blocks between them, keeping the earlier index on ties.
	biStart := bi * t.blockSize
	biLen := min(t.blockSize, len(t.values)-biStart)
	best := biStart + t.inBlock(bi, i-biStart, biLen)

	if mid := bj - bi - 1; mid > 0 {
		k := floorLog2(mid)
		row := t.sparse[k]
		c := t.leftmostLess(int(row[bi+1]), int(row[bj-(1<<k)]))
		best = t.leftmostLess(best, c)
	}

	bjStart := bj * t.blockSize
	return t.leftmostLess(best, bjStart+t.inBlock(bj, 0, j-bjStart))
}

// inBlock answers [a, b) relative to block bi from the shared memo.
func (t *Table[T]) inBlock(bi, a, b int) int {
	key := t.memoKey[bi]
	blockLen := int(key & 63)
	return int(t.memos[key][a*blockLen+b-1])
}

// leftmostLess returns whichever index holds the smaller value, preferring
// the first argument on a tie. Callers pass the earlier index first.
func (t *Table[T]) leftmostLess(a, b int) int {
	if t.values[b] < t.values[a] {
		return b
	}
	return a
}

// signature fingerprints the shape of a block's Cartesian tree by
// replaying its stack-based construction: a set bit per push, a clear bit
// per pop. Two blocks with equal signatures (and equal lengths) give the
// same answer to every in-block query, index-wise.
func signature[T constraints.Ordered](block []T) uint64 {
	var sig uint64
	bit := 0
	stack := make([]T, 0, len(block))
	for _, v := range block {
		for len(stack) > 0 && stack[len(stack)-1] > v {
			stack = stack[:len(stack)-1]
			bit++
		}
		sig |= 1 << bit
		bit++
		stack = append(stack, v)
	}
	return sig
}

// buildMemo precomputes the leftmost-minimum index for every nonempty
// [a, b) within one block. Entry (a, b) lives at a*len(block)+b-1.
func buildMemo[T constraints.Ordered](block []T) []int32 {
	n := len(block)
	memo := make([]int32, n*n)
	for a := 0; a < n; a++ {
		best := a
		for b := a + 1; b <= n; b++ {
			if block[b-1] < block[best] {
				best = b - 1
			}
			memo[a*n+b-1] = int32(best)
		}
	}
	return memo
}

func floorLog2(n int) int {
	return bits.Len(uint(n)) - 1
}
