package unionfind

import "slices"

// Forest is a union-find (disjoint set) structure over the indexes
// 0 .. Len()-1. Beyond the usual "same group?" answer it can enumerate
// whole groups: every node keeps the set of nodes pointing at it, and both
// unions and path compression maintain those sets, so a group is read back
// by walking downwards from its head.
type Forest struct {
	nodes []ufNode
}

type ufNode struct {
	rank     int
	size     int
	head     int
	children map[int]struct{}
}

// New creates a forest of n singleton groups.
func New(n int) *Forest {
	f := &Forest{nodes: make([]ufNode, n)}
	for i := range f.nodes {
		f.nodes[i].size = 1
		f.nodes[i].head = i
	}
	return f
}

// Len returns the number of indexes the forest covers.
func (f *Forest) Len() int { return len(f.nodes) }

// Find returns the head of the group containing i. The walked path is
// compressed: every node on it is reparented directly under the head and
// moved between the child sets accordingly.
func (f *Forest) Find(i int) int {
	var path []int
	for f.nodes[i].head != i {
		path = append(path, i)
		i = f.nodes[i].head
	}
	// The final path node already hangs off the head.
	for p := 1; p < len(path); p++ {
		j := path[p-1]
		f.nodes[j].head = i
		delete(f.nodes[path[p]].children, j)
		f.addChild(i, j)
	}
	return i
}

func (f *Forest) addChild(head, child int) {
	if f.nodes[head].children == nil {
		f.nodes[head].children = make(map[int]struct{})
	}
	f.nodes[head].children[child] = struct{}{}
}

// Union merges the groups containing i and j. Rank picks the surviving
// head, ties going to j's side; the survivor absorbs the other group's
// size.
func (f *Forest) Union(i, j int) {
	hi, hj := f.Find(i), f.Find(j)
	if hi == hj {
		return
	}
	ni, nj := &f.nodes[hi], &f.nodes[hj]
	if ni.rank > nj.rank {
		nj.head = hi
		f.addChild(hi, hj)
		ni.size += nj.size
		return
	}
	ni.head = hj
	f.addChild(hj, hi)
	nj.size += ni.size
	if nj.rank == ni.rank {
		nj.rank++
	}
}

// GroupSize returns the size of the group containing i without
// materializing it.
func (f *Forest) GroupSize(i int) int {
	return f.nodes[f.Find(i)].size
}

// Group returns every index in the group containing i, in unspecified
// order.
func (f *Forest) Group(i int) []int {
	head := f.Find(i)
	group := make([]int, 0, f.nodes[head].size)
	stack := []int{head}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, cur)
		for c := range f.nodes[cur].children {
			stack = append(stack, c)
		}
	}
	return group
}

// Groups returns every group in the forest, each in unspecified order.
// Every index appears in exactly one group.
func (f *Forest) Groups() [][]int {
	byHead := make([][]int, len(f.nodes))
	for i := range f.nodes {
		h := f.Find(i)
		byHead[h] = append(byHead[h], i)
	}
	return slices.DeleteFunc(byHead, func(g []int) bool { return len(g) == 0 })
}
