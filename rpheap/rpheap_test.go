package rpheap

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	h := New[string, int]()
	require.Equal(t, 0, h.Len())
	_, _, ok := h.Top()
	require.False(t, ok)
	_, _, ok = h.Pop()
	require.False(t, ok)
}

func TestDrainComesOutInPriorityOrder(t *testing.T) {
	h := New[string, int]()
	h.Push("c", 3)
	h.Push("a", 1)
	h.Push("e", 5)
	h.Push("b", 2)
	h.Push("d", 4)
	require.Equal(t, 5, h.Len())

	var values []string
	var priorities []int
	for {
		v, p, ok := h.Pop()
		if !ok {
			break
		}
		values = append(values, v)
		priorities = append(priorities, p)
	}
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, values)
	require.Equal(t, []int{5, 4, 3, 2, 1}, priorities)
}

func TestPushRaisesALiveValue(t *testing.T) {
	h := New[string, int]()
	h.Push("x", 1)
	h.Push("y", 10)

	h.Push("x", 20)
	v, p, ok := h.Top()
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.Equal(t, 20, p)

	// A lower priority never demotes.
	h.Push("x", 5)
	_, p, _ = h.Top()
	require.Equal(t, 20, p)
	require.Equal(t, 2, h.Len())
}

func TestPoppedValuesStayBanned(t *testing.T) {
	h := New[string, int]()
	h.Push("x", 3)
	h.Push("y", 1)

	v, _, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, "x", v)

	h.Push("x", 100)
	require.Equal(t, 1, h.Len())
	v, p, ok := h.Top()
	require.True(t, ok)
	require.Equal(t, "y", v)
	require.Equal(t, 1, p)
}

func TestNewWithInvertedOrder(t *testing.T) {
	h := NewWith[string](func(a, b int) bool { return a > b })
	h.Push("far", 9)
	h.Push("near", 2)
	h.Push("mid", 5)

	v, p, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, "near", v)
	require.Equal(t, 2, p)
	v, _, _ = h.Pop()
	require.Equal(t, "mid", v)
}

// Randomized workout against a flat map oracle, exercising raises, bans,
// and pops in arbitrary interleavings.
func TestRandomizedAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(77, 13))
	for trial := 0; trial < 300; trial++ {
		h := New[int, int]()
		alive := map[int]int{}
		popped := map[int]bool{}

		requireTopIsMax := func(v, p int) {
			cur, exists := alive[v]
			require.True(t, exists, "value %d is not alive", v)
			require.Equal(t, cur, p)
			for _, ap := range alive {
				require.LessOrEqual(t, ap, p)
			}
		}

		for op := 0; op < 120; op++ {
			switch rng.IntN(5) {
			case 0, 1, 2:
				v, p := rng.IntN(40), rng.IntN(100)
				h.Push(v, p)
				if !popped[v] {
					if cur, ok := alive[v]; !ok || p > cur {
						alive[v] = p
					}
				}
			case 3:
				v, p, ok := h.Pop()
				require.Equal(t, len(alive) > 0, ok)
				if ok {
					requireTopIsMax(v, p)
					delete(alive, v)
					popped[v] = true
				}
			case 4:
				v, p, ok := h.Top()
				require.Equal(t, len(alive) > 0, ok)
				if ok {
					requireTopIsMax(v, p)
				}
			}
			require.Equal(t, len(alive), h.Len())
		}

		last := math.MaxInt
		for h.Len() > 0 {
			v, p, ok := h.Pop()
			require.True(t, ok)
			require.LessOrEqual(t, p, last)
			last = p
			cur, exists := alive[v]
			require.True(t, exists)
			require.Equal(t, cur, p)
			delete(alive, v)
		}
		require.Empty(t, alive)
	}
}
