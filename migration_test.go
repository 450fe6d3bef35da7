package hashring

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSources_NodeJoins(t *testing.T) {
	// Stub positions: a@97000, b@98000, c@99000, d@100000.
	original := newStubRing(0, 1, "a", "b", "c")
	grown := newStubRing(0, 1, "a", "b", "c", "d")

	t.Run("new node copies exactly its stolen sub-range", func(t *testing.T) {
		// d takes over (99000, 100000] which belonged to a (the wraparound
		// owner) under the original topology.
		require.Equal(t, []Instruction[string]{
			{HashRange: Range{Start: 99001, End: 100000}, Sources: []string{"a"}},
		}, grown.FindSources("d", original, []string{"a", "b", "c"}))
	})

	t.Run("existing members have nothing to copy", func(t *testing.T) {
		for _, member := range []string{"a", "b", "c"} {
			require.Empty(t, grown.FindSources(member, original, []string{"a", "b", "c"}),
				"member %s should not need data", member)
		}
	})

	t.Run("non-member target yields empty plan", func(t *testing.T) {
		require.Empty(t, grown.FindSources("x", original, []string{"a", "b", "c"}))
	})
}

func TestFindSources_NodeJoinsWithReplicas(t *testing.T) {
	// Stub positions: x@97000+i for node x's virtual index i in {0,1}.
	original := newStubRing(1, 2, "a", "b", "c")
	grown := newStubRing(1, 2, "a", "b", "c", "d")

	// d becomes owner of (98001, 99001] (replica behind c) and of
	// (99001, 100001] (primary plus wraparound replica a). The previous
	// owners of those spans were [c, a] and [a, b] respectively, and the
	// per-virtual-node intersections coalesce into one instruction each.
	require.Equal(t, []Instruction[string]{
		{HashRange: Range{Start: 98002, End: 99001}, Sources: []string{"c", "a"}},
		{HashRange: Range{Start: 99002, End: 100001}, Sources: []string{"a", "b"}},
	}, grown.FindSources("d", original, []string{"a", "b", "c"}))

	t.Run("existing members have nothing to copy", func(t *testing.T) {
		for _, member := range []string{"a", "b", "c"} {
			require.Empty(t, grown.FindSources(member, original, []string{"a", "b", "c"}))
		}
	})
}

func TestFindSources_NodeLeaves(t *testing.T) {
	original := newStubRing(0, 1, "a", "b", "c")
	shrunk := newStubRing(0, 1, "a", "c")

	// b owned (97000, 98000]; with b gone that span falls to c. b already
	// left, so it must not appear as a source.
	plan := shrunk.FindSources("c", original, []string{"a", "c"})
	require.Equal(t, []Instruction[string]{
		{HashRange: Range{Start: 97001, End: 98000}, Sources: nil},
	}, normalizeEmptySources(plan))

	t.Run("departed node still available as source", func(t *testing.T) {
		// Scenario: b is terminating but still reachable for copying.
		plan := shrunk.FindSources("c", original, []string{"a", "b", "c"})
		require.Equal(t, []Instruction[string]{
			{HashRange: Range{Start: 97001, End: 98000}, Sources: []string{"b"}},
		}, plan)
	})
}

func TestFindSources_FullRedeployment(t *testing.T) {
	original := New(1, 20, WithSeed[string](7))
	original.BatchAdd([]string{"old-0", "old-1", "old-2"})

	replacement := New(1, 20, WithSeed[string](7))
	replacement.BatchAdd([]string{"new-0", "new-1", "new-2", "new-3"})

	covered := make([]Range, 0, 64)
	for _, target := range replacement.Nodes() {
		for _, ins := range replacement.FindSources(target, original, original.Nodes()) {
			require.NotEmpty(t, ins.Sources, "every span must have a source in a full redeployment")
			for _, src := range ins.Sources {
				require.Contains(t, original.Nodes(), src)
			}
			if target == "new-0" {
				covered = append(covered, ins.HashRange)
			}
		}
	}

	// new-0 owns some spans; all of its instructions together must cover
	// every range the replacement partition assigns to it.
	var owned []Range
	for _, r := range replacement.HashRanges() {
		if contains(r.Nodes, "new-0") {
			owned = append(owned, r.HashRange)
		}
	}
	require.NotEmpty(t, owned)

	for _, want := range owned {
		mid := want.Start + (want.End-want.Start)/2
		for _, pos := range []uint64{want.Start, mid, want.End} {
			found := false
			for _, got := range covered {
				if got.Contains(pos) {
					found = true
					break
				}
			}
			require.True(t, found, "position %d of owned range [%d, %d] not covered", pos, want.Start, want.End)
		}
	}
}

func TestFindSources_NoChangeNoPlan(t *testing.T) {
	nodes := []string{"node-0", "node-1", "node-2", "node-3"}

	ring := New(2, 100, WithSeed[string](1234))
	ring.BatchAdd(nodes)

	same := New(2, 100, WithSeed[string](1234))
	same.BatchAdd(nodes)

	for _, member := range nodes {
		require.Empty(t, ring.FindSources(member, same, nodes),
			"identical topologies must not produce instructions for %s", member)
	}
}

func TestFindSources_EmptyAvailability(t *testing.T) {
	original := newStubRing(0, 1, "a", "b", "c")
	grown := newStubRing(0, 1, "a", "b", "c", "d")

	// No node is reachable: the span still needs data, but there is nowhere
	// to copy from. The instruction is emitted with empty sources so the
	// executor can surface the gap.
	plan := grown.FindSources("d", original, nil)
	require.Equal(t, []Instruction[string]{
		{HashRange: Range{Start: 99001, End: 100000}, Sources: nil},
	}, normalizeEmptySources(plan))
}

func TestMergeInstructions(t *testing.T) {
	ring := newStubRing(0, 1, "a", "b")

	t.Run("merges contiguous ranges with identical sources", func(t *testing.T) {
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a", "b"}},
			{HashRange: Range{Start: 11, End: 20}, Sources: []string{"a", "b"}},
			{HashRange: Range{Start: 21, End: 30}, Sources: []string{"a", "b"}},
		})
		require.Equal(t, []Instruction[string]{
			{HashRange: Range{Start: 0, End: 30}, Sources: []string{"a", "b"}},
		}, merged)
	})

	t.Run("merge is order independent", func(t *testing.T) {
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 21, End: 30}, Sources: []string{"a"}},
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a"}},
			{HashRange: Range{Start: 11, End: 20}, Sources: []string{"a"}},
		})
		require.Equal(t, []Instruction[string]{
			{HashRange: Range{Start: 0, End: 30}, Sources: []string{"a"}},
		}, merged)
	})

	t.Run("does not merge across gaps", func(t *testing.T) {
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a"}},
			{HashRange: Range{Start: 12, End: 20}, Sources: []string{"a"}},
		})
		require.Len(t, merged, 2)
	})

	t.Run("source order is significant", func(t *testing.T) {
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a", "b"}},
			{HashRange: Range{Start: 11, End: 20}, Sources: []string{"b", "a"}},
		})
		require.Len(t, merged, 2, "different source precedence must not merge")
	})

	t.Run("keeps wraparound pieces separate", func(t *testing.T) {
		// [x, max] and [0, y] describe a circular span but must stay two
		// instructions; a single range never crosses the numeric maximum.
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a"}},
			{HashRange: Range{Start: 100, End: math.MaxUint64}, Sources: []string{"a"}},
		})
		require.Len(t, merged, 2)
	})

	t.Run("guards against overflow at the numeric maximum", func(t *testing.T) {
		merged := ring.MergeInstructions([]Instruction[string]{
			{HashRange: Range{Start: 0, End: math.MaxUint64}, Sources: []string{"a"}},
			{HashRange: Range{Start: 0, End: 5}, Sources: []string{"a"}},
		})
		require.Len(t, merged, 2, "end+1 overflow must not fold ranges")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		require.Empty(t, ring.MergeInstructions(nil))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		input := []Instruction[string]{
			{HashRange: Range{Start: 11, End: 20}, Sources: []string{"a"}},
			{HashRange: Range{Start: 0, End: 10}, Sources: []string{"a"}},
		}
		ring.MergeInstructions(input)
		require.EqualValues(t, 11, input[0].HashRange.Start)
	})
}

func TestInstruction_ValueEquality(t *testing.T) {
	a := Instruction[string]{HashRange: Range{Start: 1, End: 2}, Sources: []string{"n1", "n2"}}
	b := Instruction[string]{HashRange: Range{Start: 1, End: 2}, Sources: []string{"n1", "n2"}}
	require.Equal(t, a, b, "instructions with identical content are interchangeable")
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}

func normalizeEmptySources(ins []Instruction[string]) []Instruction[string] {
	out := make([]Instruction[string], len(ins))
	for i, in := range ins {
		out[i] = in
		if len(in.Sources) == 0 {
			out[i].Sources = nil
		}
	}

	return out
}

func ExampleRing_FindSources() {
	original := New[string](0, 1, WithHasher[string](stubHasher{}))
	original.BatchAdd([]string{"a", "b", "c"})

	grown := New[string](0, 1, WithHasher[string](stubHasher{}))
	grown.BatchAdd([]string{"a", "b", "c", "d"})

	for _, ins := range grown.FindSources("d", original, original.Nodes()) {
		fmt.Printf("copy [%d, %d] from %v\n", ins.HashRange.Start, ins.HashRange.End, ins.Sources)
	}
	// Output:
	// copy [99001, 100000] from [a]
}
