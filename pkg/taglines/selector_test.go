package taglines_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/tagline/pkg/taglines"
)

func TestSelectorSelect(t *testing.T) {
	t.Parallel()

	list := taglines.List{"first", "second", "third"}

	t.Run("empty list returns empty result", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", taglines.NewSelector().Select(nil))
		assert.Equal(t, "", taglines.NewSelector().Select(taglines.List{}))
		assert.Equal(t, "", taglines.Select(nil))
	})

	t.Run("fixed index returns that element", func(t *testing.T) {
		t.Parallel()
		for i := range list {
			sel := taglines.NewSelector(taglines.WithSource(taglines.FixedSource(i)))
			assert.Equal(t, list[i], sel.Select(list))
		}
	})

	t.Run("source receives list length", func(t *testing.T) {
		t.Parallel()
		var got int
		sel := taglines.NewSelector(taglines.WithSource(taglines.SourceFunc(func(n int) int {
			got = n
			return 0
		})))
		sel.Select(list)
		assert.Equal(t, len(list), got)
	})

	t.Run("out of range index is clamped", func(t *testing.T) {
		t.Parallel()
		high := taglines.NewSelector(taglines.WithSource(taglines.FixedSource(10)))
		low := taglines.NewSelector(taglines.WithSource(taglines.FixedSource(-3)))
		assert.Equal(t, "third", high.Select(list))
		assert.Equal(t, "first", low.Select(list))
	})

	t.Run("nil source keeps default", func(t *testing.T) {
		t.Parallel()
		sel := taglines.NewSelector(taglines.WithSource(nil))
		assert.Contains(t, list, sel.Select(list))
	})

	t.Run("seeded generator is accepted", func(t *testing.T) {
		t.Parallel()
		sel := taglines.NewSelector(taglines.WithSource(rand.New(rand.NewPCG(1, 2))))
		assert.Contains(t, list, sel.Select(list))
	})
}

func TestSelectorDistribution(t *testing.T) {
	t.Parallel()

	list := taglines.List{"a", "b", "c", "d"}
	counts := make(map[string]int, len(list))

	const draws = 20_000
	for range draws {
		counts[taglines.Select(list)]++
	}

	// Every element must be reachable and roughly uniform.
	expected := draws / len(list)
	for _, item := range list {
		assert.InDelta(t, expected, counts[item], float64(expected)*0.15, "tagline %q", item)
	}
}

func TestSelectorIndependentDraws(t *testing.T) {
	t.Parallel()

	list := make(taglines.List, 50)
	for i := range list {
		list[i] = string(rune('A' + i%26)) + string(rune('a'+i/26))
	}

	// Two selectors in the same request must not replay the same sequence.
	a, b := taglines.NewSelector(), taglines.NewSelector()
	same := 0
	for range 100 {
		if a.Select(list) == b.Select(list) {
			same++
		}
	}
	assert.Less(t, same, 20)
}
