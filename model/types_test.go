package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitEquality(t *testing.T) {
	assert.Equal(t, Hit{Score: 3, Doc: 1}, Hit{Score: 3, Doc: 1})
	assert.NotEqual(t, Hit{Score: 3, Doc: 1}, Hit{Score: 3, Doc: 2})
	assert.Equal(t, "Hit(7:42)", Hit{Score: 42, Doc: 7}.String())
}

func TestOrder(t *testing.T) {
	t.Run("ScoreOnly", func(t *testing.T) {
		var ord Order
		assert.Equal(t, TiesUnspecified, ord.TieBreak())

		assert.True(t, ord.Better(Hit{Score: 9}, Hit{Score: 5}))
		assert.False(t, ord.Better(Hit{Score: 5}, Hit{Score: 9}))
		assert.True(t, ord.Worse(Hit{Score: 5}, Hit{Score: 9}))

		// Equal scores are mutually unordered regardless of doc.
		a := Hit{Score: 7, Doc: 1}
		b := Hit{Score: 7, Doc: 2}
		assert.False(t, ord.Better(a, b))
		assert.False(t, ord.Better(b, a))
		assert.Equal(t, 0, ord.Compare(a, b))
	})

	t.Run("DocAsc", func(t *testing.T) {
		ord := NewOrder(TiesByDocAsc)

		a := Hit{Score: 7, Doc: 1}
		b := Hit{Score: 7, Doc: 2}
		assert.True(t, ord.Better(a, b))
		assert.False(t, ord.Better(b, a))
		assert.True(t, ord.Worse(b, a))
		assert.Equal(t, -1, ord.Compare(a, b))
		assert.Equal(t, 1, ord.Compare(b, a))
		assert.Equal(t, 0, ord.Compare(a, a))

		// Score still dominates.
		assert.True(t, ord.Better(Hit{Score: 8, Doc: 99}, a))
	})

	t.Run("CompareSortsDescending", func(t *testing.T) {
		ord := NewOrder(TiesByDocAsc)
		hits := []Hit{{5, 3}, {1, 0}, {9, 4}, {5, 1}, {3, 2}}

		slices.SortFunc(hits, ord.Compare)

		assert.Equal(t, []Hit{{9, 4}, {5, 1}, {5, 3}, {3, 2}, {1, 0}}, hits)
	})
}

func TestTieBreakString(t *testing.T) {
	assert.Equal(t, "unspecified", TiesUnspecified.String())
	assert.Equal(t, "doc-asc", TiesByDocAsc.String())
	assert.Equal(t, "TieBreak(9)", TieBreak(9).String())
}
