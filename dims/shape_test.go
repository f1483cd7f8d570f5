// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fmt.Stringer = Shape{}

func mustShape(t *testing.T, rowCounts []uint, columnCount uint) Shape {
	t.Helper()
	s, err := NewShape(rowCounts, columnCount)
	require.NoError(t, err)
	return s
}

func TestNewShape(t *testing.T) {
	s := mustShape(t, []uint{2, 3, 4}, 5)
	require.Equal(t, 3, s.Depth())
	require.Equal(t, 3, s.Arena().Len())

	head, ok := s.Node()
	require.True(t, ok)
	assert.Equal(t, Node{RowCount: 2, ColumnCount: 0, Next: 1, Prev: NoNode}, head)

	mid, ok := s.Next()
	require.True(t, ok)
	n, _ := mid.Node()
	assert.Equal(t, Node{RowCount: 3, ColumnCount: 0, Next: 2, Prev: 0}, n)

	last, ok := mid.Next()
	require.True(t, ok)
	n, _ = last.Node()
	assert.Equal(t, Node{RowCount: 4, ColumnCount: 5, Next: NoNode, Prev: 1}, n)

	_, ok = last.Next()
	assert.False(t, ok)

	back, ok := last.Prev()
	require.True(t, ok)
	assert.Equal(t, mid.Head(), back.Head())

	t.Run("no row counts", func(t *testing.T) {
		s, err := NewShape(nil, 5)
		assert.EqualError(t, err, "a shape requires at least one row count")
		assert.True(t, s.IsZero())
	})
}

func TestShape_SingleNode(t *testing.T) {
	testCases := []struct{ columns, rows uint }{
		{5, 10},
		{1, 1},
		{7, 3},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d×%d", tc.rows, tc.columns), func(t *testing.T) {
			a := NewArena()
			id, err := a.Add(NewNode(tc.columns, tc.rows))
			require.NoError(t, err)
			s := a.Shape(id)

			assert.Equal(t, tc.columns*tc.rows, s.TotalElementCount())
			assert.Equal(t, tc.columns, s.Columns())
			assert.Equal(t, uint(1), s.InnerGroupCount())
			assert.Equal(t, tc.rows, s.InnermostRowCount())
			assert.Equal(t, tc.rows, s.Rows())
			assert.True(t, s.IsValid())
			assert.Equal(t, fmt.Sprintf("%d × %d", tc.rows, tc.columns), s.String())
		})
	}
}

func TestShape_Chain(t *testing.T) {
	testCases := []struct {
		rowCounts  []uint
		columns    uint
		total      uint
		innerGroup uint
		innermost  uint
		str        string
	}{
		{[]uint{3, 10}, 5, 150, 3, 10, "3 → 10 × 5"},
		{[]uint{2, 3, 4}, 5, 120, 6, 4, "2 → 3 → 4 × 5"},
		{[]uint{10, 10, 10}, 5, 5000, 100, 10, "10 → 10 → 10 × 5"},
		{[]uint{2, 2, 2, 2}, 2, 32, 8, 2, "2 → 2 → 2 → 2 × 2"},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			s := mustShape(t, tc.rowCounts, tc.columns)
			assert.Equal(t, tc.total, s.TotalElementCount())
			assert.Equal(t, tc.innerGroup, s.InnerGroupCount())
			assert.Equal(t, tc.innermost, s.InnermostRowCount())
			assert.Equal(t, tc.innerGroup*tc.innermost, s.Rows())
			assert.Equal(t, tc.columns, s.Columns())
			assert.True(t, s.IsValid())
			assert.Equal(t, tc.str, s.String())

			n, err := s.CheckedTotalElementCount()
			require.NoError(t, err)
			assert.Equal(t, tc.total, n)
		})
	}
}

func TestShape_ZeroRowsCollapse(t *testing.T) {
	s := mustShape(t, []uint{2, 0, 4}, 5)
	assert.Equal(t, uint(0), s.InnerGroupCount())
	assert.Equal(t, uint(0), s.TotalElementCount())
	assert.Equal(t, uint(4), s.InnermostRowCount())
	assert.Equal(t, uint(0), s.Rows())
	assert.False(t, s.IsValid())
	assert.Equal(t, "2 → 4 × 5", s.String())
}

func TestShape_Validate(t *testing.T) {
	build := func(t *testing.T, nodes ...Node) Shape {
		t.Helper()
		a := NewArena()
		next := NoNode
		for i := len(nodes) - 1; i >= 0; i-- {
			n := nodes[i]
			n.Next = next
			id, err := a.Add(n)
			require.NoError(t, err)
			next = id
		}
		return a.Shape(next)
	}

	testCases := []struct {
		name  string
		nodes []Node
		err   string
	}{
		{"single", []Node{NewNode(5, 10)}, ""},
		{"chain", []Node{NewNode(0, 10), NewNode(0, 10), NewNode(5, 10)}, ""},
		{"zero rows", []Node{NewNode(5, 0)}, "node at depth 0 has zero rows"},
		{"zero rows inner", []Node{NewNode(0, 3), NewNode(5, 0)}, "node at depth 1 has zero rows"},
		{"columns in outer node", []Node{NewNode(0, 10), NewNode(3, 10), NewNode(5, 10)}, "non-terminal node at depth 1 has 3 columns, expected 0"},
		{"terminal without columns", []Node{NewNode(0, 10)}, "terminal node at depth 0 has zero columns"},
		{"terminal without columns in chain", []Node{NewNode(0, 2), NewNode(0, 10)}, "terminal node at depth 1 has zero columns"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := build(t, tc.nodes...)
			err := s.Validate()
			if tc.err == "" {
				assert.NoError(t, err)
				assert.True(t, s.IsValid())
			} else {
				assert.EqualError(t, err, tc.err)
				assert.False(t, s.IsValid())
			}
		})
	}
}

func TestShape_Empty(t *testing.T) {
	for name, s := range map[string]Shape{
		"zero value":   {},
		"unknown head": NewArena().Shape(3),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.IsZero())
			assert.Equal(t, 0, s.Depth())
			assert.Equal(t, uint(0), s.Columns())
			assert.Equal(t, uint(1), s.InnerGroupCount())
			assert.Equal(t, uint(0), s.InnermostRowCount())
			assert.Equal(t, uint(0), s.Rows())
			assert.Equal(t, uint(0), s.TotalElementCount())
			assert.EqualError(t, s.Validate(), "empty dimension chain")
			assert.False(t, s.IsValid())
			assert.Equal(t, "Empty dimensions", s.String())

			_, ok := s.Node()
			assert.False(t, ok)
			_, ok = s.Terminal()
			assert.False(t, ok)
			_, ok = s.Next()
			assert.False(t, ok)
			_, ok = s.Prev()
			assert.False(t, ok)
			assert.True(t, s.Clone().IsZero())
		})
	}

	assert.Equal(t, NoNode, Shape{}.Head())
}

func TestEmpty(t *testing.T) {
	s := Empty()
	require.False(t, s.IsZero())
	n, ok := s.Node()
	require.True(t, ok)
	assert.Equal(t, NewNode(0, 0), n)
	assert.Equal(t, uint(0), s.TotalElementCount())
	assert.False(t, s.IsValid())
	assert.Equal(t, "Empty dimensions", s.String())

	assert.NotSame(t, s.Arena(), Empty().Arena())
}

func TestShape_Clone(t *testing.T) {
	s := mustShape(t, []uint{2, 3, 4}, 5)
	c := s.Clone()
	require.NotSame(t, s.Arena(), c.Arena())
	assert.Equal(t, s.String(), c.String())
	assert.Equal(t, s.TotalElementCount(), c.TotalElementCount())

	require.NoError(t, s.Arena().SetColumnCount(2, 1))
	assert.Equal(t, "2 → 3 → 4 × 1", s.String())
	assert.Equal(t, "2 → 3 → 4 × 5", c.String())

	t.Run("suffix", func(t *testing.T) {
		next, ok := s.Next()
		require.True(t, ok)
		c := next.Clone()
		assert.Equal(t, 2, c.Depth())
		_, ok = c.Prev()
		assert.False(t, ok)
	})
}

func TestShape_CheckedTotalElementCount_Overflow(t *testing.T) {
	testCases := []struct {
		rowCounts []uint
		columns   uint
	}{
		{[]uint{math.MaxUint, 2}, 1},
		{[]uint{2}, math.MaxUint},
		{[]uint{math.MaxUint/2 + 1, 2}, 1},
	}
	for _, tc := range testCases {
		s := mustShape(t, tc.rowCounts, tc.columns)
		n, err := s.CheckedTotalElementCount()
		assert.Error(t, err)
		assert.Equal(t, uint(0), n)
	}
}

func TestShape_Traversal_LongChain(t *testing.T) {
	rowCounts := make([]uint, 100_000)
	for i := range rowCounts {
		rowCounts[i] = 1
	}
	s := mustShape(t, rowCounts, 3)
	assert.Equal(t, uint(3), s.TotalElementCount())
	assert.True(t, s.IsValid())
	assert.Equal(t, 100_000, s.Depth())
}
