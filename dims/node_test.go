// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNode(t *testing.T) {
	n := NewNode(5, 10)
	assert.Equal(t, Node{RowCount: 10, ColumnCount: 5, Next: NoNode, Prev: NoNode}, n)
	assert.True(t, n.IsTerminal())
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(0, 0).WithColumnCount(5).WithRowCount(10)
	assert.Equal(t, NewNode(5, 10), b.Build())

	n := b.WithNext(3).WithPrev(1).Build()
	assert.Equal(t, Node{RowCount: 10, ColumnCount: 5, Next: 3, Prev: 1}, n)
	assert.False(t, n.IsTerminal())

	b.WithRowCount(7)
	assert.Equal(t, uint(10), n.RowCount, "built nodes are not affected by later changes")
}
