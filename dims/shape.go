// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shape is a dimension chain, identified by its head node within an Arena.
//
// For example, the chain 2 → 3 → 4 × 5 describes 2 groups of 3 groups of
// 4 rows, each row holding 5 elements: 120 elements in total.
//
// The zero Shape is the empty chain. All methods walk the chain from the
// head following Next links, without modifying it.
type Shape struct {
	arena *Arena
	head  NodeID
}

// NewShape builds a new chain in a fresh Arena. Each value of rowCounts
// becomes one node, outermost first; the last node is the terminal one and
// carries columnCount.
//
// The values are not validated: see Shape.Validate.
func NewShape(rowCounts []uint, columnCount uint) (Shape, error) {
	if len(rowCounts) == 0 {
		return Shape{}, fmt.Errorf("a shape requires at least one row count")
	}
	nodes := make([]Node, len(rowCounts))
	for i, r := range rowCounts {
		nodes[i] = NewNode(0, r)
	}
	nodes[len(nodes)-1].ColumnCount = columnCount
	return linkNodes(nodes), nil
}

// Empty returns the canonical empty shape: a single node with zero rows
// and zero columns, in its own Arena.
func Empty() Shape {
	a := NewArena()
	return a.Shape(a.add(NewNode(0, 0)))
}

// linkNodes stores the nodes in a fresh Arena, chaining them in order
// with both Next and Prev links. Incoming links are ignored.
func linkNodes(nodes []Node) Shape {
	if len(nodes) == 0 {
		return Shape{}
	}
	a := &Arena{nodes: make([]Node, 0, len(nodes))}
	for i, n := range nodes {
		n.Prev, n.Next = NoNode, NoNode
		if i > 0 {
			n.Prev = NodeID(i - 1)
		}
		if i < len(nodes)-1 {
			n.Next = NodeID(i + 1)
		}
		a.add(n)
	}
	return a.Shape(0)
}

// walk visits each node of the chain in order, until visit returns false.
func (s Shape) walk(visit func(depth int, n Node) bool) {
	depth := 0
	for id := s.head; s.arena.contains(id); depth++ {
		n := s.arena.nodes[id]
		if !visit(depth, n) {
			return
		}
		id = n.Next
	}
}

// Arena returns the arena holding the chain nodes. It is nil for the
// zero Shape.
func (s Shape) Arena() *Arena {
	return s.arena
}

// Head returns the handle of the first node.
func (s Shape) Head() NodeID {
	if s.arena == nil {
		return NoNode
	}
	return s.head
}

// IsZero reports whether the chain has no nodes.
func (s Shape) IsZero() bool {
	return !s.arena.contains(s.head)
}

// Node returns the head node.
func (s Shape) Node() (Node, bool) {
	return s.arena.Node(s.head)
}

// Next returns the chain starting after the head node.
// The returned boolean flag is false when the head is the terminal node.
func (s Shape) Next() (Shape, bool) {
	n, ok := s.Node()
	if !ok || n.Next == NoNode {
		return Shape{}, false
	}
	return s.arena.Shape(n.Next), true
}

// Prev returns the chain starting at the head's Prev back-reference.
func (s Shape) Prev() (Shape, bool) {
	n, ok := s.Node()
	if !ok || n.Prev == NoNode {
		return Shape{}, false
	}
	return s.arena.Shape(n.Prev), true
}

// Depth returns the number of nodes in the chain.
func (s Shape) Depth() int {
	d := 0
	s.walk(func(int, Node) bool {
		d++
		return true
	})
	return d
}

// Terminal returns the last node of the chain.
func (s Shape) Terminal() (Node, bool) {
	var last Node
	found := false
	s.walk(func(_ int, n Node) bool {
		last, found = n, true
		return true
	})
	return last, found
}

// Columns returns the ColumnCount of the terminal node, that is the width
// of the innermost rows. It is 0 for the empty chain.
func (s Shape) Columns() uint {
	n, _ := s.Terminal()
	return n.ColumnCount
}

// Rows returns InnerGroupCount() * InnermostRowCount().
//
// For chains deeper than two nodes this is not the number of leaf rows
// implied by TotalElementCount; the formula is kept as is.
func (s Shape) Rows() uint {
	return s.InnerGroupCount() * s.InnermostRowCount()
}

// InnerGroupCount returns the product of the RowCount of every node
// except the terminal one. It is 1 for a single-node chain, and 0 if any
// of those nodes has zero rows.
func (s Shape) InnerGroupCount() uint {
	g := uint(1)
	s.walk(func(_ int, n Node) bool {
		if n.Next != NoNode {
			g *= n.RowCount
		}
		return true
	})
	return g
}

// InnermostRowCount returns the RowCount of the terminal node, or 0 if the
// terminal node has no columns.
func (s Shape) InnermostRowCount() uint {
	n, ok := s.Terminal()
	if !ok || n.ColumnCount == 0 {
		return 0
	}
	return n.RowCount
}

// TotalElementCount returns the product of the RowCount of all nodes,
// multiplied by the ColumnCount of the terminal node.
//
// A zero value is returned for the empty chain and for any chain with zero
// rows or columns. Overflow is not detected: see CheckedTotalElementCount.
func (s Shape) TotalElementCount() uint {
	n := uint(1)
	columns := uint(0)
	s.walk(func(_ int, node Node) bool {
		n *= node.RowCount
		columns = node.ColumnCount
		return true
	})
	return n * columns
}

// CheckedTotalElementCount is like TotalElementCount, but returns an error
// if the computation overflows.
func (s Shape) CheckedTotalElementCount() (uint, error) {
	n := uint(1)
	columns := uint(0)
	var err error
	s.walk(func(_ int, node Node) bool {
		n, err = checkedMul(n, node.RowCount)
		columns = node.ColumnCount
		return err == nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to compute total element count: %w", err)
	}
	if n, err = checkedMul(n, columns); err != nil {
		return 0, fmt.Errorf("failed to compute total element count: %w", err)
	}
	return n, nil
}

var errEmptyChain = errors.New("empty dimension chain")

// Validate checks the chain against the following rules, returning an
// error describing the first violation, otherwise nil:
//
//   - the chain must have at least one node
//   - every node must have a non-zero RowCount
//   - a node with a Next link must have zero ColumnCount
//   - the terminal node must have a non-zero ColumnCount
func (s Shape) Validate() error {
	if s.IsZero() {
		return errEmptyChain
	}
	var err error
	s.walk(func(depth int, n Node) bool {
		switch {
		case n.RowCount == 0:
			err = fmt.Errorf("node at depth %d has zero rows", depth)
		case n.Next != NoNode && n.ColumnCount != 0:
			err = fmt.Errorf("non-terminal node at depth %d has %d columns, expected 0", depth, n.ColumnCount)
		case n.Next == NoNode && n.ColumnCount == 0:
			err = fmt.Errorf("terminal node at depth %d has zero columns", depth)
		}
		return err == nil
	})
	return err
}

// IsValid reports whether Validate succeeds.
func (s Shape) IsValid() bool {
	return s.Validate() == nil
}

// Clone copies the chain into a new Arena. The result shares no node with
// s; the Prev link of the head is dropped.
func (s Shape) Clone() Shape {
	var nodes []Node
	s.walk(func(_ int, n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return linkNodes(nodes)
}

// String renders the chain from the outermost level to the innermost,
// such as "2 → 3 → 4 × 5". Non-terminal nodes with zero rows and a
// terminal node with zero columns are omitted; if nothing is left,
// the result is "Empty dimensions".
func (s Shape) String() string {
	var parts []string
	s.walk(func(_ int, n Node) bool {
		switch {
		case n.Next == NoNode && n.ColumnCount > 0:
			parts = append(parts, strconv.FormatUint(uint64(n.RowCount), 10)+" × "+strconv.FormatUint(uint64(n.ColumnCount), 10))
		case n.Next != NoNode && n.RowCount > 0:
			parts = append(parts, strconv.FormatUint(uint64(n.RowCount), 10))
		}
		return true
	})
	if len(parts) == 0 {
		return "Empty dimensions"
	}
	return strings.Join(parts, " → ")
}
