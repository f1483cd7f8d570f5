// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

// NodeID is the handle of a Node within an Arena.
type NodeID int32

// NoNode is the NodeID of an absent link.
const NoNode NodeID = -1

// Node is one level of a dimension chain.
//
// A node linked to a Next node describes an outer nesting level: only its
// RowCount is meaningful and its ColumnCount must be zero. The terminal node
// (Next == NoNode) describes the innermost rows, each ColumnCount elements
// wide.
//
// Prev is a back-reference for lookup only; traversals never follow it.
type Node struct {
	RowCount    uint
	ColumnCount uint
	Next        NodeID
	Prev        NodeID
}

// NewNode returns a Node with the given counts and no links.
func NewNode(columnCount, rowCount uint) Node {
	return Node{
		RowCount:    rowCount,
		ColumnCount: columnCount,
		Next:        NoNode,
		Prev:        NoNode,
	}
}

// IsTerminal reports whether the node has no Next link.
func (n Node) IsTerminal() bool {
	return n.Next == NoNode
}

// Builder accumulates the configuration of a Node.
// Its methods return the same Builder to allow chaining; Build returns
// the resulting Node value.
type Builder struct {
	node Node
}

// NewBuilder returns a Builder initialized as NewNode(columnCount, rowCount).
func NewBuilder(columnCount, rowCount uint) *Builder {
	return &Builder{node: NewNode(columnCount, rowCount)}
}

// WithRowCount sets the RowCount of the node.
func (b *Builder) WithRowCount(n uint) *Builder {
	b.node.RowCount = n
	return b
}

// WithColumnCount sets the ColumnCount of the node.
func (b *Builder) WithColumnCount(n uint) *Builder {
	b.node.ColumnCount = n
	return b
}

// WithNext sets the Next link of the node.
func (b *Builder) WithNext(id NodeID) *Builder {
	b.node.Next = id
	return b
}

// WithPrev sets the Prev back-reference of the node.
func (b *Builder) WithPrev(id NodeID) *Builder {
	b.node.Prev = id
	return b
}

// Build returns the configured Node. The Builder can still be used
// afterwards; later changes do not affect nodes already built.
func (b *Builder) Build() Node {
	return b.node
}
