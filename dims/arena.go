// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dims models the shape of an N-dimensional array as a chain of
// dimension nodes, outermost level first.
//
// Nodes live in an Arena and link to each other by NodeID. Different chains
// may share a common suffix of nodes; a change made through the Arena to a
// shared node is visible from every chain reaching it. No locking is
// provided: an Arena must not be mutated while a traversal is in progress.
package dims

import "fmt"

// Arena owns a set of dimension nodes.
//
// Links between nodes can only point to nodes already in the arena, and
// SetNext refuses links closing a loop, so every chain is finite.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Add stores n in the arena and returns its handle.
// It fails if n links to a node that is not in the arena.
func (a *Arena) Add(n Node) (NodeID, error) {
	if err := a.checkLink("next", n.Next); err != nil {
		return NoNode, err
	}
	if err := a.checkLink("prev", n.Prev); err != nil {
		return NoNode, err
	}
	return a.add(n), nil
}

func (a *Arena) add(n Node) NodeID {
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

// Node returns the node with the given handle.
// The returned boolean flag reports whether the node was found.
func (a *Arena) Node(id NodeID) (Node, bool) {
	if !a.contains(id) {
		return Node{}, false
	}
	return a.nodes[id], true
}

// Shape returns the chain starting at head.
func (a *Arena) Shape(head NodeID) Shape {
	return Shape{arena: a, head: head}
}

// SetRowCount changes the RowCount of the node id.
func (a *Arena) SetRowCount(id NodeID, n uint) error {
	if !a.contains(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	a.nodes[id].RowCount = n
	return nil
}

// SetColumnCount changes the ColumnCount of the node id.
func (a *Arena) SetColumnCount(id NodeID, n uint) error {
	if !a.contains(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	a.nodes[id].ColumnCount = n
	return nil
}

// SetNext links id to next, or unlinks it if next is NoNode.
// It fails if the link would make the chain starting at next reach id.
func (a *Arena) SetNext(id, next NodeID) error {
	if !a.contains(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	if err := a.checkLink("next", next); err != nil {
		return err
	}
	for cur := next; cur != NoNode; cur = a.nodes[cur].Next {
		if cur == id {
			return fmt.Errorf("linking node %d to node %d would create a cycle", id, next)
		}
	}
	a.nodes[id].Next = next
	return nil
}

// SetPrev sets the Prev back-reference of the node id, or clears it if
// prev is NoNode.
func (a *Arena) SetPrev(id, prev NodeID) error {
	if !a.contains(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	if err := a.checkLink("prev", prev); err != nil {
		return err
	}
	a.nodes[id].Prev = prev
	return nil
}

func (a *Arena) contains(id NodeID) bool {
	return a != nil && id >= 0 && int(id) < len(a.nodes)
}

func (a *Arena) checkLink(name string, id NodeID) error {
	if id != NoNode && !a.contains(id) {
		return fmt.Errorf("%s link to unknown node %d", name, id)
	}
	return nil
}
