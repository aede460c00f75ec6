// Copyright 2025 Lev Pechersky
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl implements a height-balanced ordered dictionary (an AVL
// tree) with parent pointers, which allow in-order iteration through
// the nodes without an auxiliary stack.
//
// Keys need only a strict less-than relation; equality is derived from
// it (a == b iff neither a < b nor b < a). Values are unconstrained and
// may themselves be trees, so nested dictionaries work.
//
// Note: an individual tree is not thread safe, so either access it
// from a single goroutine only or guard it with a caller-supplied
// mutex.
package avl

import "cmp"

// Tree is an ordered key-value dictionary. It owns its whole node
// graph; iterators drawn from it are observational handles that become
// invalid after any mutation.
type Tree[K, V any] struct {
	root *node[K, V]
	less func(a, b K) bool
}

// New creates an empty tree for a naturally ordered key type.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc creates an empty tree ordered by the given strict less-than
// relation. Key equality is derived from it, so keys need no equality
// operation of their own.
func NewFunc[K, V any](less func(a, b K) bool) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// NewSingle creates a tree holding exactly one entry.
func NewSingle[K cmp.Ordered, V any](key K, value V) *Tree[K, V] {
	t := New[K, V]()
	t.Insert(key, value)
	return t
}

// equal derives key equality from the ordering relation.
func (t *Tree[K, V]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Empty reports whether the tree contains no entries.
func (t *Tree[K, V]) Empty() bool {
	return t.root == nil
}

// Size counts the entries by a full traversal. O(n).
func (t *Tree[K, V]) Size() int {
	return countNodes(t.root)
}

func countNodes[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// Clear discards all entries. The tree behaves like a freshly
// constructed one afterwards; calling Clear on an empty tree is a
// no-op.
func (t *Tree[K, V]) Clear() {
	t.root = nil
}

// Clone returns an independent copy of the tree, built by merging into
// an initially empty tree. The copy holds the identical key/value set
// but is not structurally identical to the original.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := NewFunc[K, V](t.less)
	c.Merge(t)
	return c
}

// setRoot installs n as the tree root and clears its parent link.
func (t *Tree[K, V]) setRoot(n *node[K, V]) {
	t.root = n
	if n != nil {
		n.up = nil
	}
}

// Find returns an iterator at the entry with the given key, or the end
// iterator if the key is absent. O(log n).
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: t.findNode(t.root, key)}
}

func (t *Tree[K, V]) findNode(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	if t.less(key, n.key) {
		return t.findNode(n.left, key)
	}
	if t.less(n.key, key) {
		return t.findNode(n.right, key)
	}
	return n
}

// Insert adds an entry. If the key is already present the tree is left
// unchanged and false is returned. O(log n).
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.Find(key) != t.End() {
		return false
	}
	t.setRoot(t.insertAt(t.root, key, value))
	return true
}

// insertAt descends to the insertion point and rebalances while the
// recursion unwinds. The key must not already be present; Insert
// establishes that before calling here.
func (t *Tree[K, V]) insertAt(n *node[K, V], key K, value V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, value: value}
	}

	if t.less(key, n.key) {
		n.setLeft(t.insertAt(n.left, key, value))
	} else {
		n.setRight(t.insertAt(n.right, key, value))
	}

	updateHeight(n)
	return t.rebalance(n)
}

// Remove deletes the entry with the given key, or does nothing if the
// key is absent. The presence check happens once, before descending.
// O(log n).
func (t *Tree[K, V]) Remove(key K) {
	if t.Find(key) == t.End() {
		return
	}
	t.setRoot(t.removeAt(t.root, key))
}

// removeAt deletes the node carrying key from the subtree rooted at n
// and rebalances every level while the recursion unwinds. The key must
// be present; Remove establishes that before calling here.
func (t *Tree[K, V]) removeAt(n *node[K, V], key K) *node[K, V] {
	if t.less(key, n.key) {
		n.setLeft(t.removeAt(n.left, key))
	} else if t.less(n.key, key) {
		n.setRight(t.removeAt(n.right, key))
	} else {
		// No children: detach.
		if n.left == nil && n.right == nil {
			return nil
		}
		// One child: splice it up.
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: swap in the in-order successor's entry and
		// delete that key from the right subtree instead.
		succ := leftmost(n.right)
		n.key = succ.key
		n.value = succ.value
		n.setRight(t.removeAt(n.right, succ.key))
	}

	updateHeight(n)
	return t.rebalance(n)
}
