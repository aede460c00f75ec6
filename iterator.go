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

package avl

// Iterator is a non-owning handle on one entry of a tree, or the end
// sentinel (its zero value). Iterators compare with ==, so the usual
// loop is
//
//	for it := t.Begin(); it != t.End(); it = it.Next() { ... }
//
// Any mutation of the tree (Insert, Remove, Merge, Clear) invalidates
// every iterator previously drawn from it. Advancing or dereferencing
// the end sentinel or an invalidated iterator is a caller bug with
// undefined behavior; it is not checked here.
type Iterator[K, V any] struct {
	node *node[K, V]
}

// Begin returns an iterator at the smallest key, or the end sentinel
// for an empty tree. O(log n).
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: leftmost(t.root)}
}

// End returns the end sentinel. It is never dereferenced or advanced.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid reports whether the iterator points at an entry, i.e. is not
// the end sentinel.
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil
}

// Next returns the iterator at the next entry in ascending key order,
// or the end sentinel past the largest key. It walks parent links, so
// no stack is kept: O(height) worst case, amortized O(1) over a full
// traversal.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	n := it.node
	if n.right != nil {
		return Iterator[K, V]{node: leftmost(n.right)}
	}
	// Climb while n is a right child; the first ancestor reached via a
	// left-child step is the successor.
	for n.up != nil && n.up.right == n {
		n = n.up
	}
	return Iterator[K, V]{node: n.up}
}

// Key returns the key at the iterator.
func (it Iterator[K, V]) Key() K {
	return it.node.key
}

// Value returns the value at the iterator.
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// SetValue replaces the value at the iterator. The key is untouched,
// so the tree structure is unaffected and other iterators stay valid.
func (it Iterator[K, V]) SetValue(v V) {
	it.node.value = v
}
