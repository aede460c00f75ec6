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

// node is the atomic unit of the tree: a key/value pair, a cached
// subtree height, and links to at most two children plus the parent.
// The parent link makes in-order iteration possible without a stack.
type node[K, V any] struct {
	key    K
	value  V
	height int // cached: 1 + max(height(left), height(right))
	left   *node[K, V]
	right  *node[K, V]
	up     *node[K, V] // parent; nil for the root
}

// height returns the cached height of a subtree. An absent subtree has
// height -1, a single node has height 0.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight re-caches n's height from the cached heights of its
// children. Must be called after the children are finalized.
func updateHeight[K, V any](n *node[K, V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is the balance factor of n: height(left) - height(right).
// n must not be nil.
func balance[K, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

// setLeft attaches c as n's left child and wires c's parent link.
func (n *node[K, V]) setLeft(c *node[K, V]) {
	n.left = c
	if c != nil {
		c.up = n
	}
}

// setRight attaches c as n's right child and wires c's parent link.
func (n *node[K, V]) setRight(c *node[K, V]) {
	n.right = c
	if c != nil {
		c.up = n
	}
}

// leftmost returns the smallest node of the subtree rooted at n, or nil
// for an empty subtree.
func leftmost[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}
