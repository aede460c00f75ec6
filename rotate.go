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

// rotateLeft promotes n's right child to the subtree root and returns
// it. The caller re-attaches the returned node, which wires its parent
// link. O(1): a bounded number of links and two height updates.
func (t *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	pivot := n.right

	n.setRight(pivot.left)
	pivot.setLeft(n)

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	pivot := n.left

	n.setLeft(pivot.right)
	pivot.setRight(n)

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL invariant at n after an insertion or
// deletion changed a subtree height by one, and returns the subtree's
// new root. The child balance tests use >= 0 and <= 0: a child balance
// of exactly zero (possible only after a deletion) takes the single
// rotation, which a strict comparison would misroute into the double
// case.
func (t *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	bf := balance(n)

	// Left-heavy
	if bf > 1 {
		if balance(n.left) >= 0 {
			return t.rotateRight(n)
		}
		// Left-Right case
		n.setLeft(t.rotateLeft(n.left))
		return t.rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balance(n.right) <= 0 {
			return t.rotateLeft(n)
		}
		// Right-Left case
		n.setRight(t.rotateRight(n.right))
		return t.rotateLeft(n)
	}

	return n
}
