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

// pair is one scratch entry of the merge's sorted sequence.
type pair[K, V any] struct {
	key   K
	value V
}

// Merge folds the entries of other into t in O(m+n) time and space:
// both trees are walked in order simultaneously into one sorted,
// duplicate-free sequence, and a perfectly balanced tree is rebuilt
// from it. When a key is present in both trees, t's value wins and
// both walks advance past it.
//
// t's old node graph is replaced only after the new one is fully
// built. other is never mutated; its entries are copied out through
// its iterator, so merging a tree into itself is allowed and leaves
// the key/value set unchanged. All iterators previously drawn from t
// are invalidated; iterators on other stay valid.
func (t *Tree[K, V]) Merge(other *Tree[K, V]) {
	pairs := t.mergedPairs(other)
	t.root = buildBalanced(pairs, (*node[K, V])(nil))
}

// mergedPairs is a standard merge of two sorted sequences, sourced
// from the two trees' in-order iterators.
func (t *Tree[K, V]) mergedPairs(other *Tree[K, V]) []pair[K, V] {
	var pairs []pair[K, V]

	a, b := t.Begin(), other.Begin()
	for a.Valid() && b.Valid() {
		switch {
		case t.less(a.Key(), b.Key()):
			pairs = append(pairs, pair[K, V]{a.Key(), a.Value()})
			a = a.Next()
		case t.less(b.Key(), a.Key()):
			pairs = append(pairs, pair[K, V]{b.Key(), b.Value()})
			b = b.Next()
		default:
			// Equal keys: t's value wins, both sides advance.
			pairs = append(pairs, pair[K, V]{a.Key(), a.Value()})
			a = a.Next()
			b = b.Next()
		}
	}
	for ; a.Valid(); a = a.Next() {
		pairs = append(pairs, pair[K, V]{a.Key(), a.Value()})
	}
	for ; b.Valid(); b = b.Next() {
		pairs = append(pairs, pair[K, V]{b.Key(), b.Value()})
	}

	return pairs
}

// buildBalanced builds a perfectly height-balanced subtree from a
// sorted slice: the middle element becomes the root, the halves become
// its subtrees, parent links and cached heights are wired on return.
// O(p) for p pairs; the resulting height is the minimum possible.
func buildBalanced[K, V any](pairs []pair[K, V], up *node[K, V]) *node[K, V] {
	if len(pairs) == 0 {
		return nil
	}

	mid := len(pairs) / 2
	n := &node[K, V]{key: pairs[mid].key, value: pairs[mid].value, up: up}
	n.left = buildBalanced(pairs[:mid], n)
	n.right = buildBalanced(pairs[mid+1:], n)
	updateHeight(n)

	return n
}
