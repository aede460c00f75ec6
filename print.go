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

import (
	"fmt"
	"io"
)

// to control the dump routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Dump writes an ASCII graphic of the tree to w, right subtree on top,
// one node per line with its height and parent key. Returns the number
// of levels written.
func (t *Tree[K, V]) Dump(w io.Writer) int {
	return dumpTree(w, t.root, "", atRoot)
}

// internal dump - returns the maximum depth of the subtree
func dumpTree[K, V any](w io.Writer, n *node[K, V], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		s := "       "
		if br == atLeft {
			s = "|      "
		}
		rd = dumpTree(w, n.right, prefix+s, atRight)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if n.up != nil {
		fmt.Fprintf(w, "%v → %v h=%d ^%v\n", n.key, n.value, n.height, n.up.key)
	} else {
		fmt.Fprintf(w, "%v → %v h=%d ^-\n", n.key, n.value, n.height)
	}
	if n.left != nil {
		s := "       "
		if br == atRight {
			s = "|      "
		}
		ld = dumpTree(w, n.left, prefix+s, atLeft)
	}
	return 1 + max(rd, ld)
}
