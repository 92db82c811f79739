// Copyright 2025 Naren Yellavula
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
	"cmp"
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII diagram of the tree to w, right subtree above
// its parent and left subtree below. With detail set, each key is
// followed by its cached height and balance factor. Returns the depth.
func (tree *Tree[K]) Fprint(w io.Writer, detail bool) int {
	return printTree(w, tree.root, "", rootBranch, detail)
}

func printTree[K cmp.Ordered](w io.Writer, node *Node[K], prefix string, br branch, detail bool) int {
	if node == nil {
		return 0
	}

	rd := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch, detail)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detail {
		fmt.Fprintf(w, "%v h=%d %+d\n", node.key, node.height, balanceFactor(node))
	} else {
		fmt.Fprintf(w, "%v\n", node.key)
	}

	ld := 0
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch, detail)
	}

	return 1 + max(ld, rd)
}
