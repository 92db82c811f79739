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

import "cmp"

// Insert adds key to the tree and reports whether it was added. A key
// already present leaves the tree unchanged. When the tree has reached its
// limit, an absent key is refused with ErrCapacity before anything is
// linked.
func (tree *Tree[K]) Insert(key K) (bool, error) {
	if tree.limit > 0 && tree.count >= tree.limit && !tree.Contains(key) {
		return false, ErrCapacity
	}

	var added bool
	tree.root, added = insert(tree.root, key)
	if added {
		tree.count++
	}
	return added, nil
}

// insert returns the new root of the subtree and whether key was added.
func insert[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return newNode(key), true
	}

	var added bool
	switch {
	case key < node.key:
		node.left, added = insert(node.left, key)
	case key > node.key:
		node.right, added = insert(node.right, key)
	default:
		return node, false
	}

	updateHeight(node)
	return rebalance(node), added
}
