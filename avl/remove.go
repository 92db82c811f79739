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

// Remove deletes key from the tree and reports whether it was present.
func (tree *Tree[K]) Remove(key K) bool {
	var removed bool
	tree.root, removed = remove(tree.root, key)
	if removed {
		tree.count--
	}
	return removed
}

// remove returns the new root of the subtree and whether key was found.
func remove[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < node.key:
		node.left, removed = remove(node.left, key)
	case key > node.key:
		node.right, removed = remove(node.right, key)
	default:
		// zero or one child: the child takes the node's place
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}

		// two children: take over the in-order successor's key, then
		// remove the successor, which has no left child
		successor := minNode(node.right)
		node.key = successor.key
		node.right, _ = remove(node.right, successor.key)
		removed = true
	}

	if !removed {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// minNode returns the leftmost node of a non-empty subtree.
func minNode[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// maxNode returns the rightmost node of a non-empty subtree.
func maxNode[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}
