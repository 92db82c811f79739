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

// rotateRight lifts node.left into node's place and returns it.
//
//	    node          pivot
//	   /    \        /     \
//	pivot    c  =>  a      node
//	/   \                 /    \
//	a    b               b      c
func rotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	// child first: pivot's height depends on node's
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the balance of a node whose height is already
// current and returns the root of the resulting subtree. Equal grandchild
// heights are resolved with a single rotation.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil {
		return nil
	}

	bf := balanceFactor(node)

	// Left-heavy
	if bf > 1 {
		if height(node.left.left) >= height(node.left.right) {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if bf < -1 {
		if height(node.right.right) >= height(node.right.left) {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
