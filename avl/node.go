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

// Node is a single key of the tree. Its links are owned by the tree and
// can only be read from outside the package.
type Node[K cmp.Ordered] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int // 1 for a leaf
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left subtree or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node[K]) Height() int {
	return height(n)
}

func height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// updateHeight trusts the cached heights of both children.
func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}
