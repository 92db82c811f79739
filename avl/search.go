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

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	return search(tree.root, key) != nil
}

func search[K cmp.Ordered](node *Node[K], key K) *Node[K] {
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Min returns the lowest key. ok is false for an empty tree.
func (tree *Tree[K]) Min() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	return minNode(tree.root).key, true
}

// Max returns the highest key. ok is false for an empty tree.
func (tree *Tree[K]) Max() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	return maxNode(tree.root).key, true
}
