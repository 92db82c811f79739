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
	"iter"
)

// InOrder returns all keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

// All yields the keys in ascending order. The tree must not be modified
// while the sequence is being consumed.
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(tree.root, yield)
	}
}

// walk stops as soon as yield returns false.
func walk[K cmp.Ordered](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, yield) && yield(node.key) && walk(node.right, yield)
}
