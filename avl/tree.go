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

// Option configures a Tree created by New.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit caps the number of keys the tree accepts. Zero or a negative
// value means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Tree is an ordered set of unique keys.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
	limit int
}

// New creates an empty tree.
func New[K cmp.Ordered](opts ...Option) *Tree[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K]{limit: max(o.limit, 0)}
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Limit returns the configured key limit, 0 when unlimited.
func (tree *Tree[K]) Limit() int {
	return tree.limit
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Clear drops every key. The node graph is released as a whole.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}
