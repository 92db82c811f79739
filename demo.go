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

package main

import (
	"fmt"
	"io"

	"github.com/cybrota/avlset/avl"
)

// runDemo inserts keys in order, reports balance, removes one key and
// reports balance again.
func runDemo(w io.Writer, tree *avl.Tree[int], keys []int, remove int, render *RenderConfig) error {
	for _, key := range keys {
		if _, err := tree.Insert(key); err != nil {
			return fmt.Errorf("insert %d: %w", key, err)
		}
	}

	if render != nil {
		fmt.Fprintln(w, renderTree(tree, render.ShowHeights))
	}
	fmt.Fprintf(w, "AVL tree: %s\n", yesNo(tree.IsBalanced()))

	tree.Remove(remove)

	if render != nil {
		fmt.Fprintln(w, renderTree(tree, render.ShowHeights))
	}
	fmt.Fprintf(w, "AVL tree after removal: %s\n", yesNo(tree.IsBalanced()))

	return nil
}
