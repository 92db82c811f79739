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
)

// IsBalanced reports whether every node's balance factor is within
// [-1, 1]. It reads the cached heights and does not check key order.
func (tree *Tree[K]) IsBalanced() bool {
	return isBalanced(tree.root)
}

func isBalanced[K cmp.Ordered](node *Node[K]) bool {
	if node == nil {
		return true
	}
	if bf := balanceFactor(node); bf > 1 || bf < -1 {
		return false
	}
	return isBalanced(node.left) && isBalanced(node.right)
}

// Verify walks the whole tree and checks key order, every cached height
// against a recount, balance, and the key count. The first violation is
// returned wrapped in ErrInvariant.
func (tree *Tree[K]) Verify() error {
	n, _, err := verify(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrInvariant, n, tree.count)
	}
	return nil
}

// verify returns the number of nodes and the recomputed height of the
// subtree. lo and hi are exclusive bounds inherited from the ancestors.
func verify[K cmp.Ordered](node *Node[K], lo, hi *K) (int, int, error) {
	if node == nil {
		return 0, 0, nil
	}
	if lo != nil && node.key <= *lo {
		return 0, 0, fmt.Errorf("%w: key %v is not above %v", ErrInvariant, node.key, *lo)
	}
	if hi != nil && node.key >= *hi {
		return 0, 0, fmt.Errorf("%w: key %v is not below %v", ErrInvariant, node.key, *hi)
	}

	ln, lh, err := verify(node.left, lo, &node.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := verify(node.right, &node.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, 0, fmt.Errorf("%w: key %v caches height %d, actual %d", ErrInvariant, node.key, node.height, h)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance factor %+d", ErrInvariant, node.key, d)
	}
	return ln + rn + 1, h, nil
}
