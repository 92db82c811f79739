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

package avl_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlset/avl"
)

// heightBound is the AVL worst case for a tree of n keys.
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		rng := rand.New(rand.NewSource(seed))
		tree := avl.New[int]()
		present := make(map[int]struct{})

		for op := 0; op < 4000; op++ {
			k := rng.Intn(500)
			_, had := present[k]
			before := tree.Len()

			if rng.Intn(3) == 0 {
				removed := tree.Remove(k)
				require.Equal(t, had, removed, "seed %d op %d remove %d", seed, op, k)
				if had {
					require.Equal(t, before-1, tree.Len())
				} else {
					require.Equal(t, before, tree.Len())
				}
				delete(present, k)
			} else {
				added, err := tree.Insert(k)
				require.NoError(t, err)
				require.Equal(t, !had, added, "seed %d op %d insert %d", seed, op, k)
				if had {
					require.Equal(t, before, tree.Len())
				} else {
					require.Equal(t, before+1, tree.Len())
				}
				present[k] = struct{}{}
			}

			require.NoError(t, tree.Verify(), "seed %d op %d", seed, op)
			require.True(t, tree.IsBalanced())
			require.LessOrEqual(t, tree.Height(), heightBound(tree.Len()))
		}

		assert.Equal(t, sortedKeys(present), tree.InOrder())
	}
}

func TestHeightBoundSequential(t *testing.T) {
	ascending := avl.New[int]()
	descending := avl.New[int]()
	const n = 1 << 12
	for i := 0; i < n; i++ {
		_, err := ascending.Insert(i)
		require.NoError(t, err)
		_, err = descending.Insert(n - i)
		require.NoError(t, err)
	}

	assert.LessOrEqual(t, ascending.Height(), heightBound(n))
	assert.LessOrEqual(t, descending.Height(), heightBound(n))
	assert.NoError(t, ascending.Verify())
	assert.NoError(t, descending.Verify())

	// drain from the low end, the shape that stresses removal rebalancing
	for i := 0; i < n; i++ {
		require.True(t, ascending.Remove(i))
		if i%97 == 0 {
			require.NoError(t, ascending.Verify())
			require.LessOrEqual(t, ascending.Height(), heightBound(ascending.Len()))
		}
	}
	assert.True(t, ascending.IsEmpty())
}

func TestInsertThenRemoveRestoresKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := avl.New[int]()
	for i := 0; i < 300; i++ {
		_, err := tree.Insert(rng.Intn(10000) * 2)
		require.NoError(t, err)
	}

	for i := 0; i < 200; i++ {
		k := rng.Intn(10000)*2 + 1 // odd keys are never present
		keys := tree.InOrder()

		added, err := tree.Insert(k)
		require.NoError(t, err)
		require.True(t, added)
		require.True(t, tree.Remove(k))

		require.Equal(t, keys, tree.InOrder())
		require.NoError(t, tree.Verify())
	}
}

func TestRemoveEveryKeyFromEveryPrefix(t *testing.T) {
	keys := []int{
		4201, 1254, 8608, 1639, 8950, 6740, 1720, 506, 8382, 6774,
		1247, 1250, 1264, 1258, 1255, 2247, 2004, 2194, 2644, 2169,
	}

	for i := 0; i <= len(keys); i++ {
		tree := build(t, keys...)
		for _, k := range keys[:i] {
			require.True(t, tree.Remove(k))
			require.NoError(t, tree.Verify())
		}

		expected := slices.Clone(keys[i:])
		slices.Sort(expected)
		assert.Equal(t, expected, tree.InOrder())
		assert.Equal(t, len(expected), tree.Len())
	}
}
