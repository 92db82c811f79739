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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlset/avl"
)

const (
	// A diagram is only reused while the tree stays at the same revision
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

const emptyTreeDiagram = "(empty tree)"

// NewRenderCache creates a cache for rendered tree diagrams
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func renderKey(revision uint64, showHeights bool) string {
	return fmt.Sprintf("%d/%t", revision, showHeights)
}

func CacheRender(c *cache.Cache, revision uint64, showHeights bool, diagram string) {
	c.Set(renderKey(revision, showHeights), diagram, renderCacheExpiration)
}

func GetRender(c *cache.Cache, revision uint64, showHeights bool) string {
	val, ok := c.Get(renderKey(revision, showHeights))
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRender returns the cached diagram for revision, rendering and
// caching it on a miss. Callers bump revision on every mutation.
func GetOrRender(c *cache.Cache, tree *avl.Tree[int], revision uint64, showHeights bool) string {
	if diagram := GetRender(c, revision, showHeights); diagram != "" {
		return diagram
	}
	diagram := renderTree(tree, showHeights)
	CacheRender(c, revision, showHeights, diagram)
	return diagram
}

func renderTree(tree *avl.Tree[int], showHeights bool) string {
	if tree.IsEmpty() {
		return emptyTreeDiagram
	}
	var sb strings.Builder
	tree.Fprint(&sb, showHeights)
	return strings.TrimRight(sb.String(), "\n")
}
