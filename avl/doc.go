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

// Package avl provides an ordered key set stored as a height-balanced
// (AVL) binary search tree. Insert, Remove and Contains run in O(log n).
//
// Every node caches the height of its subtree. After a mutation the
// recursion unwinds through each ancestor, refreshes its height and
// rotates where the two child heights differ by more than one.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must guard the whole tree with a single mutex.
package avl
