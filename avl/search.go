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
	"strings"
)

// Search looks for key and returns its count and whether it was found.
func (tree *Tree[K]) Search(key K) (int, bool) {
	node := searchNode(tree.root, key)
	if node == nil {
		return 0, false
	}
	return node.count, true
}

// Contains reports whether key is held at least once.
func (tree *Tree[K]) Contains(key K) bool {
	return searchNode(tree.root, key) != nil
}

func searchNode[K cmp.Ordered](node *Node[K], key K) *Node[K] {
	for node != nil {
		if key < node.key {
			node = node.left
		} else if key > node.key {
			node = node.right
		} else {
			return node
		}
	}
	return nil
}

// Min returns the lowest key and its count; ok is false for an empty tree.
func (tree *Tree[K]) Min() (key K, count int, ok bool) {
	node := tree.root.first()
	if node == nil {
		return key, 0, false
	}
	return node.key, node.count, true
}

// Max returns the highest key and its count; ok is false for an empty tree.
func (tree *Tree[K]) Max() (key K, count int, ok bool) {
	node := tree.root.last()
	if node == nil {
		return key, 0, false
	}
	return node.key, node.count, true
}

// Range yields, in ascending order, every key with low <= key < high.
func (tree *Tree[K]) Range(low, high K) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		rangeSearch(tree.root, low, high, yield)
	}
}

// rangeSearch only visits subtrees that can still hold keys in [low, high).
// It returns false once yield asks to stop.
func rangeSearch[K cmp.Ordered](node *Node[K], low, high K, yield func(K, int) bool) bool {
	if node == nil {
		return true
	}

	if node.key >= low {
		if !rangeSearch(node.left, low, high, yield) {
			return false
		}
	}

	if node.key >= low && node.key < high {
		if !yield(node.key, node.count) {
			return false
		}
	}

	if node.key < high {
		return rangeSearch(node.right, low, high, yield)
	}
	return true
}

// From yields, in ascending order, every key with key >= low.
func (tree *Tree[K]) From(low K) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		ascendFrom(tree.root, low, yield)
	}
}

func ascendFrom[K cmp.Ordered](node *Node[K], low K, yield func(K, int) bool) bool {
	if node == nil {
		return true
	}
	if node.key < low {
		return ascendFrom(node.right, low, yield)
	}
	if !ascendFrom(node.left, low, yield) {
		return false
	}
	if !yield(node.key, node.count) {
		return false
	}
	return ascendFrom(node.right, low, yield)
}

// Prefix yields the keys of a string tree that start with prefix. Keys
// sharing a prefix are contiguous in byte order, so the walk stops at the
// first key past them.
func Prefix(tree *Tree[string], prefix string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for key, count := range tree.From(prefix) {
			if !strings.HasPrefix(key, prefix) || !yield(key, count) {
				return
			}
		}
	}
}
