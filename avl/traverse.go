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
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Order selects the visiting order of a traversal.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// ErrUnknownOrder is returned by ParseOrder for names it does not know.
var ErrUnknownOrder = errors.New("unknown traversal order")

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts "pre", "in", "post" and their "-order" spellings.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pre", "preorder", "pre-order":
		return PreOrder, nil
	case "in", "inorder", "in-order", "":
		return InOrder, nil
	case "post", "postorder", "post-order":
		return PostOrder, nil
	}
	return InOrder, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Entry is a key with its count, as produced by Collect.
type Entry[K cmp.Ordered] struct {
	Key   K
	Count int
}

// All yields every key and its count in the requested order. The sequence
// may be ranged over any number of times; the tree must not be modified
// while a range over it is in progress.
func (tree *Tree[K]) All(order Order) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		switch order {
		case PreOrder:
			preOrder(tree.root, yield)
		case PostOrder:
			postOrder(tree.root, yield)
		default:
			inOrder(tree.root, yield)
		}
	}
}

// Keys yields the distinct keys in ascending order.
func (tree *Tree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.root, func(key K, _ int) bool {
			return yield(key)
		})
	}
}

// Collect returns the traversal as a slice.
func (tree *Tree[K]) Collect(order Order) []Entry[K] {
	entries := make([]Entry[K], 0, tree.len)
	for key, count := range tree.All(order) {
		entries = append(entries, Entry[K]{Key: key, Count: count})
	}
	return entries
}

// The walkers return false once yield has asked to stop so the recursion
// unwinds without visiting anything else.

func preOrder[K cmp.Ordered](node *Node[K], yield func(K, int) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.key, node.count) &&
		preOrder(node.left, yield) &&
		preOrder(node.right, yield)
}

func inOrder[K cmp.Ordered](node *Node[K], yield func(K, int) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) &&
		yield(node.key, node.count) &&
		inOrder(node.right, yield)
}

func postOrder[K cmp.Ordered](node *Node[K], yield func(K, int) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.left, yield) &&
		postOrder(node.right, yield) &&
		yield(node.key, node.count)
}
