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

// Package avl implements a height-balanced binary search tree that keeps a
// count for every key instead of storing duplicates as separate nodes.
//
// A tree is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
//
// Keys must have a consistent total order. Floating point NaN keys break
// that contract and leave the tree in an undefined state.
package avl

import "cmp"

// Tree owns the root node and the bookkeeping totals.
// The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	len  int // distinct keys
	size int // sum of counts
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{root: nil}
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of distinct keys.
func (tree *Tree[K]) Len() int {
	return tree.len
}

// Size returns the number of insertions not yet matched by a deletion.
func (tree *Tree[K]) Size() int {
	return tree.size
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// Clear drops every node.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.len = 0
	tree.size = 0
}

//	    y                  x
//	   / \                / \
//	  x   t3   ----->    t1  y
//	 / \                    / \
//	t1  t2                 t2  t3
func (tree *Tree[K]) rotateRight(y *Node[K]) *Node[K] {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	y.updateHeight()
	x.updateHeight()

	return x
}

//	  x                  y
//	 / \                / \
//	t1  y   ----->     x   t3
//	   / \            / \
//	  t2  t3         t1  t2
func (tree *Tree[K]) rotateLeft(x *Node[K]) *Node[K] {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	x.updateHeight()
	y.updateHeight()

	return y
}

// Insert adds key to the tree. A key already present has its count
// incremented instead.
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insertRecursive(tree.root, key)
	tree.size++
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		tree.len++
		return newNode(key)
	}

	if key == node.key {
		node.count++
		return node
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key)
	} else {
		node.right = tree.insertRecursive(node.right, key)
	}

	node.updateHeight()

	balanceFactor := node.balance()

	// Left-Left
	if balanceFactor > 1 && key < node.left.key {
		return tree.rotateRight(node)
	}
	// Right-Right
	if balanceFactor < -1 && key > node.right.key {
		return tree.rotateLeft(node)
	}
	// Left-Right
	if balanceFactor > 1 && key > node.left.key {
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}
	// Right-Left
	if balanceFactor < -1 && key < node.right.key {
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}

// Delete removes one occurrence of key. Deleting a key that is not in the
// tree does nothing.
func (tree *Tree[K]) Delete(key K) {
	tree.root = tree.deleteRecursive(tree.root, key, false)
}

// deleteRecursive removes key from the subtree. With unlink set the node is
// removed whatever its count; that is used to drop an in-order successor
// whose key and count have already been copied into its ancestor.
func (tree *Tree[K]) deleteRecursive(node *Node[K], key K, unlink bool) *Node[K] {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = tree.deleteRecursive(node.left, key, unlink)
	} else if key > node.key {
		node.right = tree.deleteRecursive(node.right, key, unlink)
	} else {
		if !unlink {
			tree.size--
			if node.count > 1 {
				node.count--
				return node
			}
			tree.len--
		}

		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}

		successor := node.right.first()
		node.key = successor.key
		node.count = successor.count
		node.right = tree.deleteRecursive(node.right, successor.key, true)
	}

	node.updateHeight()
	return tree.rebalance(node)
}

// rebalance restores the height invariant after a deletion, choosing the
// rotation from the balance of the taller child.
func (tree *Tree[K]) rebalance(node *Node[K]) *Node[K] {
	balanceFactor := node.balance()

	// Left-heavy
	if balanceFactor > 1 {
		if node.left.balance() >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if node.right.balance() <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
