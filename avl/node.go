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

// Node is a single key of the tree together with the number of times it
// was inserted and not yet deleted.
type Node[K cmp.Ordered] struct {
	key    K
	count  int
	height int
	left   *Node[K]
	right  *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, count: 1, height: 1}
}

// Key returns the node key.
func (n *Node[K]) Key() K {
	return n.key
}

// Count returns how many times the key is held. Zero for a nil node.
func (n *Node[K]) Count() int {
	if n == nil {
		return 0
	}
	return n.count
}

// Height returns the height of the subtree rooted at n, 0 for nil.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Left returns the left subtree, nil if absent.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree, nil if absent.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// balance is height(left) - height(right); 0 for an absent subtree.
func (n *Node[K]) balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[K]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

// lowest node in a sub-tree
func (n *Node[K]) first() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K]) last() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
