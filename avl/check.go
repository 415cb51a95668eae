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
	"math"
)

var (
	ErrOrder       = errors.New("keys out of order")
	ErrBalance     = errors.New("subtree out of balance")
	ErrHeight      = errors.New("stale height")
	ErrCount       = errors.New("node with non-positive count")
	ErrBookkeeping = errors.New("tree totals do not match nodes")
)

// Verify walks the whole tree and reports the first broken invariant.
func (tree *Tree[K]) Verify() error {
	nodes, total, err := verifyNode(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != tree.len {
		return fmt.Errorf("%w: len %d, nodes %d", ErrBookkeeping, tree.len, nodes)
	}
	if total != tree.size {
		return fmt.Errorf("%w: size %d, counts %d", ErrBookkeeping, tree.size, total)
	}
	return nil
}

// verifyNode checks node against the open interval (low, high) and returns
// the number of nodes and the sum of counts beneath it.
func verifyNode[K cmp.Ordered](node *Node[K], low, high *K) (int, int, error) {
	if node == nil {
		return 0, 0, nil
	}
	if (low != nil && node.key <= *low) || (high != nil && node.key >= *high) {
		return 0, 0, fmt.Errorf("%w: at key %v", ErrOrder, node.key)
	}
	if node.count < 1 {
		return 0, 0, fmt.Errorf("%w: key %v has count %d", ErrCount, node.key, node.count)
	}

	ln, lc, err := verifyNode(node.left, low, &node.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rc, err := verifyNode(node.right, &node.key, high)
	if err != nil {
		return 0, 0, err
	}

	if want := max(node.left.Height(), node.right.Height()) + 1; node.height != want {
		return 0, 0, fmt.Errorf("%w: key %v has height %d, want %d", ErrHeight, node.key, node.height, want)
	}
	if b := node.balance(); b > 1 || b < -1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance %+d", ErrBalance, node.key, b)
	}

	return ln + rn + 1, lc + rc + node.count, nil
}

// MaxHeight is the largest height an AVL tree holding n keys can reach.
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(1.4405*math.Log2(float64(n)+2) - 0.3277)
}
