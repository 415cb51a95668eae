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
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

var quickConfig = &quick.Config{MaxCount: 300}

// Random insert/delete mixes over a small key space so that duplicates and
// deletions of present keys are frequent. Every step must keep the tree
// valid and in step with a plain map of counts.
func TestRandomOperationsKeepInvariants(t *testing.T) {
	property := func(ops []int16) bool {
		tree := New[int]()
		model := map[int]int{}

		for _, op := range ops {
			key := int(op) & 63
			if op >= 0 {
				tree.Insert(key)
				model[key]++
			} else {
				tree.Delete(key)
				if model[key] > 1 {
					model[key]--
				} else {
					delete(model, key)
				}
			}

			if err := tree.Verify(); err != nil {
				t.Logf("after op %d: %v", op, err)
				return false
			}
			if tree.Height() > MaxHeight(tree.Len()) {
				t.Logf("height %d exceeds bound for %d keys", tree.Height(), tree.Len())
				return false
			}
		}

		var prev *int
		for key, count := range tree.All(InOrder) {
			if prev != nil && key <= *prev {
				return false
			}
			if model[key] != count {
				return false
			}
			prev = &key
		}
		return tree.Len() == len(model)
	}

	require.NoError(t, quick.Check(property, quickConfig))
}

func TestRoundTripDistinctKeys(t *testing.T) {
	property := func(keys []int32) bool {
		tree := New[int32]()
		for _, key := range keys {
			tree.Insert(key)
		}

		expected := slices.Clone(keys)
		slices.Sort(expected)
		expected = slices.Compact(expected)

		return slices.Equal(expected, slices.Collect(tree.Keys()))
	}

	require.NoError(t, quick.Check(property, quickConfig))
}

func TestDeleteAbsentIsIdentity(t *testing.T) {
	property := func(keys []uint8, absent uint8) bool {
		tree := New[int]()
		for _, key := range keys {
			// only even keys go in, so any odd probe is absent
			tree.Insert(int(key &^ 1))
		}
		before := snapshot(tree.Root())

		tree.Delete(int(absent | 1))
		tree.Delete(-1)
		return slices.Equal(before, snapshot(tree.Root())) && tree.Size() == len(keys)
	}

	require.NoError(t, quick.Check(property, quickConfig))
}

func TestSequentialInsertStaysLogarithmic(t *testing.T) {
	tree := New[int]()
	for key := range 1 << 12 {
		tree.Insert(key)
	}
	require.NoError(t, tree.Verify())
	require.LessOrEqual(t, tree.Height(), MaxHeight(tree.Len()))

	for key := 0; key < 1<<12; key += 2 {
		tree.Delete(key)
	}
	require.NoError(t, tree.Verify())
	require.Equal(t, 1<<11, tree.Len())
	require.LessOrEqual(t, tree.Height(), MaxHeight(tree.Len()))
}
