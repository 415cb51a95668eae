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
	"bytes"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/require"
)

func TestNewSessionKinds(t *testing.T) {
	for _, kind := range []string{"int", "INT", "", "float", "string"} {
		s, err := NewSession(kind, defaultConfig.Membership)
		require.NoError(t, err, kind)
		require.NotNil(t, s)
	}

	s, err := NewSession("", defaultConfig.Membership)
	require.NoError(t, err)
	require.Equal(t, "int", s.KeyType())

	_, err = NewSession("complex", defaultConfig.Membership)
	require.ErrorIs(t, err, ErrUnknownKeyType)
}

func TestIntSessionCanonicalKeys(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	require.NoError(t, s.Insert("007"))
	require.NoError(t, s.Insert("7"))
	require.NoError(t, s.Insert("-3"))

	count, found, err := s.Search("+7")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, count)
	require.Equal(t, []string{"-3(1)", "7(2)"}, s.Traverse(avl.InOrder))

	require.ErrorIs(t, s.Insert("seven"), ErrInvalidKey)
	require.ErrorIs(t, s.ValidateKey("seven"), ErrInvalidKey)
	require.NoError(t, s.ValidateKey("-12"))
	require.ErrorIs(t, s.Delete("1.5"), ErrInvalidKey)
	_, _, err = s.Search("")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestFloatSessionRejectsNaN(t *testing.T) {
	s, err := NewSession("float", defaultConfig.Membership)
	require.NoError(t, err)

	require.NoError(t, s.Insert("1.5"))
	require.NoError(t, s.Insert("-0.25"))
	require.NoError(t, s.Insert("1e2"))
	require.ErrorIs(t, s.Insert("NaN"), ErrInvalidKey)
	require.Equal(t, []string{"-0.25(1)", "1.5(1)", "100(1)"}, s.Traverse(avl.InOrder))
}

func TestFloatSessionNegativeZero(t *testing.T) {
	s, err := NewSession("float", defaultConfig.Membership)
	require.NoError(t, err)

	require.NoError(t, s.Insert("-0"))
	count, found, err := s.Search("0")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, count)
	require.Zero(t, s.Stats().Skipped)

	require.NoError(t, s.Insert("0.0"))
	count, found, err = s.Search("-0.0")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, count)
	require.Equal(t, []string{"0(2)"}, s.Traverse(avl.InOrder))
}

func TestStringSessionOrder(t *testing.T) {
	s, err := NewSession("string", defaultConfig.Membership)
	require.NoError(t, err)

	for _, k := range []string{"pear", "apple", "fig", "apple"} {
		require.NoError(t, s.Insert(k))
	}
	require.Equal(t, []string{"fig(1)", "apple(2)", "pear(1)"}, s.Traverse(avl.PreOrder))
	require.Equal(t, []string{"apple(2)", "pear(1)", "fig(1)"}, s.Traverse(avl.PostOrder))
}

func TestSessionMembershipSkipsTree(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	_, found, err := s.Search("42")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, s.Stats().Skipped)

	// deleted keys stay in the filter, the tree answers
	require.NoError(t, s.Insert("42"))
	require.NoError(t, s.Delete("42"))
	_, found, err = s.Search("42")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, s.Stats().Skipped)
}

func TestSessionStatsCheckAndClear(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	for _, k := range []string{"10", "20", "30", "40", "50", "25", "25"} {
		require.NoError(t, s.Insert(k))
	}
	require.NoError(t, s.Check())
	require.Equal(t, Stats{Len: 6, Size: 7, Height: 3, MaxHeight: avl.MaxHeight(6)}, s.Stats())

	var b bytes.Buffer
	require.Equal(t, 3, s.Render(&b), "drawing depth")
	require.Contains(t, b.String(), "25(2)")

	s.Clear()
	require.Equal(t, Stats{}, s.Stats())
	b.Reset()
	require.Zero(t, s.Render(&b))
	require.Empty(t, b.String())

	_, found, err := s.Search("25")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 1, s.Stats().Skipped, "cleared filter answers alone")
}

func TestSessionApply(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	require.NoError(t, s.Apply(Op{Kind: OpInsert, Key: "1"}))
	require.NoError(t, s.Apply(Op{Kind: OpInsert, Key: "1"}))
	require.NoError(t, s.Apply(Op{Kind: OpDelete, Key: "1"}))
	require.NoError(t, s.Apply(Op{Kind: OpSearch, Key: "1"}))
	require.Equal(t, []string{"1(1)"}, s.Traverse(avl.InOrder))

	require.Error(t, s.Apply(Op{Kind: OpKind(9), Key: "1"}))
	require.ErrorIs(t, s.Apply(Op{Kind: OpSearch, Key: "x"}), ErrInvalidKey)
}
