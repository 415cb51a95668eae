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
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownKeyType = errors.New("unknown key type")
	ErrInvalidKey     = errors.New("invalid key")
)

// Stats summarises a session's tree.
type Stats struct {
	Len       int // distinct keys
	Size      int // insertions still held
	Height    int
	MaxHeight int // AVL bound for Len keys
	Skipped   int // searches answered by the membership filter alone
}

// Session is a tree of one key type driven with raw text keys, so the CLI
// and the shell do not need to know the key type.
type Session interface {
	KeyType() string
	ValidateKey(raw string) error
	Insert(raw string) error
	Delete(raw string) error
	Search(raw string) (count int, found bool, err error)
	Apply(op Op) error
	Traverse(order avl.Order) []string
	Render(w io.Writer) int
	Check() error
	Stats() Stats
	Clear()
}

// NewSession returns a session for "int", "float" or "string" keys.
func NewSession(kind string, membership MembershipConfig) (Session, error) {
	switch strings.ToLower(kind) {
	case "int", "":
		return newTypedSession("int", parseInt, membership), nil
	case "float":
		return newTypedSession("float", parseFloat, membership), nil
	case "string":
		return newTypedSession("string", parseString, membership), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyType, kind)
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, raw)
	}
	return n, nil
}

// NaN has no place in a total order, so it is rejected here rather than
// corrupting the tree. -0 is stored as 0; they compare equal and must share
// one membership key.
func parseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidKey, raw)
	}
	if f == 0 {
		f = 0
	}
	return f, nil
}

func parseString(raw string) (string, error) {
	return raw, nil
}

type typedSession[K cmp.Ordered] struct {
	kind    string
	tree    *avl.Tree[K]
	parse   func(string) (K, error)
	members *Membership
	skipped int
}

func newTypedSession[K cmp.Ordered](kind string, parse func(string) (K, error), membership MembershipConfig) *typedSession[K] {
	return &typedSession[K]{
		kind:    kind,
		tree:    avl.New[K](),
		parse:   parse,
		members: NewMembership(membership),
	}
}

func (s *typedSession[K]) KeyType() string {
	return s.kind
}

// canonical spelling of a key, so "007" and "7" share a filter slot
func canonical[K cmp.Ordered](key K) string {
	return fmt.Sprint(key)
}

// ValidateKey reports whether raw parses as this session's key type.
func (s *typedSession[K]) ValidateKey(raw string) error {
	_, err := s.parse(raw)
	return err
}

func (s *typedSession[K]) Insert(raw string) error {
	key, err := s.parse(raw)
	if err != nil {
		return err
	}
	s.tree.Insert(key)
	s.members.Add(canonical(key))
	return nil
}

func (s *typedSession[K]) Delete(raw string) error {
	key, err := s.parse(raw)
	if err != nil {
		return err
	}
	s.tree.Delete(key)
	return nil
}

func (s *typedSession[K]) Search(raw string) (int, bool, error) {
	key, err := s.parse(raw)
	if err != nil {
		return 0, false, err
	}
	if !s.members.MayContain(canonical(key)) {
		s.skipped++
		return 0, false, nil
	}
	count, found := s.tree.Search(key)
	return count, found, nil
}

func (s *typedSession[K]) Apply(op Op) error {
	switch op.Kind {
	case OpInsert:
		return s.Insert(op.Key)
	case OpDelete:
		return s.Delete(op.Key)
	case OpSearch:
		count, found, err := s.Search(op.Key)
		if err != nil {
			return err
		}
		log.Info().Str("key", op.Key).Bool("found", found).Int("count", count).Msg("search")
		return nil
	}
	return fmt.Errorf("unsupported operation %s", op.Kind)
}

// Traverse formats every key as "key(count)".
func (s *typedSession[K]) Traverse(order avl.Order) []string {
	out := make([]string, 0, s.tree.Len())
	for key, count := range s.tree.All(order) {
		out = append(out, fmt.Sprintf("%v(%d)", key, count))
	}
	return out
}

func (s *typedSession[K]) Render(w io.Writer) int {
	return s.tree.Print(w)
}

func (s *typedSession[K]) Check() error {
	if err := s.tree.Verify(); err != nil {
		return err
	}
	if h, bound := s.tree.Height(), avl.MaxHeight(s.tree.Len()); h > bound {
		return fmt.Errorf("height %d exceeds AVL bound %d", h, bound)
	}
	return nil
}

func (s *typedSession[K]) Stats() Stats {
	return Stats{
		Len:       s.tree.Len(),
		Size:      s.tree.Size(),
		Height:    s.tree.Height(),
		MaxHeight: avl.MaxHeight(s.tree.Len()),
		Skipped:   s.skipped,
	}
}

func (s *typedSession[K]) Clear() {
	s.tree.Clear()
	s.members.Reset()
	s.skipped = 0
}
