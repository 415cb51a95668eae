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
	"github.com/willf/bloom"
)

const (
	defaultExpectedKeys      = 10000
	defaultFalsePositiveRate = 0.01
)

// Membership is a bloom filter over every key ever inserted into a session.
// Deletions are not reflected, so only a negative answer is conclusive.
type Membership struct {
	filter *bloom.BloomFilter
}

func NewMembership(config MembershipConfig) *Membership {
	n := config.ExpectedKeys
	if n == 0 {
		n = defaultExpectedKeys
	}
	fp := config.FalsePositiveRate
	if fp <= 0 || fp >= 1 {
		fp = defaultFalsePositiveRate
	}
	return &Membership{filter: bloom.NewWithEstimates(n, fp)}
}

func (m *Membership) Add(key string) {
	m.filter.AddString(key)
}

// MayContain is false only for keys that were never added.
func (m *Membership) MayContain(key string) bool {
	return m.filter.TestString(key)
}

func (m *Membership) Reset() {
	m.filter.ClearAll()
}
