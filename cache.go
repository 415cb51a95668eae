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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// rendered help pages only change with the terminal width
	helpCacheExpiration = 30 * time.Minute
	helpCacheCleanup    = 5 * time.Minute
)

// NewHelpCache creates a cache for rendered help text
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func helpCacheKey(page string, width int) string {
	return fmt.Sprintf("%s@%d", page, width)
}

func CacheHelpPage(c *cache.Cache, key string, helpTxt string) {
	c.Set(key, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillHelp returns the cached rendering of page at width, rendering it
// on a miss. Failed renderings are not cached.
func GetOrFillHelp(c *cache.Cache, page string, width int, render func() (string, error)) (string, error) {
	key := helpCacheKey(page, width)
	if txt := GetHelpPage(c, key); txt != "" {
		return txt, nil
	}

	txt, err := render()
	if err != nil {
		return "", err
	}
	CacheHelpPage(c, key, txt)
	return txt, nil
}
