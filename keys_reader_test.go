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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/stretchr/testify/require"
)

const sampleScript = `# warm up
10
+20

  30  
-20
?10
+-5
# done
`

func TestReadScript(t *testing.T) {
	ops, err := ReadScript(strings.NewReader(sampleScript), "sample.txt")
	require.NoError(t, err)
	require.Equal(t, []Op{
		{Kind: OpInsert, Key: "10", Source: "sample.txt", Line: 2},
		{Kind: OpInsert, Key: "20", Source: "sample.txt", Line: 3},
		{Kind: OpInsert, Key: "30", Source: "sample.txt", Line: 5},
		{Kind: OpDelete, Key: "20", Source: "sample.txt", Line: 6},
		{Kind: OpSearch, Key: "10", Source: "sample.txt", Line: 7},
		{Kind: OpInsert, Key: "-5", Source: "sample.txt", Line: 8},
	}, ops)
}

func TestReadScriptEmptyKey(t *testing.T) {
	_, err := ReadScript(strings.NewReader("1\n2\n- \n"), "bad.txt")
	require.ErrorIs(t, err, ErrEmptyKey)
	require.ErrorContains(t, err, "bad.txt:3")
}

func TestReadScriptLongKey(t *testing.T) {
	long := strings.Repeat("k", 200*1024)
	ops, err := ReadScript(strings.NewReader(long+"\n"), "long.txt")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Len(t, ops[0].Key, len(long))
}

func TestReadScriptFileMissing(t *testing.T) {
	_, err := ReadScriptFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorContains(t, err, "not found")
}

func TestApplyScript(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	ops, err := ReadScript(strings.NewReader(sampleScript), "sample.txt")
	require.NoError(t, err)

	var progress bytes.Buffer
	require.NoError(t, ApplyScript(s, ops, true, &progress))
	require.Equal(t, []string{"-5(1)", "10(1)", "30(1)"}, s.Traverse(avl.InOrder))
	require.NotEmpty(t, progress.String())

	// without progress nothing is drawn
	progress.Reset()
	require.NoError(t, ApplyScript(s, ops, false, &progress))
	require.Empty(t, progress.String())
}

func TestApplyScriptReportsPosition(t *testing.T) {
	s, err := NewSession("int", defaultConfig.Membership)
	require.NoError(t, err)

	ops, err := ReadScript(strings.NewReader("1\n2\nthree\n4\n"), "keys.txt")
	require.NoError(t, err)

	err = ApplyScript(s, ops, false, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
	require.ErrorContains(t, err, "keys.txt:3")
	// operations before the bad line were applied
	require.Equal(t, []string{"1(1)", "2(1)"}, s.Traverse(avl.InOrder))
}

func TestLoadScripts(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("apple\npear\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("-pear\nfig\napple\n"), 0o644))

	s, err := NewSession("string", defaultConfig.Membership)
	require.NoError(t, err)
	require.NoError(t, loadScripts(s, []string{first, second}, false, nil))
	require.Equal(t, []string{"apple(2)", "fig(1)"}, s.Traverse(avl.InOrder))
}

func TestOpKindString(t *testing.T) {
	require.Equal(t, "insert", OpInsert.String())
	require.Equal(t, "delete", OpDelete.String())
	require.Equal(t, "search", OpSearch.String())
	require.Equal(t, "OpKind(7)", OpKind(7).String())
}
