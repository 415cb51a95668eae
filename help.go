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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/patrickmn/go-cache"
)

const shellHelp = `
# Shell commands

| Command | Effect |
|---|---|
| ` + "`insert K...`" + ` | insert keys, repeated keys raise the count |
| ` + "`delete K...`" + ` | remove one occurrence of each key |
| ` + "`search K`" + ` | show the count of a key |
| ` + "`order pre\\|in\\|post`" + ` | change the traversal order |
| ` + "`load FILE...`" + ` | apply key scripts |
| ` + "`check`" + ` | verify the AVL invariants |
| ` + "`clear`" + ` | drop every key |
| ` + "`copy`" + ` | copy the traversal to the clipboard |
| ` + "`help`" + ` | toggle this page |
| ` + "`quit`" + ` | leave the shell |

Quote keys that contain spaces: ` + "`insert \"git status\"`" + `.
`

func usageMarkdown() string {
	return fmt.Sprintf(`

 **avltree %s**

Load keys into a self-balancing AVL tree, watch it rebalance, and inspect
the result. Repeated keys are counted, not duplicated.

Built with Go %s

# 1. Key scripts
* One operation per line, blank lines and lines starting with # are skipped
* key or +key inserts, -key deletes, ?key searches
* Insert a negative number with +-5

# 2. Commands
* traverse FILE... prints key(count) pairs in pre, in or post order
* print FILE... draws the tree
* search FILE --key K looks keys up
* check FILE... verifies the balance, order and height invariants
* shell [FILE...] opens the interactive shell
* settings shows ~/.avltree.yaml

# 3. Key types
* int (default), float, string; choose with --keys or keys.type in the config
%s
# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), shellHelp)
}

// getHelpMessage renders the usage guide for a terminal of the given width.
func getHelpMessage(c *cache.Cache, width int) string {
	txt, _ := GetOrFillHelp(c, "usage", width, func() (string, error) {
		return string(markdown.Render(usageMarkdown(), width, 3)), nil
	})
	return txt
}
