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
)

// commandsMarkdown documents the interpreter used by `run` and `explore`
const commandsMarkdown = `# Commands

* **insert** (add, i) *key...* - add keys, duplicates are ignored
* **remove** (delete, rm, r) *key...* - remove keys, absent keys are ignored
* **contains** (has, c) *key...* - report whether each key is present
* **clear** - drop every key
* **print** - draw the tree, right subtree above the parent
* **verify** - check ordering, cached heights and balance

Keys are base-10 integers. A line with a bad key changes nothing.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlset %s**

An ordered integer set kept as a height-balanced (AVL) tree.
Every insert and remove keeps the tree within one level of balance at every node.

Built with Go %s

# Usage
* avlset demo - build the demo tree, remove one key, report balance
* avlset build FILE - load keys from FILE (or - for stdin)
* avlset run CMD... - apply interpreter commands in order
* avlset explore - interactive session
* avlset settings - show and create ~/.avlset.yaml

%s
# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), commandsMarkdown)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
