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
	"io"

	"github.com/cybrota/avlset/avl"
)

// buildOptions are the `build` command flags
type buildOptions struct {
	Remove []int
	Print  bool
	Verify bool
}

// runBuild loads a key file into tree, removes the requested keys and
// reports the resulting shape.
func runBuild(w, progress io.Writer, path string, tree *avl.Tree[int], config *Config, opts buildOptions) error {
	stats, err := loadKeyFile(path, tree, config.Load, progress)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, stats)

	removed := 0
	for _, key := range opts.Remove {
		if tree.Remove(key) {
			removed++
		}
	}
	if len(opts.Remove) > 0 {
		fmt.Fprintf(w, "removed %d of %d keys\n", removed, len(opts.Remove))
	}

	if opts.Print {
		fmt.Fprintln(w, renderTree(tree, config.Render.ShowHeights))
	}

	fmt.Fprintf(w, "keys: %d  height: %d  balanced: %s\n", tree.Len(), tree.Height(), yesNo(tree.IsBalanced()))

	if opts.Verify {
		if err := tree.Verify(); err != nil {
			return err
		}
		fmt.Fprintf(w, "verify: %s\n", yesNo(true))
	}

	return nil
}

// runScript applies interpreter lines in order, stopping at the first error
func runScript(w io.Writer, tree *avl.Tree[int], lines []string, showHeights bool) error {
	for _, line := range lines {
		cmd, err := parseCommand(line)
		if err != nil {
			return err
		}
		out, err := applyCommand(tree, cmd, showHeights)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		fmt.Fprintf(w, "%s> %s%s\n%s\n", Info, line, Reset, out)
	}
	return nil
}
