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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/avlset/avl"
)

// LoadStats summarises one key-file load
type LoadStats struct {
	Read       int
	Inserted   int
	Duplicates int
	Rejected   int // refused because the tree was at its limit
}

func (s LoadStats) String() string {
	return fmt.Sprintf("read %d keys: %d inserted, %d duplicates, %d rejected",
		s.Read, s.Inserted, s.Duplicates, s.Rejected)
}

// scanKeys reads integer keys separated by whitespace or commas. A '#'
// starts a comment running to the end of the line.
func scanKeys(r io.Reader) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long single-line key lists
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid key %q", lineNo, field)
			}
			keys = append(keys, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// loadKeys inserts keys into tree. A bloom filter remembers the keys seen
// during this load so repeats are confirmed with a lookup instead of an
// insert. Progress goes to progress when it is non-nil.
func loadKeys(tree *avl.Tree[int], keys []int, config KeyFileConfig, progress io.Writer) LoadStats {
	stats := LoadStats{Read: len(keys)}
	seen := bloom.New(config.BloomSize, config.BloomHashes)

	var bar *progressbar.ProgressBar
	if progress != nil && config.ShowProgress {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Loading keys..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	for _, key := range keys {
		if bar != nil {
			_ = bar.Add(1)
		}

		s := strconv.Itoa(key)
		if seen.TestString(s) && tree.Contains(key) {
			stats.Duplicates++
			continue
		}

		added, err := tree.Insert(key)
		if errors.Is(err, avl.ErrCapacity) {
			stats.Rejected++
			continue
		}
		seen.AddString(s)
		if added {
			stats.Inserted++
		} else {
			// present before this load started
			stats.Duplicates++
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return stats
}

// loadKeyFile reads keys from path ("-" for stdin) into tree
func loadKeyFile(path string, tree *avl.Tree[int], config KeyFileConfig, progress io.Writer) (LoadStats, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return LoadStats{}, fmt.Errorf("key file %s not found", path)
			}
			return LoadStats{}, err
		}
		defer file.Close()
		r = file
	}

	keys, err := scanKeys(r)
	if err != nil {
		return LoadStats{}, fmt.Errorf("%s: %w", path, err)
	}

	return loadKeys(tree, keys, config, progress), nil
}
