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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/avlset/avl"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	tree := avl.New[int]()

	if err := runDemo(&out, tree, []int{10, 20, 30, 40, 50}, 30, nil); err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}

	expected := "AVL tree: Yes\nAVL tree after removal: Yes\n"
	if out.String() != expected {
		t.Errorf("runDemo output = %q; want %q", out.String(), expected)
	}
	if got := tree.InOrder(); len(got) != 4 || tree.Contains(30) {
		t.Errorf("unexpected keys after demo: %v", got)
	}
}

func TestRunDemoPrint(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(&out, avl.New[int](), []int{10, 20, 30, 40, 50}, 30, &RenderConfig{}); err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}

	s := out.String()
	if strings.Count(s, "|------+ 20") != 2 {
		t.Errorf("expected two diagrams rooted at 20, got:\n%s", s)
	}
	if strings.Count(s, "+ 30") != 1 {
		t.Errorf("30 must only appear before removal, got:\n%s", s)
	}
}

func TestRunDemoAtCapacity(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(&out, avl.New[int](avl.WithLimit(2)), []int{1, 2, 3}, 1, nil)
	if !errors.Is(err, avl.ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestRunBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(path, []byte("10 20 30 40 50 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config := defaultConfig()
	config.Load.ShowProgress = false

	var out bytes.Buffer
	opts := buildOptions{Remove: []int{30, 99}, Print: true, Verify: true}
	if err := runBuild(&out, nil, path, newTree(&config), &config, opts); err != nil {
		t.Fatalf("runBuild returned error: %v", err)
	}

	s := out.String()
	for _, want := range []string{
		"read 6 keys: 5 inserted, 1 duplicates, 0 rejected",
		"removed 1 of 2 keys",
		"|------+ 20",
		"keys: 4  height: 3  balanced: Yes",
		"verify: Yes",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("runBuild output missing %q:\n%s", want, s)
		}
	}
}

func TestRunScript(t *testing.T) {
	var out bytes.Buffer
	tree := avl.New[int]()

	err := runScript(&out, tree, []string{"insert 10 20 30", "remove 20", "contains 20"}, false)
	if err != nil {
		t.Fatalf("runScript returned error: %v", err)
	}

	expected := "> insert 10 20 30\ninserted 3 of 3 keys\n" +
		"> remove 20\nremoved 1 of 1 keys\n" +
		"> contains 20\n20: absent\n"
	if out.String() != expected {
		t.Errorf("runScript output = %q; want %q", out.String(), expected)
	}
}

func TestRunScriptStopsAtError(t *testing.T) {
	var out bytes.Buffer
	tree := avl.New[int]()

	err := runScript(&out, tree, []string{"insert 1", "bogus", "insert 2"}, false)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if tree.Contains(2) {
		t.Errorf("lines after the failing one must not run")
	}
}
