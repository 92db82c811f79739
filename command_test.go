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
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/avlset/avl"
)

// TestSplitCommand verifies that splitCommand tokenizes with shell quoting.
func TestSplitCommand(t *testing.T) {
	testCases := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{`remove "7"`, []string{"remove", "7"}},
		{"  print  ", []string{"print"}},
		{"", []string{}},
	}

	for _, tc := range testCases {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			}
		}
	}
}

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Command
		err      error
	}{
		{name: "insert", input: "insert 10 20", expected: Command{Op: OpInsert, Keys: []int{10, 20}}},
		{name: "alias", input: "RM -4", expected: Command{Op: OpRemove, Keys: []int{-4}}},
		{name: "contains", input: "has 3", expected: Command{Op: OpContains, Keys: []int{3}}},
		{name: "print", input: "print", expected: Command{Op: OpPrint}},
		{name: "empty", input: "   ", err: ErrEmptyCommand},
		{name: "unknown", input: "rotate 1", err: ErrUnknownCommand},
		{name: "missing keys", input: "insert", err: ErrMissingKeys},
		{name: "unexpected keys", input: "clear 1", err: ErrUnexpectedKeys},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := parseCommand(tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("parseCommand(%q) error = %v; want %v", tc.input, err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCommand(%q) returned error: %v", tc.input, err)
			}
			if !reflect.DeepEqual(cmd, tc.expected) {
				t.Errorf("parseCommand(%q) = %+v; want %+v", tc.input, cmd, tc.expected)
			}
		})
	}
}

func TestParseCommandBadKeyRejectsLine(t *testing.T) {
	_, err := parseCommand("insert 1 two 3")
	if err == nil || !strings.Contains(err.Error(), `"two"`) {
		t.Fatalf("expected invalid key error, got %v", err)
	}
}

func TestApplyCommand(t *testing.T) {
	tree := avl.New[int]()

	steps := []struct {
		line     string
		expected string
	}{
		{"insert 10 20 30 40 50 20", "inserted 5 of 6 keys"},
		{"contains 30 99", "30: present, 99: absent"},
		{"remove 30 99", "removed 1 of 2 keys"},
		{"verify", "valid: 4 keys, height 3"},
		{"clear", "cleared 4 keys"},
		{"print", emptyTreeDiagram},
	}

	for _, step := range steps {
		cmd, err := parseCommand(step.line)
		if err != nil {
			t.Fatalf("parseCommand(%q) returned error: %v", step.line, err)
		}
		got, err := applyCommand(tree, cmd, false)
		if err != nil {
			t.Fatalf("applyCommand(%q) returned error: %v", step.line, err)
		}
		if got != step.expected {
			t.Errorf("applyCommand(%q) = %q; want %q", step.line, got, step.expected)
		}
	}
}

func TestApplyCommandAtCapacity(t *testing.T) {
	tree := avl.New[int](avl.WithLimit(2))

	_, err := applyCommand(tree, Command{Op: OpInsert, Keys: []int{1, 2, 3}}, false)
	if !errors.Is(err, avl.ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if !strings.Contains(err.Error(), "inserted 2 of 3 keys, 3 refused") {
		t.Errorf("unexpected error text: %v", err)
	}
	if tree.Len() != 2 {
		t.Errorf("tree holds %d keys; want 2", tree.Len())
	}
}

func TestCommandMutates(t *testing.T) {
	for op, want := range map[string]bool{
		OpInsert: true, OpRemove: true, OpClear: true,
		OpContains: false, OpPrint: false, OpVerify: false,
	} {
		if got := (Command{Op: op}).Mutates(); got != want {
			t.Errorf("Command{%s}.Mutates() = %t; want %t", op, got, want)
		}
	}
}
