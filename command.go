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
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/avlset/avl"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingKeys    = errors.New("command needs at least one key")
	ErrUnexpectedKeys = errors.New("command takes no keys")
)

const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpContains = "contains"
	OpClear    = "clear"
	OpPrint    = "print"
	OpVerify   = "verify"
)

var opAliases = map[string]string{
	"insert": OpInsert, "add": OpInsert, "i": OpInsert,
	"remove": OpRemove, "delete": OpRemove, "rm": OpRemove, "r": OpRemove,
	"contains": OpContains, "has": OpContains, "c": OpContains,
	"clear":  OpClear,
	"print":  OpPrint,
	"verify": OpVerify,
}

// Command is one parsed interpreter line, e.g. "insert 10 20 30"
type Command struct {
	Op   string
	Keys []int
}

// Mutates reports whether applying the command can change the tree
func (c Command) Mutates() bool {
	return c.Op == OpInsert || c.Op == OpRemove || c.Op == OpClear
}

// splitCommand splits a command line into words using shell quoting rules.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// parseCommand parses every key before returning, so a bad key rejects
// the whole line.
func parseCommand(line string) (Command, error) {
	words, err := splitCommand(line)
	if err != nil {
		return Command{}, err
	}
	if len(words) == 0 {
		return Command{}, ErrEmptyCommand
	}

	op, ok := opAliases[strings.ToLower(words[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, words[0])
	}

	cmd := Command{Op: op}
	for _, word := range words[1:] {
		key, err := strconv.Atoi(word)
		if err != nil {
			return Command{}, fmt.Errorf("invalid key %q", word)
		}
		cmd.Keys = append(cmd.Keys, key)
	}

	switch op {
	case OpInsert, OpRemove, OpContains:
		if len(cmd.Keys) == 0 {
			return Command{}, fmt.Errorf("%s: %w", op, ErrMissingKeys)
		}
	default:
		if len(cmd.Keys) != 0 {
			return Command{}, fmt.Errorf("%s: %w", op, ErrUnexpectedKeys)
		}
	}

	return cmd, nil
}

// applyCommand runs cmd against tree and returns a status line. The print
// command returns the diagram instead.
func applyCommand(tree *avl.Tree[int], cmd Command, showHeights bool) (string, error) {
	switch cmd.Op {
	case OpInsert:
		added := 0
		for _, key := range cmd.Keys {
			ok, err := tree.Insert(key)
			if err != nil {
				return "", fmt.Errorf("inserted %d of %d keys, %d refused: %w", added, len(cmd.Keys), key, err)
			}
			if ok {
				added++
			}
		}
		return fmt.Sprintf("inserted %d of %d keys", added, len(cmd.Keys)), nil

	case OpRemove:
		removed := 0
		for _, key := range cmd.Keys {
			if tree.Remove(key) {
				removed++
			}
		}
		return fmt.Sprintf("removed %d of %d keys", removed, len(cmd.Keys)), nil

	case OpContains:
		answers := make([]string, 0, len(cmd.Keys))
		for _, key := range cmd.Keys {
			state := "absent"
			if tree.Contains(key) {
				state = "present"
			}
			answers = append(answers, fmt.Sprintf("%d: %s", key, state))
		}
		return strings.Join(answers, ", "), nil

	case OpClear:
		n := tree.Len()
		tree.Clear()
		return fmt.Sprintf("cleared %d keys", n), nil

	case OpPrint:
		return renderTree(tree, showHeights), nil

	case OpVerify:
		if err := tree.Verify(); err != nil {
			return "", err
		}
		return fmt.Sprintf("valid: %d keys, height %d", tree.Len(), tree.Height()), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
}
