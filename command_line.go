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
	"io"
	"strings"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/mattn/go-shellwords"
)

const maxLogEntries = 200

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
)

// ShellCommand is one parsed line of shell input.
type ShellCommand struct {
	Name string
	Args []string
}

// splitCommand splits a full command line into parts, honouring quotes so
// string keys may contain spaces.
func splitCommand(line string) (ShellCommand, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return ShellCommand{}, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(args) == 0 {
		return ShellCommand{}, nil
	}
	return ShellCommand{Name: strings.ToLower(args[0]), Args: args[1:]}, nil
}

// ShellResult tells the UI what to do after a command.
type ShellResult struct {
	Message  string
	ShowHelp bool
	Quit     bool
}

// Shell executes shell commands against a session. It holds no terminal
// state, so the bubbletea model stays a thin view over it.
type Shell struct {
	session  Session
	order    avl.Order
	entries  []string
	now      func() time.Time
	copyText func(string) error
	progress io.Writer
}

func NewShell(session Session, order avl.Order, copyText func(string) error) *Shell {
	return &Shell{
		session:  session,
		order:    order,
		now:      time.Now,
		copyText: copyText,
		progress: io.Discard,
	}
}

func (sh *Shell) Session() Session {
	return sh.session
}

func (sh *Shell) Order() avl.Order {
	return sh.order
}

// Log returns the op log, oldest first.
func (sh *Shell) Log() []string {
	return sh.entries
}

func (sh *Shell) record(msg string) {
	sh.entries = append(sh.entries, fmt.Sprintf("%s %s", sh.now().Format("15:04:05"), msg))
	if len(sh.entries) > maxLogEntries {
		sh.entries = sh.entries[len(sh.entries)-maxLogEntries:]
	}
}

// Traversal is the current traversal joined the way the CLI prints it.
func (sh *Shell) Traversal() string {
	return strings.Join(sh.session.Traverse(sh.order), " ")
}

// applyKeys validates every key before touching the tree, so a bad key
// leaves the tree and the log unchanged.
func (sh *Shell) applyKeys(keys []string, apply func(string) error) error {
	for _, key := range keys {
		if err := sh.session.ValidateKey(key); err != nil {
			return err
		}
	}
	for _, key := range keys {
		if err := apply(key); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs one line of input. Errors never end the shell; they are
// returned for the status line.
func (sh *Shell) Execute(line string) (ShellResult, error) {
	cmd, err := splitCommand(line)
	if err != nil {
		return ShellResult{}, err
	}

	switch cmd.Name {
	case "":
		return ShellResult{}, nil

	case "insert", "add", "i":
		if len(cmd.Args) == 0 {
			return ShellResult{}, fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgs)
		}
		if err := sh.applyKeys(cmd.Args, sh.session.Insert); err != nil {
			return ShellResult{}, err
		}
		msg := fmt.Sprintf("inserted %s", strings.Join(cmd.Args, " "))
		sh.record(msg)
		return ShellResult{Message: msg}, nil

	case "delete", "del", "rm", "d":
		if len(cmd.Args) == 0 {
			return ShellResult{}, fmt.Errorf("%s: %w", cmd.Name, ErrMissingArgs)
		}
		if err := sh.applyKeys(cmd.Args, sh.session.Delete); err != nil {
			return ShellResult{}, err
		}
		msg := fmt.Sprintf("deleted %s", strings.Join(cmd.Args, " "))
		sh.record(msg)
		return ShellResult{Message: msg}, nil

	case "search", "find", "s":
		if len(cmd.Args) != 1 {
			return ShellResult{}, fmt.Errorf("%s takes one key: %w", cmd.Name, ErrMissingArgs)
		}
		count, found, err := sh.session.Search(cmd.Args[0])
		if err != nil {
			return ShellResult{}, err
		}
		msg := fmt.Sprintf("%s not found", cmd.Args[0])
		if found {
			msg = fmt.Sprintf("%s found, count %d", cmd.Args[0], count)
		}
		sh.record(msg)
		return ShellResult{Message: msg}, nil

	case "order":
		if len(cmd.Args) != 1 {
			return ShellResult{}, fmt.Errorf("order takes pre, in or post: %w", ErrMissingArgs)
		}
		order, err := avl.ParseOrder(cmd.Args[0])
		if err != nil {
			return ShellResult{}, err
		}
		sh.order = order
		return ShellResult{Message: fmt.Sprintf("traversal order %s", order)}, nil

	case "clear":
		sh.session.Clear()
		sh.record("cleared")
		return ShellResult{Message: "tree cleared"}, nil

	case "check":
		if err := sh.session.Check(); err != nil {
			return ShellResult{}, err
		}
		st := sh.session.Stats()
		return ShellResult{Message: fmt.Sprintf("ok: %d keys, %d held, height %d (bound %d)",
			st.Len, st.Size, st.Height, st.MaxHeight)}, nil

	case "load":
		if len(cmd.Args) == 0 {
			return ShellResult{}, fmt.Errorf("load: %w", ErrMissingArgs)
		}
		if err := loadScripts(sh.session, cmd.Args, false, sh.progress); err != nil {
			return ShellResult{}, err
		}
		msg := fmt.Sprintf("loaded %s", strings.Join(cmd.Args, " "))
		sh.record(msg)
		return ShellResult{Message: msg}, nil

	case "copy":
		if sh.copyText == nil {
			return ShellResult{}, errors.New("clipboard not available")
		}
		if err := sh.copyText(sh.Traversal()); err != nil {
			return ShellResult{}, fmt.Errorf("copy to clipboard: %w", err)
		}
		return ShellResult{Message: "📋 traversal copied to clipboard"}, nil

	case "help", "?":
		return ShellResult{ShowHelp: true}, nil

	case "quit", "exit", "q":
		return ShellResult{Quit: true}, nil
	}

	return ShellResult{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
}
