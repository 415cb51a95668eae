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
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpSearch
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one line of a key script.
type Op struct {
	Kind   OpKind
	Key    string
	Source string
	Line   int
}

func (op Op) position() string {
	return fmt.Sprintf("%s:%d", op.Source, op.Line)
}

var ErrEmptyKey = errors.New("operation without a key")

// ReadScript parses a key script. Each non-blank line not starting with '#'
// is an operation: "key" or "+key" inserts, "-key" deletes, "?key" searches.
// A negative number is inserted as "+-5".
func ReadScript(r io.Reader, source string) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	// long string keys are allowed
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op := Op{Kind: OpInsert, Key: line, Source: source, Line: lineNo}
		switch line[0] {
		case '+':
			op.Key = line[1:]
		case '-':
			op.Kind = OpDelete
			op.Key = line[1:]
		case '?':
			op.Kind = OpSearch
			op.Key = line[1:]
		}
		op.Key = strings.TrimSpace(op.Key)

		if op.Key == "" {
			return nil, fmt.Errorf("%s: %w", op.position(), ErrEmptyKey)
		}
		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	return ops, nil
}

// ReadScriptFile opens and parses the key script at path.
func ReadScriptFile(path string) ([]Op, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key script %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return ReadScript(file, path)
}

// ApplyScript runs ops against the session in order. With showProgress a
// bar is drawn on progress (usually stderr).
func ApplyScript(s Session, ops []Op, showProgress bool, progress io.Writer) error {
	var bar *progressbar.ProgressBar
	if showProgress && len(ops) > 0 {
		bar = progressbar.NewOptions(len(ops),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌲 Applying keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	for _, op := range ops {
		if err := s.Apply(op); err != nil {
			return fmt.Errorf("%s: %w", op.position(), err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	log.Debug().Int("ops", len(ops)).Int("keys", s.Stats().Len).Msg("script applied")
	return nil
}

// loadScripts reads every file and applies it to the session.
func loadScripts(s Session, paths []string, showProgress bool, progress io.Writer) error {
	for _, path := range paths {
		ops, err := ReadScriptFile(path)
		if err != nil {
			return err
		}
		log.Info().Str("file", path).Int("ops", len(ops)).Msg("loading key script")
		if err := ApplyScript(s, ops, showProgress, progress); err != nil {
			return err
		}
	}
	return nil
}
