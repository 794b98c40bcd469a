/*
Copyright 2025 The Planfeat Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vocab builds and persists the operator vocabulary: the immutable
// mapping from operator identifier to a dense index in [0, V).
//
// Indices are assigned by lexicographic sort of the observed operator set,
// so the mapping is reproducible regardless of directory-listing or
// processing order.
package vocab

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"planfeat.io/planfeat/go/json2"
	"planfeat.io/planfeat/go/log"
	"planfeat.io/planfeat/go/plantree"
)

// heldOutDir names the corpus subtree reserved for held-out validation
// data; Build never descends into it.
const heldOutDir = "validation"

// Vocabulary maps operator identifiers to dense indices. It is immutable
// after construction.
type Vocabulary struct {
	indexes map[string]int
	ops     []string
}

// New builds a vocabulary from the given operator identifiers. Duplicates
// are collapsed; indices follow lexicographic order.
func New(ops []string) *Vocabulary {
	seen := make(map[string]struct{}, len(ops))
	uniq := make([]string, 0, len(ops))
	for _, op := range ops {
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		uniq = append(uniq, op)
	}
	sort.Strings(uniq)

	indexes := make(map[string]int, len(uniq))
	for i, op := range uniq {
		indexes[op] = i
	}
	return &Vocabulary{indexes: indexes, ops: uniq}
}

// Size returns V, the number of distinct operators.
func (v *Vocabulary) Size() int {
	return len(v.ops)
}

// Index returns the dense index of op and whether op is in the vocabulary.
func (v *Vocabulary) Index(op string) (int, bool) {
	i, ok := v.indexes[op]
	return i, ok
}

// Ops returns the operators in index order. Callers must not modify the
// returned slice.
func (v *Vocabulary) Ops() []string {
	return v.ops
}

// Build scans every .json file under root, runs the plan-tree walker over
// each, and returns the vocabulary of all observed operators plus the list
// of files successfully read. Unreadable or malformed files are logged and
// skipped; the scan continues.
func Build(root string) (*Vocabulary, []string, error) {
	ops := make(map[string]struct{})
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == heldOutDir && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warningf("vocab: skipping unreadable %v: %v", path, err)
			return nil
		}
		roots, err := plantree.Parse(data)
		if err != nil {
			log.Warningf("vocab: skipping malformed %v: %v", path, err)
			return nil
		}
		plantree.Walk(roots, func(n *plantree.Node) {
			if n.Op != "" {
				ops[n.Op] = struct{}{}
			}
		})
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %v: %w", root, err)
	}

	collected := make([]string, 0, len(ops))
	for op := range ops {
		collected = append(collected, op)
	}
	return New(collected), files, nil
}

// Save writes the operator→index mapping as indented JSON with sorted keys,
// a stable and human-diffable artifact later runs can Load without
// rescanning the corpus.
func (v *Vocabulary) Save(path string) error {
	data, err := json.MarshalIndent(v.indexes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a persisted vocabulary and validates that its indices form the
// contiguous range [0, V).
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var indexes map[string]int
	if err := json2.Unmarshal(data, &indexes); err != nil {
		return nil, fmt.Errorf("vocabulary %v: %w", path, err)
	}

	ops := make([]string, len(indexes))
	seen := make([]bool, len(indexes))
	for op, idx := range indexes {
		if idx < 0 || idx >= len(indexes) {
			return nil, fmt.Errorf("vocabulary %v: index %d for %q outside [0, %d)", path, idx, op, len(indexes))
		}
		if seen[idx] {
			return nil, fmt.Errorf("vocabulary %v: duplicate index %d", path, idx)
		}
		seen[idx] = true
		ops[idx] = op
	}
	return &Vocabulary{indexes: indexes, ops: ops}, nil
}
