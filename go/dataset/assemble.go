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

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"planfeat.io/planfeat/go/flatvec"
	"planfeat.io/planfeat/go/json2"
	"planfeat.io/planfeat/go/plantree"
	"planfeat.io/planfeat/go/vocab"
)

// Assemble ingests every source in order, encodes each query's plan with
// the given vocabulary, and concatenates the results into a single table
// with feature columns in vocabulary order. Rows with non-positive runtime
// are dropped. Every source descriptor is validated before any file is
// touched.
func Assemble(v *vocab.Vocabulary, sources []Source) (*Table, error) {
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	t := &Table{Columns: flatvec.ColumnNames(v)}
	for _, s := range sources {
		m, _ := s.mode()
		var err error
		switch m {
		case modePlanDir:
			err = assemblePlanDir(v, s, t)
		case modeBundle:
			err = assembleBundle(v, s, t)
		}
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", s.Name, err)
		}
	}
	return t.withPositiveRuntime(), nil
}

// assemblePlanDir joins a directory of per-query plan files to a CSV label
// table. A plan file whose derived key has no label row aborts the source:
// skipping it would silently misalign features and labels.
func assemblePlanDir(v *vocab.Vocabulary, s Source, t *Table) error {
	labels, err := LoadLabels(s.LabelsCSV)
	if err != nil {
		return err
	}
	// os.ReadDir sorts by name, keeping row order stable across platforms.
	entries, err := os.ReadDir(s.PlanDir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		rt, err := labels.Runtime(labelKey(e.Name()))
		if err != nil {
			return fmt.Errorf("%v: %w", e.Name(), err)
		}
		data, err := os.ReadFile(filepath.Join(s.PlanDir, e.Name()))
		if err != nil {
			return err
		}
		roots, err := plantree.Parse(data)
		if err != nil {
			return fmt.Errorf("%v: %w", e.Name(), err)
		}
		t.Rows = append(t.Rows, Row{
			Values:  flatvec.Encode(v, roots),
			Runtime: rt,
			Dataset: s.Name,
		})
	}
	return nil
}

// assembleBundle ingests a single bundle file whose valid_queries entries
// carry plan, runtime (milliseconds), originating file, and statement index.
func assembleBundle(v *vocab.Vocabulary, s Source, t *Table) error {
	data, err := os.ReadFile(s.ResultFile)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		var doc any
		if err := json2.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%v: %w", s.ResultFile, err)
		}
		return fmt.Errorf("%v: invalid bundle document", s.ResultFile)
	}

	var failed error
	gjson.GetBytes(data, "valid_queries").ForEach(func(_, q gjson.Result) bool {
		plan := q.Get("plan")
		if !plan.Exists() {
			failed = fmt.Errorf("%v: query record missing plan", s.ResultFile)
			return false
		}
		roots, err := plantree.Parse([]byte(plan.Raw))
		if err != nil {
			failed = fmt.Errorf("%v: %w", s.ResultFile, err)
			return false
		}
		t.Rows = append(t.Rows, Row{
			Values:  flatvec.Encode(v, roots),
			Runtime: q.Get("runtime_ms").Float() / 1000.0,
			Dataset: s.Name,
			File:    q.Get("file").String(),
			StmtNo:  int(q.Get("stmt_no").Int()),
		})
		return true
	})
	return failed
}

// labelKey derives the label-join key from a plan file name: the stem up to
// its first underscore.
func labelKey(name string) string {
	name = strings.TrimSuffix(name, ".json")
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[:i]
	}
	return name
}
