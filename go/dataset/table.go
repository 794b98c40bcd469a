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
	"encoding/csv"
	"io"
	"sort"
	"strconv"
)

// Row is one dataset record: a feature vector plus its metadata.
type Row struct {
	// Values holds the feature values, aligned with the table's Columns.
	Values []float64
	// Runtime is the label, in seconds.
	Runtime float64
	// Dataset identifies the source corpus.
	Dataset string
	// File and StmtNo locate the originating statement when known.
	File   string
	StmtNo int
}

// Table is an ordered collection of rows sharing one feature-column layout.
type Table struct {
	Columns []string
	Rows    []Row
}

// metaColumns are appended after the feature columns in CSV output.
var metaColumns = []string{"runtime", "dataset_id", "file", "stmt_no"}

// Align reindexes every table to the sorted union of all feature columns,
// zero-filling columns a table did not have. It returns new tables in input
// order; the inputs are not modified. Tables aligned together are guaranteed
// identical feature dimensionality regardless of which operators occurred
// in each corpus.
func Align(tables ...*Table) []*Table {
	set := make(map[string]struct{})
	for _, t := range tables {
		for _, c := range t.Columns {
			set[c] = struct{}{}
		}
	}
	union := make([]string, 0, len(set))
	for c := range set {
		union = append(union, c)
	}
	sort.Strings(union)

	pos := make(map[string]int, len(union))
	for i, c := range union {
		pos[c] = i
	}

	aligned := make([]*Table, len(tables))
	for ti, t := range tables {
		nt := &Table{Columns: union, Rows: make([]Row, len(t.Rows))}
		for ri, row := range t.Rows {
			values := make([]float64, len(union))
			for ci, c := range t.Columns {
				if ci < len(row.Values) {
					values[pos[c]] = row.Values[ci]
				}
			}
			nr := row
			nr.Values = values
			nt.Rows[ri] = nr
		}
		aligned[ti] = nt
	}
	return aligned
}

// withPositiveRuntime drops degenerate rows (runtime <= 0). Such rows are
// filtered, not treated as errors.
func (t *Table) withPositiveRuntime() *Table {
	nt := &Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if row.Runtime > 0 {
			nt.Rows = append(nt.Rows, row)
		}
	}
	return nt
}

// FeatureMatrix returns the feature values of every row, in row order. This
// is the sub-table a training component consumes together with Labels.
func (t *Table) FeatureMatrix() [][]float64 {
	m := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		m[i] = row.Values
	}
	return m
}

// Labels returns the runtime label vector, in row order.
func (t *Table) Labels() []float64 {
	labels := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		labels[i] = row.Runtime
	}
	return labels
}

// WriteCSV emits the table with feature columns first and metadata columns
// (runtime, dataset_id, file, stmt_no) last.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Columns)+len(metaColumns))
	header = append(header, t.Columns...)
	header = append(header, metaColumns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range t.Rows {
		for i, v := range row.Values {
			record[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		n := len(t.Columns)
		record[n] = strconv.FormatFloat(row.Runtime, 'f', -1, 64)
		record[n+1] = row.Dataset
		record[n+2] = row.File
		record[n+3] = strconv.Itoa(row.StmtNo)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
