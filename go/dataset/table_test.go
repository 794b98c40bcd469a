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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	a := &Table{
		Columns: []string{"a", "b"},
		Rows: []Row{
			{Values: []float64{1, 2}, Runtime: 0.5, Dataset: "tpch"},
			{Values: []float64{3, 4}, Runtime: 0.6, Dataset: "tpch"},
		},
	}
	b := &Table{
		Columns: []string{"b", "c"},
		Rows: []Row{
			{Values: []float64{5, 6}, Runtime: 0.7, Dataset: "imdb"},
		},
	}

	aligned := Align(a, b)
	require.Len(t, aligned, 2)

	union := []string{"a", "b", "c"}
	assert.Equal(t, union, aligned[0].Columns)
	assert.Equal(t, union, aligned[1].Columns)

	// Original values preserved, absent columns zero-filled.
	assert.Equal(t, []float64{1, 2, 0}, aligned[0].Rows[0].Values)
	assert.Equal(t, []float64{3, 4, 0}, aligned[0].Rows[1].Values)
	assert.Equal(t, []float64{0, 5, 6}, aligned[1].Rows[0].Values)

	// Metadata rides along.
	assert.Equal(t, "imdb", aligned[1].Rows[0].Dataset)
	assert.Equal(t, 0.7, aligned[1].Rows[0].Runtime)

	// Inputs are not modified.
	assert.Equal(t, []string{"a", "b"}, a.Columns)
	assert.Equal(t, []float64{1, 2}, a.Rows[0].Values)
	assert.Equal(t, []string{"b", "c"}, b.Columns)
}

func TestAlignSingleTable(t *testing.T) {
	a := &Table{Columns: []string{"b", "a"}, Rows: []Row{{Values: []float64{1, 2}}}}
	aligned := Align(a)
	require.Len(t, aligned, 1)
	assert.Equal(t, []string{"a", "b"}, aligned[0].Columns)
	assert.Equal(t, []float64{2, 1}, aligned[0].Rows[0].Values)
}

func TestWithPositiveRuntime(t *testing.T) {
	tbl := &Table{
		Columns: []string{"a"},
		Rows: []Row{
			{Values: []float64{1}, Runtime: 1.5},
			{Values: []float64{2}, Runtime: 0},
			{Values: []float64{3}, Runtime: -0.1},
			{Values: []float64{4}, Runtime: 0.001},
		},
	}
	kept := tbl.withPositiveRuntime()
	require.Len(t, kept.Rows, 2)
	assert.Equal(t, []float64{1}, kept.Rows[0].Values)
	assert.Equal(t, []float64{4}, kept.Rows[1].Values)
	// The original keeps all rows.
	assert.Len(t, tbl.Rows, 4)
}

func TestFeatureMatrixAndLabels(t *testing.T) {
	tbl := &Table{
		Columns: []string{"a", "b"},
		Rows: []Row{
			{Values: []float64{1, 2}, Runtime: 0.5},
			{Values: []float64{3, 4}, Runtime: 1.5},
		},
	}
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, tbl.FeatureMatrix())
	assert.Equal(t, []float64{0.5, 1.5}, tbl.Labels())
}

func TestWriteCSV(t *testing.T) {
	tbl := &Table{
		Columns: []string{"Filter_count", "Filter_cardSum"},
		Rows: []Row{
			{Values: []float64{1, 40}, Runtime: 0.25, Dataset: "tpch", File: "q1.sql", StmtNo: 3},
		},
	}
	var sb strings.Builder
	require.NoError(t, tbl.WriteCSV(&sb))

	want := "Filter_count,Filter_cardSum,runtime,dataset_id,file,stmt_no\n" +
		"1,40,0.25,tpch,q1.sql,3\n"
	assert.Equal(t, want, sb.String())
}
