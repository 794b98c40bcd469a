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

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewSortsAndDedupes(t *testing.T) {
	v := New([]string{"TableScan", "Filter", "Output", "Filter"})
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, []string{"Filter", "Output", "TableScan"}, v.Ops())

	i, ok := v.Index("Output")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = v.Index("Foo")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tpch/q1_plan.json", `{"0": {"name": "Output", "children": [{"name": "Filter", "children": []}]}}`)
	writeFile(t, root, "imdb/q2_plan.json", `{"Node Type": "Seq Scan", "Plans": []}`)
	writeFile(t, root, "imdb/broken.json", `{"name": "Never",`)
	writeFile(t, root, "imdb/readme.txt", `not a plan`)
	writeFile(t, root, "validation/held_out.json", `{"0": {"name": "HeldOut"}}`)

	v, files, err := Build(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Filter", "Output", "Seq Scan"}, v.Ops())
	assert.Len(t, files, 2)
}

func TestBuildOrderInvariance(t *testing.T) {
	// The same corpus content under file names that enumerate in opposite
	// orders must produce the identical mapping.
	planA := `{"0": {"name": "Zebra", "children": [{"name": "Filter"}]}}`
	planB := `{"0": {"name": "Aggregate", "children": []}}`

	first := t.TempDir()
	writeFile(t, first, "a.json", planA)
	writeFile(t, first, "z.json", planB)

	second := t.TempDir()
	writeFile(t, second, "a.json", planB)
	writeFile(t, second, "z.json", planA)

	v1, _, err := Build(first)
	require.NoError(t, err)
	v2, _, err := Build(second)
	require.NoError(t, err)

	require.Equal(t, v1.Ops(), v2.Ops())
	for _, op := range v1.Ops() {
		i1, _ := v1.Index(op)
		i2, _ := v2.Index(op)
		assert.Equal(t, i1, i2, "index drift for %q", op)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	v := New([]string{"Output", "Filter", "TableScan"})
	path := filepath.Join(t.TempDir(), "op_idx.json")
	require.NoError(t, v.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, v.Ops(), loaded.Ops())
	for _, op := range v.Ops() {
		want, _ := v.Index(op)
		got, ok := loaded.Index(op)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestLoadRejectsDrift(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"gap in indices", `{"a": 0, "b": 2}`},
		{"duplicate index", `{"a": 0, "b": 0}`},
		{"negative index", `{"a": -1, "b": 0}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "op_idx.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestSaveIsStable(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.json")
	second := filepath.Join(dir, "two.json")

	require.NoError(t, New([]string{"b", "a", "c"}).Save(first))
	require.NoError(t, New([]string{"c", "b", "a"}).Save(second))

	d1, err := os.ReadFile(first)
	require.NoError(t, err)
	d2, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(d1), string(d2))
}
