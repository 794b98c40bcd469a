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

// Package flatvec encodes a normalized plan tree into its flat vector: a
// fixed-length numeric array of per-operator occurrence counts followed by
// per-operator cardinality sums, indexed by an operator vocabulary.
package flatvec

import (
	"planfeat.io/planfeat/go/plantree"
	"planfeat.io/planfeat/go/vocab"
)

// Encode produces the 2V-length flat vector of a plan: entries [0,V) are
// occurrence counts, entries [V,2V) are cardinality sums. A node's
// cardinality sum accumulates its direct row-count estimate plus the
// row-count of every auxiliary estimate record attached to it. Operators
// absent from the vocabulary contribute nothing. The vector is allocated
// once per call; encoding is deterministic for a given plan and vocabulary.
func Encode(v *vocab.Vocabulary, roots []*plantree.Node) []float64 {
	size := v.Size()
	vec := make([]float64, 2*size)
	plantree.Walk(roots, func(n *plantree.Node) {
		i, ok := v.Index(n.Op)
		if !ok {
			return
		}
		vec[i]++
		vec[size+i] += n.RowCount
		for _, est := range n.Estimates {
			vec[size+i] += est
		}
	})
	return vec
}

// ColumnNames returns the 2V feature column names matching Encode's layout:
// "<op>_count" for every operator in vocabulary order, then "<op>_cardSum".
func ColumnNames(v *vocab.Vocabulary) []string {
	ops := v.Ops()
	names := make([]string, 0, 2*len(ops))
	for _, op := range ops {
		names = append(names, op+"_count")
	}
	for _, op := range ops {
		names = append(names, op+"_cardSum")
	}
	return names
}
