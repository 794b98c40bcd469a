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

package plantree

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"planfeat.io/planfeat/go/json2"
)

// maxDepth bounds normalization recursion so a malformed or adversarial
// document cannot exhaust the stack. Matches the nesting limit used by
// encoding/json.
const maxDepth = 10000

// operator resolution priority chain, in order. The first field that yields
// a non-empty value names the node; a node matching none of them is
// anonymous.
var opFields = []struct {
	path    string
	dialect Dialect
}{
	{"name", DialectTrino},
	{"plan_parameters.op_name", DialectGeneric},
	{"nodeType", DialectTrino},
	{"Node Type", DialectPostgres},
}

// Parse normalizes a raw plan document into its root nodes. A multi-fragment
// document yields one root per fragment; a valid_queries bundle yields the
// roots of every bundled plan.
func Parse(data []byte) ([]*Node, error) {
	if !gjson.ValidBytes(data) {
		// Re-parse through encoding/json for a line-annotated error.
		var doc any
		if err := json2.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid plan document")
	}
	return normalize(gjson.ParseBytes(data), 0)
}

func normalize(res gjson.Result, depth int) ([]*Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("plan tree exceeds maximum depth %d", maxDepth)
	}

	switch {
	case res.IsArray():
		var roots []*Node
		for _, elem := range res.Array() {
			sub, err := normalize(elem, depth+1)
			if err != nil {
				return nil, err
			}
			roots = append(roots, sub...)
		}
		return roots, nil

	case res.IsObject():
		if vq := res.Get("valid_queries"); vq.Exists() {
			return normalizeBundle(vq, depth)
		}
		if digitKeyed(res) {
			// Fragment mapping: every value is a root node.
			return normalizeValues(res, depth)
		}

		node, err := normalizeNode(res, depth)
		if err != nil {
			return nil, err
		}
		if node.Op == "" && len(node.Children) == 0 {
			// No operator field and no recognized child field: treat the
			// object as an opaque wrapper and probe every value.
			return normalizeValues(res, depth)
		}
		return []*Node{node}, nil
	}

	// Scalars carry no plan structure.
	return nil, nil
}

// normalizeBundle handles {"valid_queries": [{"plan": ...}, ...]} wrappers.
func normalizeBundle(vq gjson.Result, depth int) ([]*Node, error) {
	var roots []*Node
	for _, entry := range vq.Array() {
		plan := entry.Get("plan")
		if !plan.Exists() {
			continue
		}
		sub, err := normalize(plan, depth+1)
		if err != nil {
			return nil, err
		}
		roots = append(roots, sub...)
	}
	return roots, nil
}

// normalizeValues recurses into every object/array value of a wrapper
// mapping whose keys are not operator fields.
func normalizeValues(res gjson.Result, depth int) ([]*Node, error) {
	var roots []*Node
	var failed error
	res.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() && !value.IsArray() {
			return true
		}
		sub, err := normalize(value, depth+1)
		if err != nil {
			failed = err
			return false
		}
		roots = append(roots, sub...)
		return true
	})
	if failed != nil {
		return nil, failed
	}
	return roots, nil
}

func normalizeNode(res gjson.Result, depth int) (*Node, error) {
	node := &Node{Dialect: DialectUnknown}

	for _, probe := range opFields {
		if v := res.Get(probe.path); v.Exists() && v.String() != "" {
			node.Op = v.String()
			node.Dialect = probe.dialect
			break
		}
	}

	if rc := res.Get("outputRowCount"); rc.Exists() {
		// Float is tolerant: non-numeric values yield 0, never an error.
		node.RowCount = rc.Float()
	}
	for _, est := range res.Get("estimates").Array() {
		node.Estimates = append(node.Estimates, est.Get("outputRowCount").Float())
	}

	var raw []gjson.Result
	raw = append(raw, res.Get("children").Array()...)
	raw = append(raw, res.Get("Plans").Array()...)
	if plan := res.Get("plan"); plan.IsObject() || plan.IsArray() {
		raw = append(raw, plan)
	}
	for _, child := range raw {
		sub, err := normalize(child, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, sub...)
	}
	return node, nil
}

// digitKeyed reports whether a non-empty object is keyed exclusively by
// decimal strings, the shape fragment mappings use.
func digitKeyed(res gjson.Result) bool {
	keyed := false
	allDigits := true
	res.ForEach(func(key, _ gjson.Result) bool {
		keyed = true
		if !isDigits(key.Str) {
			allDigits = false
			return false
		}
		return true
	})
	return keyed && allDigits
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
