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

// Package plantree normalizes query-execution-plan documents of several
// engine dialects into a single tree shape and provides traversal over it.
//
// Three dialects are recognized: Trino/Presto style nodes (`name`,
// `children`, `estimates`), PostgreSQL EXPLAIN style nodes (`Node Type`,
// `Plans`), and a generic style carrying the operator under
// `plan_parameters.op_name`. Documents may additionally be wrapped in a
// fragment mapping (digit keys to root nodes) or a `valid_queries` bundle;
// both wrappers are unwrapped transparently.
package plantree

// Dialect identifies the plan schema a node was classified under.
type Dialect int8

const (
	// DialectUnknown marks anonymous nodes that carry no operator field.
	DialectUnknown Dialect = iota
	// DialectTrino covers name/children/estimates style nodes.
	DialectTrino
	// DialectPostgres covers "Node Type"/Plans style nodes.
	DialectPostgres
	// DialectGeneric covers nodes naming their operator under
	// plan_parameters.op_name.
	DialectGeneric
)

// String implements fmt.Stringer.
func (d Dialect) String() string {
	switch d {
	case DialectTrino:
		return "trino"
	case DialectPostgres:
		return "postgres"
	case DialectGeneric:
		return "generic"
	}
	return "unknown"
}

// Node is one operator of a normalized plan tree. Classification happens
// once, at parse time; traversal never re-probes raw field names.
type Node struct {
	// Op is the operator identifier. Empty for anonymous nodes, which are
	// skipped for naming purposes but whose children are still visited.
	Op string

	// Dialect records which schema the node was resolved from.
	Dialect Dialect

	// RowCount is the node's direct output-row-count estimate. Missing or
	// non-numeric values normalize to 0.
	RowCount float64

	// Estimates holds the output-row-count of every auxiliary estimate
	// record attached to the node, under the same tolerant-parse rule.
	Estimates []float64

	// Children are the node's sub-plans, in document order.
	Children []*Node
}
