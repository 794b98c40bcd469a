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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LabelTable is the external tabular label source for plan-directory
// ingestion. Rows are keyed by the label file's "filename" column with a
// trailing .sql stripped; the runtime comes from "wall_time_secs".
type LabelTable struct {
	runtimes map[string]float64
}

// LoadLabels reads a CSV label table.
func LoadLabels(path string) (*LabelTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("label table %v: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("label table %v is empty", path)
	}

	fileCol, timeCol := -1, -1
	for i, name := range records[0] {
		switch name {
		case "filename":
			fileCol = i
		case "wall_time_secs":
			timeCol = i
		}
	}
	if fileCol < 0 || timeCol < 0 {
		return nil, fmt.Errorf("label table %v needs filename and wall_time_secs columns", path)
	}

	runtimes := make(map[string]float64, len(records)-1)
	for _, rec := range records[1:] {
		key := strings.TrimSuffix(rec[fileCol], ".sql")
		rt, err := strconv.ParseFloat(rec[timeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("label table %v: bad runtime for %q: %v", path, rec[fileCol], err)
		}
		runtimes[key] = rt
	}
	return &LabelTable{runtimes: runtimes}, nil
}

// Runtime returns the wall-clock runtime in seconds for key. A missing key
// is an error, never a default: substituting one would silently misalign
// features and labels.
func (lt *LabelTable) Runtime(key string) (float64, error) {
	rt, ok := lt.runtimes[key]
	if !ok {
		return 0, fmt.Errorf("no label row for key %q", key)
	}
	return rt, nil
}
