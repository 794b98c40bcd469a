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

// Package dataset assembles per-query flat vectors and runtime labels into
// column-aligned tables ready for a training pipeline.
package dataset

import (
	"errors"
	"fmt"
)

// Source describes one named corpus of queries and how to ingest it: either
// a directory of per-query plan files joined to a CSV label table, or a
// single bundle file carrying plans and labels inline.
type Source struct {
	Name       string `mapstructure:"name"`
	PlanDir    string `mapstructure:"plan_dir"`
	LabelsCSV  string `mapstructure:"labels_csv"`
	ResultFile string `mapstructure:"result_file"`
}

type ingestMode int8

const (
	modeInvalid ingestMode = iota
	modePlanDir
	modeBundle
)

func (s Source) mode() (ingestMode, error) {
	if s.Name == "" {
		return modeInvalid, errors.New("dataset source is missing a name")
	}
	switch {
	case s.PlanDir != "" && s.LabelsCSV != "" && s.ResultFile == "":
		return modePlanDir, nil
	case s.ResultFile != "" && s.PlanDir == "" && s.LabelsCSV == "":
		return modeBundle, nil
	}
	return modeInvalid, fmt.Errorf("dataset source %q must set either plan_dir+labels_csv or result_file", s.Name)
}

// Validate rejects descriptors that specify neither ingestion mode fully,
// or both at once.
func (s Source) Validate() error {
	_, err := s.mode()
	return err
}
