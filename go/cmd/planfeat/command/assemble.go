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

package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"planfeat.io/planfeat/go/dataset"
	"planfeat.io/planfeat/go/log"
	"planfeat.io/planfeat/go/vocab"
)

var (
	assembleArgs = struct {
		Config    string
		Vocab     string
		OutputDir string
	}{
		OutputDir: ".",
	}

	// Assemble builds the feature table of every configured split, aligns
	// their columns, and writes one CSV per split.
	Assemble = &cobra.Command{
		Use:   "assemble",
		Short: "Assemble column-aligned feature tables for every configured split.",
		Args:  cobra.NoArgs,
		RunE:  commandAssemble,
	}
)

func commandAssemble(cmd *cobra.Command, args []string) error {
	v, err := vocab.Load(assembleArgs.Vocab)
	if err != nil {
		return err
	}
	cfg, err := dataset.LoadConfig(assembleArgs.Config)
	if err != nil {
		return err
	}

	tables := make([]*dataset.Table, len(cfg.Splits))
	for i, sp := range cfg.Splits {
		t, err := dataset.Assemble(v, sp.Sources)
		if err != nil {
			return fmt.Errorf("split %q: %w", sp.Name, err)
		}
		tables[i] = t
	}
	tables = dataset.Align(tables...)

	summary := tablewriter.NewWriter(cmd.OutOrStdout())
	summary.Header([]string{"Split", "Sources", "Rows", "Feature Columns"})
	for i, sp := range cfg.Splits {
		t := tables[i]
		out := filepath.Join(assembleArgs.OutputDir, sp.Name+".csv")
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		err = t.WriteCSV(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %v: %w", out, err)
		}
		log.Infof("wrote %v", out)
		summary.Append([]string{sp.Name, strconv.Itoa(len(sp.Sources)), strconv.Itoa(len(t.Rows)), strconv.Itoa(len(t.Columns))})
	}
	summary.Render()
	return nil
}

func init() {
	fs := Assemble.Flags()
	fs.StringVar(&assembleArgs.Config, "config", "", "Assembly configuration file (one source list per split).")
	fs.StringVar(&assembleArgs.Vocab, "vocab", "", "Persisted operator vocabulary to encode with.")
	fs.StringVar(&assembleArgs.OutputDir, "output-dir", assembleArgs.OutputDir, "Directory the per-split CSV tables are written to.")
	Assemble.MarkFlagRequired("config")
	Assemble.MarkFlagRequired("vocab")
	Root.AddCommand(Assemble)
}
