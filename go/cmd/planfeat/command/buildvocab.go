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
	"github.com/spf13/cobra"

	"planfeat.io/planfeat/go/log"
	"planfeat.io/planfeat/go/vocab"
)

var (
	buildVocabArgs = struct {
		Output string
	}{
		Output: "op_idx.json",
	}

	// BuildVocab scans a plan corpus and persists the operator vocabulary.
	BuildVocab = &cobra.Command{
		Use:   "buildvocab <plan-root>",
		Short: "Scan a plan corpus and write the operator vocabulary.",
		Args:  cobra.ExactArgs(1),
		RunE:  commandBuildVocab,
	}
)

func commandBuildVocab(cmd *cobra.Command, args []string) error {
	root := cmd.Flags().Arg(0)
	v, files, err := vocab.Build(root)
	if err != nil {
		return err
	}
	if err := v.Save(buildVocabArgs.Output); err != nil {
		return err
	}
	log.Infof("collected %d operators from %d files into %v", v.Size(), len(files), buildVocabArgs.Output)
	for _, f := range files {
		log.V(1).Infof("read %v", f)
	}
	return nil
}

func init() {
	BuildVocab.Flags().StringVarP(&buildVocabArgs.Output, "output", "o", buildVocabArgs.Output, "Path the vocabulary is written to.")
	Root.AddCommand(BuildVocab)
}
