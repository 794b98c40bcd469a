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
)

// Root is the planfeat command tree.
var Root = &cobra.Command{
	Use:   "planfeat",
	Short: "planfeat turns query execution plans into flat feature vectors.",
	Long: "`planfeat` converts heterogeneous execution-plan trees into fixed-length numeric feature vectors\n" +
		"and assembles them, together with runtime labels, into column-aligned training tables.\n\n" +
		"A typical run builds the operator vocabulary once from a plan corpus (`buildvocab`), then encodes\n" +
		"one or more dataset splits against it (`assemble`).",
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Flush()
	},
}

func init() {
	log.RegisterFlags(Root.PersistentFlags())
}
