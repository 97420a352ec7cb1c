// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cstree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cstree/internal/corpora"
	"github.com/bufbuild/cstree/internal/treetest"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata/corpus",
		Refresh:   "CSTREE_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "sexp"},
			{Extension: "tree"},
		},
		Test: func(t *testing.T, path string, text []byte) []string {
			result, err := treetest.Parse(path, text)
			require.NoError(t, err)

			root := result.Tree.Root()
			return []string{
				root.String() + "\n",
				treetest.Dump(root),
			}
		},
	}.Run(t)
}
