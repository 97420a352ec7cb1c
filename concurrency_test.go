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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/cstree"
	"github.com/bufbuild/cstree/internal/treetest"
	"github.com/bufbuild/cstree/subtree"
)

// TestConcurrent navigates two trees that share subtrees from many goroutines
// at once. Run with -race.
func TestConcurrent(t *testing.T) {
	t.Parallel()

	result := load(t, "calc")
	lang := result.Tree.Language()
	first := result.Tree

	// A second tree made of the first statement and comment of the first.
	program, ok := lang.Lookup("program")
	require.True(t, ok)
	shared := first.Root().Subtree().Children()[:2]
	second := cstree.NewTree(subtree.NewNode(lang, program, shared, 0, 0), lang)

	trees := []*cstree.Tree{first, second}
	want := make([]string, len(trees))
	for i, tree := range trees {
		want[i] = treetest.Dump(tree.Root())
	}
	assert.Equal(t, `program [0, 17) 0:0-1:6
  assignment [0, 10) 0:0-0:10
    ident [0, 1) 0:0-0:1
    "=" [2, 3) 0:2-0:3
    binary [4, 9) 0:4-0:9
      number [4, 5) 0:4-0:5
      "+" [6, 7) 0:6-0:7
      number [8, 9) 0:8-0:9
    ";" [9, 10) 0:9-0:10
  comment [11, 17) 1:0-1:6 extra changed
`, want[1])

	var group errgroup.Group
	got := make([][]string, 16)
	for i := range got {
		got[i] = make([]string, len(trees))
		group.Go(func() error {
			for j, tree := range trees {
				root := tree.Root()
				for _, node := range treetest.All(root) {
					node.Parent()
					node.NextSibling()
					node.PrevNamedSibling()
					root.DescendantForByteRange(node.StartByte(), node.EndByte())
				}
				got[i][j] = treetest.Dump(root)
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())

	for i := range got {
		assert.Equal(t, want, got[i], "goroutine %d", i)
	}
}
