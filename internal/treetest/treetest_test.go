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

package treetest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cstree/extent"
	"github.com/bufbuild/cstree/internal/treetest"
)

const grammar = `
language:
  symbols:
    - {name: program, named: true}
    - {name: list, named: true}
    - {name: ident, named: true}
    - {name: ","}
`

func TestBuild(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	result, err := treetest.Parse("build.yaml", []byte(grammar+`
source: "a,  b\n,c"
tree:
  type: program
  children:
    - {type: ident, text: a}
    - {type: ",", text: ","}
    - {type: ident, text: b}
    - {type: ",", text: ","}
    - {type: ident, text: c}
`))
	require.NoError(t, err)
	assert.Equal("build.yaml", result.File.Path())

	root := result.Tree.Root()
	b := root.NamedChild(1)
	assert.Equal("b", b.Text(result.File))
	assert.Equal(extent.Extent{Bytes: 2, Point: extent.Point{Column: 2}}, b.Subtree().Padding())

	comma := root.Child(3)
	assert.Equal(uint32(6), comma.StartByte())
	assert.Equal(extent.Point{Row: 1}, comma.StartPoint())
	assert.Equal(extent.Extent{Bytes: 1, Point: extent.Point{Row: 1}}, comma.Subtree().Padding())

	assert.Equal("(program (ident) (ident) (ident))", root.String())
	assert.Equal(`program [0, 8) 0:0-1:2
  ident [0, 1) 0:0-0:1
  "," [1, 2) 0:1-0:2
  ident [4, 5) 0:4-0:5
  "," [6, 7) 1:0-1:1
  ident [7, 8) 1:1-1:2
`, treetest.Dump(root))
}

func TestRef(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	result, err := treetest.Parse("ref.yaml", []byte(grammar+`
source: "x,yx,y"
tree:
  type: program
  children:
    - type: list
      id: pair
      children:
        - {type: ident, text: x}
        - {type: ",", text: ","}
        - {type: ident, text: "y"}
    - type: list
      children:
        - {ref: pair}
`))
	require.NoError(t, err)

	root := result.Tree.Root()
	first := root.NamedChild(0)
	second := root.NamedChild(1).NamedChild(0)
	assert.Same(first.Subtree(), second.Subtree())
	assert.Equal(uint32(3), second.StartByte())
	assert.Equal("x,y", second.Text(result.File))

	assert.True(treetest.Find(root, "list", 2).Equal(second))
	assert.True(treetest.Find(root, "list", 3).IsZero())
	assert.Equal("y", treetest.Find(root, "ident", 3).Text(result.File))
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree string
		want string
	}{
		{
			name: "unknown-symbol",
			tree: `{type: nope, text: a}`,
			want: `unknown symbol "nope"`,
		},
		{
			name: "no-text",
			tree: `{type: ident, text: z}`,
			want: `"z" does not occur after offset 0`,
		},
		{
			name: "empty",
			tree: `{type: program}`,
			want: "needs text or children",
		},
		{
			name: "both",
			tree: `{type: program, text: a, children: [{type: ident, text: a}]}`,
			want: "both text and children",
		},
		{
			name: "bad-ref",
			tree: `{type: program, children: [{ref: nope}]}`,
			want: `unknown id "nope"`,
		},
		{
			name: "ref-mismatch",
			tree: `{type: program, children: [{type: ident, text: a, id: x}, {ref: x}]}`,
			want: `ref "x" expects "a"`,
		},
		{
			name: "duplicate-id",
			tree: `{type: program, children: [{type: ident, text: a, id: x}, {type: ident, text: b, id: x}]}`,
			want: `duplicate id "x"`,
		},
		{
			name: "bad-aliases",
			tree: `{type: program, aliases: 3, children: [{type: ident, text: a}]}`,
			want: "unknown alias sequence 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := treetest.Parse("bad.yaml", []byte(grammar+`
source: "a, b"
tree: `+tt.tree+"\n"))
			require.ErrorIs(t, err, treetest.ErrInvalidFixture)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		_, err := treetest.Parse("bad.yaml", []byte("tree: [\n"))
		require.ErrorIs(t, err, treetest.ErrInvalidFixture)
	})
}
