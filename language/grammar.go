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

package language

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Grammar is the declarative description of a [Language], suitable for
// writing by hand or storing as YAML.
//
//	name: arith
//	symbols:
//	  - {name: program, named: true}
//	  - {name: _expression, hidden: true}
//	  - {name: number, named: true}
//	  - {name: "+"}
//	alias_sequences:
//	  1: [~, statement]
//
// The first entry of Symbols becomes symbol 1; symbol 0 is always [End].
type Grammar struct {
	Name    string       `yaml:"name"`
	Symbols []SymbolInfo `yaml:"symbols"`

	// Alias sequences by id. Each entry names the alias for the structural
	// child at that position; an empty name (or YAML null) means no alias.
	AliasSequences map[uint16][]string `yaml:"alias_sequences"`
}

// SymbolInfo describes one symbol in a [Grammar].
type SymbolInfo struct {
	Name   string `yaml:"name"`
	Named  bool   `yaml:"named"`
	Hidden bool   `yaml:"hidden"`
}

// Parse decodes a YAML [Grammar] and builds a [Language] from it.
func Parse(data []byte) (*Language, error) {
	var g Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrammar, err)
	}
	return New(g)
}
