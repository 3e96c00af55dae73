// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wythoff

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPolyhedron is returned by Lookup for a name not in the catalogue.
var ErrUnknownPolyhedron = errors.New("wythoff: unknown polyhedron")

//go:embed catalog.yaml
var catalogYAML []byte

// Entry is a named uniform polyhedron and the counts it must have.
type Entry struct {
	Name     string `yaml:"name"`
	Family   string `yaml:"family"`
	Symbol   string `yaml:"symbol"`
	Faces    int    `yaml:"faces"`
	Vertices int    `yaml:"vertices"`
	Edges    int    `yaml:"edges"`
}

// Parse parses the entry's symbol.
func (e Entry) Parse() (*Symbol, error) {
	return Parse(e.Symbol)
}

var catalog = sync.OnceValues(func() ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
		return nil, fmt.Errorf("wythoff: invalid catalogue: %w", err)
	}
	return entries, nil
})

// Catalog returns the built in catalogue of uniform polyhedra: the Platonic
// and Archimedean solids, the Kepler-Poinsot polyhedra, a prism and an
// antiprism, two hemi-polyhedra and a few non-convex truncations and snubs.
func Catalog() ([]Entry, error) {
	entries, err := catalog()
	if err != nil {
		return nil, err
	}
	return slices.Clone(entries), nil
}

// Lookup returns the catalogue entry with the given name.
func Lookup(name string) (Entry, error) {
	entries, err := catalog()
	if err != nil {
		return Entry{}, err
	}
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.Name == name })
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPolyhedron, name)
	}
	return entries[i], nil
}
