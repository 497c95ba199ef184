// Package layers groups a flat set of named tensors into main model stages
// and their internal sub-layers, using the dotted-name convention
// "<parent>.<child>".
package layers

import (
	"sort"
	"strings"

	"github.com/killallgit/featureviz-api/internal/models"
)

// Separator splits a parent layer name from its sub-layer name
const Separator = "."

// Partition is the layer hierarchy of one response
type Partition struct {
	Main      []models.NamedLayer            `json:"main"`
	Internals map[string][]models.NamedLayer `json:"internals"`
}

// Split partitions viz in encounter order. Main layers keep their order;
// internals keep append order until InternalsOf sorts them for display.
// Names with an empty parent are dropped.
func Split(viz models.VisualizationData) Partition {
	p := Partition{
		Main:      []models.NamedLayer{},
		Internals: map[string][]models.NamedLayer{},
	}

	for _, entry := range viz.Entries() {
		parent, _, nested := strings.Cut(entry.Name, Separator)
		if !nested {
			p.Main = append(p.Main, entry)
			continue
		}
		if parent == "" {
			continue
		}
		p.Internals[parent] = append(p.Internals[parent], entry)
	}

	return p
}

// InternalsOf returns the sub-layers of parent sorted by full name.
// The partition itself is left untouched.
func (p Partition) InternalsOf(parent string) []models.NamedLayer {
	src := p.Internals[parent]
	if len(src) == 0 {
		return nil
	}
	out := make([]models.NamedLayer, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ChildName strips the "<parent>." prefix from a sub-layer name
func ChildName(parent, name string) string {
	return strings.TrimPrefix(name, parent+Separator)
}
