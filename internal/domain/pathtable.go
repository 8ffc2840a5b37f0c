package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// PathTable indexes hierarchical paths by the modules they route through: a
// reverse multimap from module name to every path that has that module as its
// root, as an interior locator, or at its leaf.
type PathTable struct {
	byModule map[string][]*m.HierPath
}

// NewPathTable builds the table over the whole design.
func NewPathTable(c *m.Circuit) *PathTable {
	t := &PathTable{byModule: make(map[string][]*m.HierPath)}

	for _, p := range c.Paths {
		t.Add(p)
	}

	return t
}

// Add registers a path, making it discoverable by later queries. Used both at
// construction time and for paths cloned while the transform runs.
func (t *PathTable) Add(p *m.HierPath) {
	seen := make(map[string]struct{}, len(p.Namepath))

	for _, loc := range p.Namepath {
		if _, dup := seen[loc.Module]; dup {
			continue
		}

		seen[loc.Module] = struct{}{}
		t.byModule[loc.Module] = append(t.byModule[loc.Module], p)
	}
}

// PathsTouching returns every indexed path whose route passes through the
// named module, in registration order.
func (t *PathTable) PathsTouching(module string) []*m.HierPath {
	return t.byModule[module]
}

// ReferencedPathSymbols collects the path symbols referenced by path-scoped
// annotations on the module or any of its ports.
func ReferencedPathSymbols(mod *m.Module) map[string]struct{} {
	syms := make(map[string]struct{})

	collect := func(annos []m.Annotation) {
		for _, a := range annos {
			if sym, ok := a.StringField(m.NonlocalKey); ok {
				syms[sym] = struct{}{}
			}
		}
	}

	collect(mod.Annotations)
	for _, p := range mod.Ports {
		collect(p.Annotations)
	}

	return syms
}
