package model

// Locator is one step of a hierarchical path. A locator with a Name identifies
// the instance edge (or, in last position, the component or port) named Name
// inside Module; a locator without a Name identifies Module itself and may
// only appear last.
type Locator struct {
	Module string `json:"module"`
	Name   string `json:"name,omitempty"`
}

// IsModule reports whether the locator names a whole module rather than an
// entity inside one.
func (l Locator) IsModule() bool {
	return l.Name == ""
}

// HierPath is a named hierarchical path: an ordered, non-empty locator
// sequence describing one unambiguous instantiation route from a root module
// down to a leaf target. Annotations reference it by Symbol.
type HierPath struct {
	Symbol   string    `json:"symbol"`
	Namepath []Locator `json:"namepath"`
}

// Root returns the name of the module the path starts in.
func (p *HierPath) Root() string {
	return p.Namepath[0].Module
}

// Leaf returns the last locator of the path.
func (p *HierPath) Leaf() Locator {
	return p.Namepath[len(p.Namepath)-1]
}

// LeafModule returns the module named by the last locator.
func (p *HierPath) LeafModule() string {
	return p.Leaf().Module
}

// IsComponent reports whether the path ends at a specific entity (port or
// internal component) rather than at a whole module.
func (p *HierPath) IsComponent() bool {
	return !p.Leaf().IsModule()
}

// Ref returns the entity name of a component-leaf path, or "" for a
// module-leaf path.
func (p *HierPath) Ref() string {
	return p.Leaf().Name
}

// ModPart returns the module named at step i of the path.
func (p *HierPath) ModPart(i int) string {
	return p.Namepath[i].Module
}

// Clone returns a copy of the path with its own locator storage. The caller
// is expected to give the clone a fresh symbol.
func (p *HierPath) Clone() *HierPath {
	namepath := make([]Locator, len(p.Namepath))
	copy(namepath, p.Namepath)

	return &HierPath{Symbol: p.Symbol, Namepath: namepath}
}
