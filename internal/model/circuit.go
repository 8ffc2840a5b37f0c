// Package model defines the data structures for the hierarchical circuit IR.
package model

// Path represents a file system path.
type Path string

// Direction is the direction of a module port as seen from outside the module.
type Direction string

const (
	// DirIn marks a port driven by the instantiating context.
	DirIn Direction = "in"
	// DirOut marks a port driven by the module itself.
	DirOut Direction = "out"
)

// Port is one entry of a module's ordered port list. Symbol, when set, makes
// the port addressable by hierarchical paths.
type Port struct {
	Name        string       `json:"name"`
	Direction   Direction    `json:"direction"`
	Symbol      string       `json:"symbol,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Instance is an edge from its owning module to the child module it
// instantiates. Symbol, when set, makes the edge addressable by hierarchical
// paths and must be unique within the owning module.
type Instance struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
	Module string `json:"module"`
}

// ComponentKind categorizes internal module components.
type ComponentKind string

const (
	// KindWire is a named internal net.
	KindWire ComponentKind = "wire"
	// KindNode is a named intermediate value.
	KindNode ComponentKind = "node"
	// KindProbe is a debug probe holding a local (module, target) reference.
	KindProbe ComponentKind = "probe"
)

// LocalRef is a reference to a named entity inside a module, spelled with the
// owning module's name. Probes use it to point back into the module they live in.
type LocalRef struct {
	Module string `json:"module"`
	Target string `json:"target"`
}

// Component is an internal element of a module body other than an instance.
type Component struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol,omitempty"`
	Kind        ComponentKind `json:"kind"`
	Ref         *LocalRef     `json:"ref,omitempty"`
	Annotations []Annotation  `json:"annotations,omitempty"`
}

// Connect drives Dst from Src. Endpoints are either a port name of the owning
// module ("a") or a port of a local instance ("inst.a").
type Connect struct {
	Dst string `json:"dst"`
	Src string `json:"src"`
}

// Module is a named hardware module: an ordered port list, a body of
// instances, components, and connects, and attached annotations.
type Module struct {
	Name        string       `json:"name"`
	Public      bool         `json:"public,omitempty"`
	Ports       []Port       `json:"ports,omitempty"`
	Instances   []*Instance  `json:"instances,omitempty"`
	Components  []*Component `json:"components,omitempty"`
	Connects    []Connect    `json:"connects,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// ClonePorts returns a deep copy of the module's port list, annotations included.
func (mod *Module) ClonePorts() []Port {
	ports := make([]Port, len(mod.Ports))

	for i, p := range mod.Ports {
		ports[i] = p
		ports[i].Annotations = cloneAnnotations(p.Annotations)
	}

	return ports
}

// PortSymbols returns the set of non-empty port symbols of the module.
func (mod *Module) PortSymbols() map[string]struct{} {
	syms := make(map[string]struct{})

	for _, p := range mod.Ports {
		if p.Symbol != "" {
			syms[p.Symbol] = struct{}{}
		}
	}

	return syms
}

// Circuit is a whole design: a document-ordered module list, the hierarchical
// paths defined over it, and design-level annotations.
type Circuit struct {
	Name        string       `json:"circuit"`
	Modules     []*Module    `json:"modules"`
	Paths       []*HierPath  `json:"paths,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Module returns the module with the given name, or nil.
func (c *Circuit) Module(name string) *Module {
	for _, mod := range c.Modules {
		if mod.Name == name {
			return mod
		}
	}

	return nil
}

// InsertModuleAfter inserts newMod into the module list immediately after the
// module named after. If after is not found, newMod is appended.
func (c *Circuit) InsertModuleAfter(after string, newMod *Module) {
	for i, mod := range c.Modules {
		if mod.Name == after {
			c.Modules = append(c.Modules[:i+1], append([]*Module{newMod}, c.Modules[i+1:]...)...)
			return
		}
	}

	c.Modules = append(c.Modules, newMod)
}

// Path returns the hierarchical path with the given symbol, or nil.
func (c *Circuit) Path(symbol string) *HierPath {
	for _, p := range c.Paths {
		if p.Symbol == symbol {
			return p
		}
	}

	return nil
}
