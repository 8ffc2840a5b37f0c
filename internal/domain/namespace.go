package domain

import (
	"fmt"

	m "github.com/mouse-blink/hierwrap/internal/model"
)

// Namespace is a unique-name allocator over one scope. Every name it returns
// is reserved for the namespace's lifetime, so repeated allocations from the
// same hint never collide.
type Namespace struct {
	used map[string]struct{}
}

// NewNamespace creates a namespace pre-seeded with the given names.
func NewNamespace(seed ...string) *Namespace {
	ns := &Namespace{used: make(map[string]struct{}, len(seed))}

	for _, name := range seed {
		if name != "" {
			ns.used[name] = struct{}{}
		}
	}

	return ns
}

// NewCircuitNamespace builds the whole-design namespace: module names and
// hierarchical path symbols share it, so fresh module names never shadow a
// path symbol and vice versa.
func NewCircuitNamespace(c *m.Circuit) *Namespace {
	ns := NewNamespace()

	for _, mod := range c.Modules {
		ns.used[mod.Name] = struct{}{}
	}

	for _, p := range c.Paths {
		ns.used[p.Symbol] = struct{}{}
	}

	return ns
}

// NewModuleNamespace builds the inner-symbol namespace of one module, seeded
// with its port names and symbols, instance names and symbols, and component
// names and symbols.
func NewModuleNamespace(mod *m.Module) *Namespace {
	ns := NewNamespace()

	for _, p := range mod.Ports {
		ns.used[p.Name] = struct{}{}
		if p.Symbol != "" {
			ns.used[p.Symbol] = struct{}{}
		}
	}

	for _, inst := range mod.Instances {
		ns.used[inst.Name] = struct{}{}
		if inst.Symbol != "" {
			ns.used[inst.Symbol] = struct{}{}
		}
	}

	for _, comp := range mod.Components {
		ns.used[comp.Name] = struct{}{}
		if comp.Symbol != "" {
			ns.used[comp.Symbol] = struct{}{}
		}
	}

	return ns
}

// NewName returns hint if it is free, otherwise hint with the smallest
// disambiguating suffix. The returned name is permanently reserved.
func (ns *Namespace) NewName(hint string) string {
	name := hint

	for i := 0; ; i++ {
		if _, taken := ns.used[name]; !taken {
			ns.used[name] = struct{}{}
			return name
		}

		name = fmt.Sprintf("%s_%d", hint, i)
	}
}
