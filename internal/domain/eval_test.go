package domain

import (
	"testing"

	m "github.com/mouse-blink/hierwrap/internal/model"
	"github.com/stretchr/testify/require"
)

// evalModule computes the output port values of a combinational module whose
// body consists of connects and instances, by propagating values to a fixed
// point and recursing into instances once all their inputs are known. Good
// enough to check that pass-through wiring preserves behavior.
func evalModule(t *testing.T, c *m.Circuit, mod *m.Module, inputs map[string]bool) map[string]bool {
	t.Helper()

	values := make(map[string]bool, len(inputs))
	for name, v := range inputs {
		values[name] = v
	}

	evaluated := make(map[string]bool)

	for range 100 {
		progress := false

		for _, conn := range mod.Connects {
			v, known := values[conn.Src]
			if !known {
				continue
			}

			if cur, ok := values[conn.Dst]; !ok || cur != v {
				values[conn.Dst] = v
				progress = true
			}
		}

		for _, inst := range mod.Instances {
			if evaluated[inst.Name] {
				continue
			}

			child := c.Module(inst.Module)
			require.NotNil(t, child, "instance %q of unknown module %q", inst.Name, inst.Module)

			childInputs := make(map[string]bool)
			ready := true

			for _, p := range child.Ports {
				if p.Direction != m.DirIn {
					continue
				}

				v, ok := values[inst.Name+"."+p.Name]
				if !ok {
					ready = false
					break
				}

				childInputs[p.Name] = v
			}

			if !ready {
				continue
			}

			for name, v := range evalModule(t, c, child, childInputs) {
				values[inst.Name+"."+name] = v
			}

			evaluated[inst.Name] = true
			progress = true
		}

		if !progress {
			break
		}
	}

	outputs := make(map[string]bool)

	for _, p := range mod.Ports {
		if p.Direction != m.DirOut {
			continue
		}

		v, ok := values[p.Name]
		require.True(t, ok, "module %q: output %q never driven", mod.Name, p.Name)
		outputs[p.Name] = v
	}

	return outputs
}

// pathResolves walks a hierarchical path against the instance graph: every
// non-terminal locator must be an instance edge leading to the next module,
// and a component leaf must name an addressable entity of its module.
func pathResolves(c *m.Circuit, p *m.HierPath) bool {
	for i, loc := range p.Namepath {
		mod := c.Module(loc.Module)
		if mod == nil {
			return false
		}

		if i == len(p.Namepath)-1 {
			if loc.IsModule() {
				return true
			}

			return moduleHasEntity(mod, loc.Name)
		}

		next := p.Namepath[i+1].Module
		if !hasInstanceEdge(mod, loc.Name, next) {
			return false
		}
	}

	return false
}

func hasInstanceEdge(mod *m.Module, symbol, child string) bool {
	for _, inst := range mod.Instances {
		if inst.Symbol == symbol && inst.Module == child {
			return true
		}
	}

	return false
}

func moduleHasEntity(mod *m.Module, symbol string) bool {
	for _, p := range mod.Ports {
		if p.Symbol == symbol {
			return true
		}
	}

	for _, inst := range mod.Instances {
		if inst.Symbol == symbol {
			return true
		}
	}

	for _, comp := range mod.Components {
		if comp.Name == symbol || comp.Symbol == symbol {
			return true
		}
	}

	return false
}
