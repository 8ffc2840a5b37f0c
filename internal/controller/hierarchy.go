package controller

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// hierarchyNode is one row of the flattened instance hierarchy.
type hierarchyNode struct {
	depth    int
	instance string // "" for root modules
	module   string
	public   bool
	missing  bool // instantiated module not present in the design
}

// hierarchyNodes flattens the instance hierarchy into display order. Roots
// are the modules no other module instantiates, in document order. Recursion
// through a module already on the current route is cut off.
func hierarchyNodes(c *m.Circuit) []hierarchyNode {
	instantiated := make(map[string]struct{})

	for _, mod := range c.Modules {
		for _, inst := range mod.Instances {
			instantiated[inst.Module] = struct{}{}
		}
	}

	var nodes []hierarchyNode

	var walk func(mod *m.Module, instance string, depth int, route map[string]struct{})
	walk = func(mod *m.Module, instance string, depth int, route map[string]struct{}) {
		nodes = append(nodes, hierarchyNode{
			depth:    depth,
			instance: instance,
			module:   mod.Name,
			public:   mod.Public,
		})

		if _, cyclic := route[mod.Name]; cyclic {
			return
		}

		route[mod.Name] = struct{}{}
		defer delete(route, mod.Name)

		for _, inst := range mod.Instances {
			child := c.Module(inst.Module)
			if child == nil {
				nodes = append(nodes, hierarchyNode{
					depth:    depth + 1,
					instance: inst.Name,
					module:   inst.Module,
					missing:  true,
				})

				continue
			}

			walk(child, inst.Name, depth+1, route)
		}
	}

	for _, mod := range c.Modules {
		if _, isChild := instantiated[mod.Name]; !isChild {
			walk(mod, "", 0, make(map[string]struct{}))
		}
	}

	return nodes
}
