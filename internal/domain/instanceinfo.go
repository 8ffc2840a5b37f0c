package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// FindDUT returns the module carrying the MarkDUT annotation, or nil if no
// module is marked. Uniqueness of the marker is an invariant guaranteed by
// whatever produced the design; the first marked module wins.
func FindDUT(c *m.Circuit) *m.Module {
	for _, mod := range c.Modules {
		for _, a := range mod.Annotations {
			if a.IsClass(m.MarkDUTClass) {
				return mod
			}
		}
	}

	return nil
}
