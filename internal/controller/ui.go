// Package controller provides output adapters for displaying circuits and
// transform results.
package controller

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// UI defines the interface for presenting designs and transform outcomes.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReports shows the per-design outcome of a transform run.
	DisplayReports(reports []m.Report) error
	// DisplayModules shows the module list of a circuit.
	DisplayModules(c *m.Circuit) error
	// DisplayPaths shows the hierarchical paths of a circuit.
	DisplayPaths(c *m.Circuit) error
	// DisplayHierarchy shows the instance hierarchy of a circuit.
	DisplayHierarchy(c *m.Circuit) error
}
