package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
	"go.uber.org/zap"
)

// rewriteStats counts the edits applied while reclassifying paths.
type rewriteStats struct {
	Rewritten int
	Cloned    int
}

// rewritePaths reclassifies every hierarchical path touching the old DUT and
// rewrites it for the new shell/wrapper structure. Locators name modules by
// name, and the shell inherited the DUT's name, so paths minted before the
// split now read as routing through the shell; each one is fixed up according
// to its relationship with the old module:
//
//   - the path is rooted at the old DUT: its first locator is an edge inside
//     the relocated body, so its owning module becomes the wrapper;
//   - the path ends at a DUT port: ports stayed on the shell, nothing to do;
//   - the path ends at the DUT as a whole module and its symbol is referenced
//     by metadata on the shell or its ports: clone it first (the clone keeps
//     resolving for the shell), then extend the original like any other;
//   - otherwise: splice the wrapper-instance edge in after the locator naming
//     the old DUT, pointing everything below it into the wrapper.
//
// Returned is the original-symbol to clone mapping consumed by the metadata
// retargeter, plus edit counts.
func rewritePaths(c *m.Circuit, table *PathTable, split splitResult, circuitNS *Namespace, log *zap.Logger) (map[string]*m.HierPath, rewriteStats) {
	shell, wrapper, inst := split.Shell, split.Wrapper, split.WrapperInst

	shellPathSyms := ReferencedPathSymbols(shell)
	shellPortSyms := shell.PortSymbols()

	for sym := range shellPathSyms {
		log.Debug("path symbol referenced by shell metadata", zap.String("symbol", sym))
	}

	renames := make(map[string]*m.HierPath)

	var stats rewriteStats

	for _, p := range table.PathsTouching(shell.Name) {
		log.Debug("processing hierarchical path",
			zap.String("symbol", p.Symbol),
			zap.Any("namepath", p.Namepath))

		// Root case: the first locator is an edge inside the relocated body.
		if p.Root() == shell.Name {
			p.Namepath[0].Module = wrapper.Name
			stats.Rewritten++

			continue
		}

		if p.LeafModule() == shell.Name {
			// A path scoped to one specific port is still valid: the port it
			// names lives on the shell, untouched by the body relocation.
			if p.IsComponent() {
				if _, isPort := shellPortSyms[p.Ref()]; isPort {
					continue
				}
			}

			// A module path the shell's own metadata relies on must keep
			// resolving for the shell. Clone it before the original is
			// extended down into the wrapper.
			if !p.IsComponent() {
				if _, shared := shellPathSyms[p.Symbol]; shared {
					clone := p.Clone()
					clone.Symbol = circuitNS.NewName(p.Symbol)
					c.Paths = append(c.Paths, clone)
					table.Add(clone)
					renames[p.Symbol] = clone
					stats.Cloned++

					log.Debug("cloned module path for shell metadata",
						zap.String("original", p.Symbol),
						zap.String("clone", clone.Symbol))
				}
			}
		}

		addHierarchy(p, shell.Name, wrapper.Name, inst.Symbol)
		stats.Rewritten++
	}

	return renames, stats
}

// addHierarchy splices one extra level into a path that passes through or
// ends at the old DUT: the wrapper-instance edge inside the shell, followed
// by the old locator re-owned by the wrapper. E.g.
//
//	[Top::dut, DUT]        becomes  [Top::dut, DUT::wrapper, Wrapper]
//	[Top::dut, DUT::x, …]  becomes  [Top::dut, DUT::wrapper, Wrapper::x, …]
func addHierarchy(p *m.HierPath, shellName, wrapperName, instSym string) {
	idx := 0
	namepath := make([]m.Locator, 0, len(p.Namepath)+1)

	for p.ModPart(idx) != shellName {
		namepath = append(namepath, p.Namepath[idx])
		idx++
	}

	namepath = append(namepath, m.Locator{Module: shellName, Name: instSym})

	old := p.Namepath[idx]
	if old.IsModule() {
		namepath = append(namepath, m.Locator{Module: wrapperName})
	} else {
		namepath = append(namepath, m.Locator{Module: wrapperName, Name: old.Name})
	}

	namepath = append(namepath, p.Namepath[idx+1:]...)
	p.Namepath = namepath
}
