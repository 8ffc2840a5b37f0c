package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// splitResult names the modules produced by splitDUT. After the split the
// shell carries the DUT's original name and external interface; the wrapper
// is the original module object under a fresh name, still holding the body.
type splitResult struct {
	Shell       *m.Module
	Wrapper     *m.Module
	WrapperInst *m.Instance
}

// splitDUT splits dut into an empty shell plus a wrapper holding the original
// body, and wires the shell to instantiate the wrapper pass-through.
//
// The wrapper is realized by renaming the dut object rather than copying its
// body: the shell is the only newly created module. With moveDut unset the
// shell takes over the DUT's visibility and DUT marker; moveDut keeps both on
// the wrapper, making the shell private. That mode changes which module is
// externally addressable and is only for callers prepared to handle it.
func splitDUT(c *m.Circuit, dut *m.Module, circuitNS *Namespace, wrapperNameHint string, moveDut bool) splitResult {
	shell := &m.Module{
		Name:        dut.Name,
		Ports:       dut.ClonePorts(),
		Annotations: m.CloneAnnotations(dut.Annotations),
	}
	c.InsertModuleAfter(dut.Name, shell)

	if moveDut {
		shell.Public = false
	} else {
		shell.Public = dut.Public
		dut.Public = false
	}

	dut.Name = circuitNS.NewName(wrapperNameHint)
	wrapper := dut

	// Port annotations stay with the external interface, which the shell now
	// owns. Likewise every module annotation except, in moveDut mode, the DUT
	// marker itself.
	for i := range wrapper.Ports {
		wrapper.Ports[i].Annotations = nil
	}

	wrapper.Annotations = m.FilterAnnotations(wrapper.Annotations, func(a m.Annotation) bool {
		if a.IsClass(m.MarkDUTClass) {
			return !moveDut
		}

		return true
	})

	if moveDut {
		shell.Annotations = m.FilterAnnotations(shell.Annotations, func(a m.Annotation) bool {
			return a.IsClass(m.MarkDUTClass)
		})
	}

	shellNS := NewModuleNamespace(shell)
	inst := &m.Instance{
		Name:   wrapper.Name,
		Symbol: shellNS.NewName(wrapper.Name),
		Module: wrapper.Name,
	}
	shell.Instances = append([]*m.Instance{inst}, shell.Instances...)

	// Pass-through wiring, one connect per port in port order. Inputs flow
	// shell -> instance, outputs flow instance -> shell.
	for _, p := range shell.Ports {
		instPort := inst.Name + "." + p.Name

		if p.Direction == m.DirIn {
			shell.Connects = append(shell.Connects, m.Connect{Dst: instPort, Src: p.Name})
		} else {
			shell.Connects = append(shell.Connects, m.Connect{Dst: p.Name, Src: instPort})
		}
	}

	return splitResult{Shell: shell, Wrapper: wrapper, WrapperInst: inst}
}
