package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// retargetShellMetadata rewrites path references on the shell and its ports
// through the clone mapping produced by rewritePaths, so that shell-side
// metadata follows the cloned paths while the originals now describe the
// wrapper's instantiation context. Metadata without a matching reference is
// left untouched.
func retargetShellMetadata(shell *m.Module, renames map[string]*m.HierPath) {
	retarget := func(annos []m.Annotation) {
		for _, a := range annos {
			sym, ok := a.StringField(m.NonlocalKey)
			if !ok {
				continue
			}

			if clone, renamed := renames[sym]; renamed {
				a.SetField(m.NonlocalKey, clone.Symbol)
			}
		}
	}

	retarget(shell.Annotations)
	for _, p := range shell.Ports {
		retarget(p.Annotations)
	}
}

// relocateLocalRefs repoints probe components inside the wrapper body at the
// wrapper's new name. These references encode "the module I live in, by
// name", so after the rename they are plain local renames, never path edits.
func relocateLocalRefs(wrapper *m.Module) {
	for _, comp := range wrapper.Components {
		if comp.Kind == m.KindProbe && comp.Ref != nil {
			comp.Ref.Module = wrapper.Name
		}
	}
}
