package domain

import (
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// newTestCircuit builds the design used across the transform tests:
//
//	Top ─ instantiates ─ DUT (marked) ─ instantiates ─ Foo
//
// with one hierarchical path per rewrite class: rooted at the DUT, ending at
// a DUT port, ending at the DUT module (shared with DUT metadata), ending at
// an interior component, and passing through the DUT.
func newTestCircuit() *m.Circuit {
	return &m.Circuit{
		Name: "Top",
		Modules: []*m.Module{
			{
				Name:   "Top",
				Public: true,
				Ports: []m.Port{
					{Name: "a", Direction: m.DirIn},
					{Name: "b", Direction: m.DirOut},
				},
				Instances: []*m.Instance{
					{Name: "dut", Symbol: "dut", Module: "DUT"},
				},
				Connects: []m.Connect{
					{Dst: "dut.a", Src: "a"},
					{Dst: "b", Src: "dut.b"},
				},
			},
			{
				Name:   "DUT",
				Public: true,
				Ports: []m.Port{
					{Name: "a", Direction: m.DirIn, Symbol: "a_sym"},
					{Name: "b", Direction: m.DirOut, Annotations: []m.Annotation{
						{"class": "test.PortAnno"},
					}},
				},
				Instances: []*m.Instance{
					{Name: "foo", Symbol: "foo", Module: "Foo"},
				},
				Components: []*m.Component{
					{Name: "w", Symbol: "w", Kind: m.KindWire},
					{Name: "p", Kind: m.KindProbe, Ref: &m.LocalRef{Module: "DUT", Target: "w"}},
				},
				Connects: []m.Connect{
					{Dst: "foo.x", Src: "a"},
					{Dst: "b", Src: "foo.y"},
				},
				Annotations: []m.Annotation{
					{"class": m.MarkDUTClass},
					{"class": "test.ModuleAnno", m.NonlocalKey: "nla_module"},
				},
			},
			{
				Name: "Foo",
				Ports: []m.Port{
					{Name: "x", Direction: m.DirIn},
					{Name: "y", Direction: m.DirOut},
				},
				Connects: []m.Connect{
					{Dst: "y", Src: "x"},
				},
			},
		},
		Paths: []*m.HierPath{
			{Symbol: "nla_root", Namepath: []m.Locator{
				{Module: "DUT", Name: "foo"}, {Module: "Foo"},
			}},
			{Symbol: "nla_port", Namepath: []m.Locator{
				{Module: "Top", Name: "dut"}, {Module: "DUT", Name: "a_sym"},
			}},
			{Symbol: "nla_module", Namepath: []m.Locator{
				{Module: "Top", Name: "dut"}, {Module: "DUT"},
			}},
			{Symbol: "nla_comp", Namepath: []m.Locator{
				{Module: "Top", Name: "dut"}, {Module: "DUT", Name: "w"},
			}},
			{Symbol: "nla_through", Namepath: []m.Locator{
				{Module: "Top", Name: "dut"}, {Module: "DUT", Name: "foo"}, {Module: "Foo"},
			}},
		},
		Annotations: []m.Annotation{
			{"class": m.InjectHierarchyClass, "name": "Wrapper"},
		},
	}
}
