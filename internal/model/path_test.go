package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierPathAccessors(t *testing.T) {
	modulePath := &HierPath{Symbol: "nla_m", Namepath: []Locator{
		{Module: "Top", Name: "dut"},
		{Module: "DUT"},
	}}
	componentPath := &HierPath{Symbol: "nla_c", Namepath: []Locator{
		{Module: "Top", Name: "dut"},
		{Module: "DUT", Name: "w"},
	}}

	assert.Equal(t, "Top", modulePath.Root())
	assert.Equal(t, "DUT", modulePath.LeafModule())
	assert.False(t, modulePath.IsComponent())
	assert.Equal(t, "", modulePath.Ref())

	assert.True(t, componentPath.IsComponent())
	assert.Equal(t, "w", componentPath.Ref())
	assert.Equal(t, "DUT", componentPath.ModPart(1))
}

func TestLocatorIsModule(t *testing.T) {
	assert.True(t, Locator{Module: "M"}.IsModule())
	assert.False(t, Locator{Module: "M", Name: "s"}.IsModule())
}

func TestHierPathCloneIsIndependent(t *testing.T) {
	p := &HierPath{Symbol: "nla", Namepath: []Locator{
		{Module: "Top", Name: "dut"},
		{Module: "DUT"},
	}}

	clone := p.Clone()
	clone.Symbol = "nla_0"
	clone.Namepath[0].Module = "Other"

	assert.Equal(t, "nla", p.Symbol)
	assert.Equal(t, "Top", p.Namepath[0].Module)
	assert.Equal(t, "Other", clone.Namepath[0].Module)
}
