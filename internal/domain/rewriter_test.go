package domain

import (
	"reflect"
	"testing"

	m "github.com/mouse-blink/hierwrap/internal/model"
	"go.uber.org/zap"
)

// rewriteTestCircuit runs split + rewrite over the shared fixture and returns
// everything the assertions need.
func rewriteTestCircuit(t *testing.T) (*m.Circuit, splitResult, map[string]*m.HierPath, rewriteStats) {
	t.Helper()

	c := newTestCircuit()
	circuitNS := NewCircuitNamespace(c)
	split := splitDUT(c, c.Module("DUT"), circuitNS, "Wrapper", false)

	table := NewPathTable(c)
	renames, stats := rewritePaths(c, table, split, circuitNS, zap.NewNop())

	return c, split, renames, stats
}

func locators(locs ...m.Locator) []m.Locator { return locs }

func TestRewritePaths(t *testing.T) {
	c, split, renames, stats := rewriteTestCircuit(t)
	instSym := split.WrapperInst.Symbol

	cases := []struct {
		name   string
		symbol string
		want   []m.Locator
	}{
		{
			name:   "root case rewrites the first locator to the wrapper",
			symbol: "nla_root",
			want: locators(
				m.Locator{Module: "Wrapper", Name: "foo"},
				m.Locator{Module: "Foo"},
			),
		},
		{
			name:   "port leaf is untouched",
			symbol: "nla_port",
			want: locators(
				m.Locator{Module: "Top", Name: "dut"},
				m.Locator{Module: "DUT", Name: "a_sym"},
			),
		},
		{
			name:   "shared module leaf is extended after cloning",
			symbol: "nla_module",
			want: locators(
				m.Locator{Module: "Top", Name: "dut"},
				m.Locator{Module: "DUT", Name: instSym},
				m.Locator{Module: "Wrapper"},
			),
		},
		{
			name:   "component leaf gains the wrapper level",
			symbol: "nla_comp",
			want: locators(
				m.Locator{Module: "Top", Name: "dut"},
				m.Locator{Module: "DUT", Name: instSym},
				m.Locator{Module: "Wrapper", Name: "w"},
			),
		},
		{
			name:   "pass-through path gains the wrapper level",
			symbol: "nla_through",
			want: locators(
				m.Locator{Module: "Top", Name: "dut"},
				m.Locator{Module: "DUT", Name: instSym},
				m.Locator{Module: "Wrapper", Name: "foo"},
				m.Locator{Module: "Foo"},
			),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := c.Path(tc.symbol)
			if p == nil {
				t.Fatalf("path %q missing after rewrite", tc.symbol)
			}

			if !reflect.DeepEqual(p.Namepath, tc.want) {
				t.Errorf("path %q namepath = %v, want %v", tc.symbol, p.Namepath, tc.want)
			}
		})
	}

	t.Run("shared module leaf was cloned with the original route", func(t *testing.T) {
		clone, ok := renames["nla_module"]
		if !ok {
			t.Fatal("no clone recorded for nla_module")
		}

		if clone.Symbol == "nla_module" {
			t.Error("clone must have a fresh symbol")
		}

		want := locators(
			m.Locator{Module: "Top", Name: "dut"},
			m.Locator{Module: "DUT"},
		)
		if !reflect.DeepEqual(clone.Namepath, want) {
			t.Errorf("clone namepath = %v, want %v", clone.Namepath, want)
		}

		if c.Path(clone.Symbol) == nil {
			t.Error("clone not registered in the circuit's path list")
		}
	})

	t.Run("edit counts", func(t *testing.T) {
		// nla_root, nla_module, nla_comp, nla_through; nla_port untouched.
		if stats.Rewritten != 4 {
			t.Errorf("rewritten = %d, want 4", stats.Rewritten)
		}

		if stats.Cloned != 1 {
			t.Errorf("cloned = %d, want 1", stats.Cloned)
		}
	})
}

func TestAddHierarchyKeepsPrefixAndSuffix(t *testing.T) {
	p := &m.HierPath{Symbol: "nla", Namepath: locators(
		m.Locator{Module: "Root", Name: "mid"},
		m.Locator{Module: "Mid", Name: "dut"},
		m.Locator{Module: "DUT", Name: "foo"},
		m.Locator{Module: "Foo", Name: "bar"},
		m.Locator{Module: "Bar"},
	)}

	addHierarchy(p, "DUT", "Wrapper", "wrapper_sym")

	want := locators(
		m.Locator{Module: "Root", Name: "mid"},
		m.Locator{Module: "Mid", Name: "dut"},
		m.Locator{Module: "DUT", Name: "wrapper_sym"},
		m.Locator{Module: "Wrapper", Name: "foo"},
		m.Locator{Module: "Foo", Name: "bar"},
		m.Locator{Module: "Bar"},
	)
	if !reflect.DeepEqual(p.Namepath, want) {
		t.Errorf("namepath = %v, want %v", p.Namepath, want)
	}
}
