package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/hierwrap/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReports prints the per-design transform outcomes as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Design", "Status", "Shell", "Wrapper", "Paths", "Clones"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	failed := 0

	for _, r := range reports {
		status := "ok"

		switch {
		case r.Err != nil:
			status = "failed"
			failed++
		case !r.Changed:
			status = "no changes"
		}

		table.Append([]string{
			string(r.Design),
			status,
			r.Shell,
			r.Wrapper,
			fmt.Sprintf("%d", r.PathsRewritten),
			fmt.Sprintf("%d", r.PathsCloned),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		fmt.Sprintf("Failed %d", failed),
		"", "", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, r := range reports {
		if r.Err != nil {
			s.printf("%s: %v\n", r.Design, r.Err)
		}
	}

	return nil
}

// DisplayModules prints the circuit's module list as a table.
func (s *SimpleUI) DisplayModules(c *m.Circuit) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Visibility", "Ports", "Instances"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, mod := range c.Modules {
		visibility := "private"
		if mod.Public {
			visibility = "public"
		}

		ports := make([]string, 0, len(mod.Ports))
		for _, p := range mod.Ports {
			ports = append(ports, fmt.Sprintf("%s:%s", p.Name, p.Direction))
		}

		instances := make([]string, 0, len(mod.Instances))
		for _, inst := range mod.Instances {
			instances = append(instances, fmt.Sprintf("%s:%s", inst.Name, inst.Module))
		}

		table.Append([]string{
			mod.Name,
			visibility,
			strings.Join(ports, " "),
			strings.Join(instances, " "),
		})
	}

	table.Render()
	s.printf("circuit %s\n\n%s\n", c.Name, tableBuffer.String())

	return nil
}

// DisplayPaths prints the circuit's hierarchical paths as a table.
func (s *SimpleUI) DisplayPaths(c *m.Circuit) error {
	if len(c.Paths) == 0 {
		s.printf("no hierarchical paths\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Symbol", "Namepath"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, p := range c.Paths {
		table.Append([]string{p.Symbol, FormatNamepath(p)})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayHierarchy prints the instance hierarchy as an indented tree, rooted
// at each module no other module instantiates.
func (s *SimpleUI) DisplayHierarchy(c *m.Circuit) error {
	for _, node := range hierarchyNodes(c) {
		label := node.module
		if node.instance != "" {
			label = fmt.Sprintf("%s: %s", node.instance, node.module)
		}

		s.printf("%s%s\n", strings.Repeat("  ", node.depth), label)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// FormatNamepath renders a path's locator sequence in Top::inst, Leaf form.
func FormatNamepath(p *m.HierPath) string {
	parts := make([]string, 0, len(p.Namepath))

	for _, loc := range p.Namepath {
		if loc.IsModule() {
			parts = append(parts, loc.Module)
		} else {
			parts = append(parts, fmt.Sprintf("%s::%s", loc.Module, loc.Name))
		}
	}

	return strings.Join(parts, ", ")
}
