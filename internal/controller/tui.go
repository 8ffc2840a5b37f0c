package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/hierwrap/internal/model"
)

// TUI implements UI with an interactive Bubble Tea hierarchy viewer. Tabular
// output (reports, module and path lists) is delegated to the simple UI; only
// the hierarchy view is interactive.
type TUI struct {
	simple *SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	return &TUI{simple: simple, output: output}
}

// DisplayReports prints the per-design transform outcomes.
func (t *TUI) DisplayReports(reports []m.Report) error {
	return t.simple.DisplayReports(reports)
}

// DisplayModules prints the circuit's module list.
func (t *TUI) DisplayModules(c *m.Circuit) error {
	return t.simple.DisplayModules(c)
}

// DisplayPaths prints the circuit's hierarchical paths.
func (t *TUI) DisplayPaths(c *m.Circuit) error {
	return t.simple.DisplayPaths(c)
}

// DisplayHierarchy opens the interactive hierarchy viewer.
func (t *TUI) DisplayHierarchy(c *m.Circuit) error {
	model := newHierarchyModel(c)

	program := tea.NewProgram(model, tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("hierarchy viewer failed: %w", err)
	}

	return nil
}

type hierarchyItem struct {
	node hierarchyNode
}

func (i hierarchyItem) FilterValue() string {
	return i.node.module
}

// Single-line delegate rendering one hierarchy row.
type hierarchyDelegate struct{}

func (d hierarchyDelegate) Height() int  { return 1 }
func (d hierarchyDelegate) Spacing() int { return 0 }
func (d hierarchyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d hierarchyDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	hi, ok := item.(hierarchyItem)
	if !ok {
		return
	}

	node := hi.node
	isSelected := index == lm.Index()

	indent := ""
	for range node.depth {
		indent += "  "
	}

	label := node.module
	if node.instance != "" {
		label = fmt.Sprintf("%s: %s", node.instance, node.module)
	}

	var style lipgloss.Style

	switch {
	case isSelected:
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	case node.missing:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case node.public:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	suffix := ""
	if node.missing {
		suffix = "  (missing)"
	}

	_, _ = fmt.Fprint(w, indent+style.Render(label)+suffix)
}

type hierarchyModel struct {
	list list.Model
}

func newHierarchyModel(c *m.Circuit) hierarchyModel {
	nodes := hierarchyNodes(c)

	items := make([]list.Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, hierarchyItem{node: node})
	}

	lm := list.New(items, hierarchyDelegate{}, 0, 0)
	lm.Title = fmt.Sprintf("circuit %s", c.Name)
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(false)
	lm.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("14")).
		Padding(0, 1)

	return hierarchyModel{list: lm}
}

func (hm hierarchyModel) Init() tea.Cmd {
	return nil
}

func (hm hierarchyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return hm, tea.Quit
		}
	case tea.WindowSizeMsg:
		hm.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	hm.list, cmd = hm.list.Update(msg)

	return hm, cmd
}

func (hm hierarchyModel) View() string {
	return hm.list.View()
}
