package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fabricgen/pkg/device"
	"github.com/matzehuels/fabricgen/pkg/fabric"
	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags fabricFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the fabric interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			chip, _, err := pipeline.Generate(opts)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewGridModel(chip), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

// Explorer styles
var (
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// GridModel - Interactive tile browser
// =============================================================================

// GridModel is the bubbletea model for browsing a chip tile by tile.
type GridModel struct {
	Chip *fabric.Chip
	X, Y int

	// nodes maps a tile coordinate to the indices of the nodes touching it.
	nodes map[[2]int][]int
	width int // widest tile type name
}

// NewGridModel creates a model with the cursor on the first non-empty tile.
func NewGridModel(chip *fabric.Chip) GridModel {
	m := GridModel{Chip: chip, nodes: make(map[[2]int][]int)}
	for i, n := range chip.Nodes {
		for _, w := range n {
			k := [2]int{w.X, w.Y}
			m.nodes[k] = append(m.nodes[k], i)
		}
	}
	g := chip.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			name := g.At(x, y)
			if name != device.TileNull {
				m.width = max(m.width, len(name))
			}
		}
	}
	m.X, m.Y = 1, 1
	return m
}

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	g := m.Chip.Grid
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Y = max(m.Y-1, 0)
	case "down", "j":
		m.Y = min(m.Y+1, g.Height()-1)
	case "left", "h":
		m.X = max(m.X-1, 0)
	case "right", "l":
		m.X = min(m.X+1, g.Width()-1)
	case "home":
		m.X, m.Y = 0, 0
	}
	return m, nil
}

func (m GridModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s %s %s", m.Chip.Name, m.Chip.Device, gridSize(m.Chip.Grid))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→/↑/↓ move  q quit"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.gridView(), "  ", panelStyle.Render(m.detail())))
	b.WriteString("\n")

	return b.String()
}

func (m GridModel) gridView() string {
	g := m.Chip.Grid
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			name := g.At(x, y)
			label := name
			if name == device.TileNull {
				label = "·"
			}
			cell := label + strings.Repeat(" ", max(m.width-len([]rune(label)), 0))
			switch {
			case x == m.X && y == m.Y:
				cell = cursorStyle.Render(cell)
			default:
				cell = tileStyle(name).Render(cell)
			}
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// detail describes the tile under the cursor.
func (m GridModel) detail() string {
	name := m.Chip.Grid.At(m.X, m.Y)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleHighlight.Render(fmt.Sprintf("X%dY%d", m.X, m.Y)), name)

	tt, ok := m.Chip.Library.Lookup(name)
	if !ok || tt.Empty() {
		b.WriteString(StyleDim.Render("empty tile"))
		return b.String()
	}
	c := tt.Counts()
	fmt.Fprintf(&b, "wires %d  pips %d  bels %d\n", c.Wires, c.Pips, c.Bels)

	idx := m.nodes[[2]int{m.X, m.Y}]
	fmt.Fprintf(&b, "nodes %d", len(idx))
	for _, i := range idx {
		members := make([]string, len(m.Chip.Nodes[i]))
		for j, w := range m.Chip.Nodes[i] {
			members[j] = w.String()
		}
		fmt.Fprintf(&b, "\n %s", StyleDim.Render(strings.Join(members, " ")))
	}
	return b.String()
}
