package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/seaviz/seaviz/pkg/pipeline"
	"github.com/seaviz/seaviz/pkg/topology"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// hostListModel is the bubbletea model for interactive host selection.
// Space toggles a host, enter confirms the selection, and enter with nothing
// toggled selects the host under the cursor.
type hostListModel struct {
	Topos    []topology.Topology
	Cursor   int
	Checked  map[int]bool
	Chosen   []string
	Height   int
	Offset   int
	aborted  bool
	finished bool
}

// newHostListModel creates a host list model over the parsed topologies.
func newHostListModel(topos []topology.Topology) hostListModel {
	return hostListModel{
		Topos:   topos,
		Checked: make(map[int]bool),
		Height:  15,
	}
}

func (m hostListModel) Init() tea.Cmd {
	return nil
}

func (m hostListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Topos)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Topos {
				m.Checked[i] = true
			}
		case "enter":
			if len(m.checkedIndexes()) == 0 {
				m.Checked[m.Cursor] = true
			}
			for _, i := range m.checkedIndexes() {
				m.Chosen = append(m.Chosen, m.Topos[i].Hostname)
			}
			m.finished = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m hostListModel) checkedIndexes() []int {
	var out []int
	for i := range m.Topos {
		if m.Checked[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m hostListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Hosts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Topos) {
		end = len(m.Topos)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		topo := m.Topos[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := " "
		if m.Checked[i] {
			check = iconSuccess
		}

		seas := make([]string, 0, len(topo.Sections))
		for _, sec := range topo.Sections {
			if sec.Name != "" {
				seas = append(seas, sec.Name)
			}
		}
		seaStr := "—"
		if len(seas) > 0 {
			seaStr = strings.Join(seas, ", ")
		}

		rows = append(rows, []string{
			cursor,
			check,
			topo.Hostname,
			fmt.Sprintf("%d", len(topo.Sections)),
			fmt.Sprintf("%d", topo.AdapterCount()),
			seaStr,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Host", "SEAs", "Adapters", "SEA names").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if m.Checked[actualIdx] {
				return StyleSuccess
			}
			if col >= 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Topos))))

	return b.String()
}

// pickHosts parses the inputs and lets the user pick hosts interactively.
// It returns the selected hostnames, or nil when the picker was aborted.
func pickHosts(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) ([]string, error) {
	// Parse without the host filter so every host shows up in the picker.
	parseOpts := opts
	parseOpts.Hosts = nil
	topos, err := runner.Parse(ctx, parseOpts)
	if err != nil {
		return nil, err
	}

	model := newHostListModel(topos)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("host picker: %w", err)
	}

	m, ok := final.(hostListModel)
	if !ok || m.aborted || !m.finished {
		return nil, nil
	}
	return m.Chosen, nil
}
