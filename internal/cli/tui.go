package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Plan viewer styles
var (
	planPageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2)
	planCurrentStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(0, 2)
	planPhotoStyle = lipgloss.NewStyle().Foreground(colorWhite)
	planSlotStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PlanModel - Interactive page assignment viewer
// =============================================================================

// PlanModel is the bubbletea model for browsing a page assignment.
type PlanModel struct {
	Title    string
	Plan     [][]int
	Capacity int
	Cursor   int
	quitting bool
}

// NewPlanModel creates a viewer over the given page assignment.
func NewPlanModel(title string, plan [][]int, capacity int) PlanModel {
	return PlanModel{
		Title:    title,
		Plan:     plan,
		Capacity: capacity,
	}
}

func (m PlanModel) Init() tea.Cmd {
	return nil
}

func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l":
			if m.Cursor < len(m.Plan)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Plan) - 1
		}
	}
	return m, nil
}

func (m PlanModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Page plan · %s", m.Title)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d pages, capacity %d", len(m.Plan), m.Capacity)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	// Show a sliding window of three pages around the cursor.
	start := m.Cursor - 1
	if start < 0 {
		start = 0
	}
	end := start + 3
	if end > len(m.Plan) {
		end = len(m.Plan)
		if start = end - 3; start < 0 {
			start = 0
		}
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := planPageStyle
		if i == m.Cursor {
			style = planCurrentStyle
		}
		cards = append(cards, style.Render(m.pageCard(i)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	return b.String()
}

// pageCard renders the content of a single page, with empty slots dimmed.
func (m PlanModel) pageCard(i int) string {
	var b strings.Builder
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("page %d", i+1)))
	b.WriteString("\n")

	for _, id := range m.Plan[i] {
		b.WriteString(planPhotoStyle.Render(fmt.Sprintf("photo %d", id)))
		b.WriteString("\n")
	}
	for j := len(m.Plan[i]); j < m.Capacity; j++ {
		b.WriteString(planSlotStyle.Render("empty"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
