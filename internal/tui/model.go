package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/service"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Model is the terminal review screen. All session state lives in the
// DrillService; the model only keeps the last snapshot for rendering.
type Model struct {
	drill    *service.DrillService
	snap     service.Snapshot
	quitting bool
}

var _ tea.Model = Model{}

func New(drill *service.DrillService) Model {
	return Model{drill: drill, snap: drill.Snapshot()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.snap = m.drill.Restart()
	default:
		m.snap, _ = m.drill.Key(key.String())
	}
	return m, nil
}

// Snapshot returns the session as last rendered.
func (m Model) Snapshot() service.Snapshot {
	return m.snap
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("recall"))
	b.WriteString("\n\n")

	switch m.snap.Phase {
	case review.AwaitingContent:
		b.WriteString(m.snap.Message)
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Add questions with `recall save FILE`, then run review again."))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("q quit"))

	case review.Completed:
		b.WriteString(doneStyle.Render("All cards mastered!"))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d reviews, %d cards mastered",
			m.snap.Stats.CardsReviewed, m.snap.Stats.TotalMastered)))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("r restart • q quit"))

	default:
		m.renderCard(&b)
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(b *strings.Builder) {
	card := m.snap.Current
	b.WriteString(statusStyle.Render(fmt.Sprintf("reviewed %d • mastered %d/%d • %s",
		m.snap.Stats.CardsReviewed, m.snap.Stats.TotalMastered, m.snap.Total, card.Status)))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(card.Question))
	b.WriteString("\n\n")

	if m.snap.Mode == review.ModeQuestion {
		b.WriteString(hintStyle.Render("space show answer • r restart • q quit"))
		return
	}

	answer := card.Answer
	if answer == "" {
		answer = "(no answer)"
	}
	b.WriteString(answerStyle.Render(answer))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("1 again • 2 hard • 3 good • 4 easy"))
}

// Run starts the interactive review on the terminal.
func Run(drill *service.DrillService, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(drill), opts...).Run()
	return err
}
