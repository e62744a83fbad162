package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/jaskwidgets/internal/content"
)

type statusMsg struct {
	Text string
}

// postsLoadedMsg carries the single fetch result back to the mount that
// started it.
type postsLoadedMsg struct {
	Instance uuid.UUID
	Records  []content.Record
	Err      error
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{Text: text} }
}
