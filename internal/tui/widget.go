// Package tui hosts the auth and content widgets in a Bubble Tea program.
//
// Widgets own their state and never talk to each other. The App routes key
// presses to the active widget only and fans every other message out to all
// widgets so async results reach their owner whichever tab is showing.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Widget is a self-contained tab.
type Widget interface {
	ID() string
	Title() string
	Scope() string
	// Init runs mount effects. It is safe to call more than once.
	Init() tea.Cmd
	HandleKey(keys *KeyRegistry, msg tea.KeyMsg) (bool, tea.Cmd)
	Update(msg tea.Msg) tea.Cmd
	// SetSize reports the body area the next View call will get.
	SetSize(width, height int)
	View(width, height int) string
	Unmount()
}
