package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// App hosts the widgets as tabs.
type App struct {
	widgets   []Widget
	activeTab int
	keys      *KeyRegistry
	status    string
	quitting  bool
	width     int
	height    int
}

func New(keys *KeyRegistry, widgets ...Widget) *App {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	a := &App{
		widgets: widgets,
		keys:    keys,
		status:  "Ready",
		width:   100,
		height:  32,
	}
	a.resize()
	return a
}

// Header, status and footer take one line each; the pane border takes two.
const chromeLines = 3

// bodySize is the area inside the active widget's pane.
func (a *App) bodySize() (int, int) {
	return max(1, a.width-4), max(0, a.height-chromeLines-2)
}

func (a *App) resize() {
	w, h := a.bodySize()
	for _, widget := range a.widgets {
		widget.SetSize(w, h)
	}
}

// Focus switches to the widget with the given ID, if any.
func (a *App) Focus(id string) {
	for i, w := range a.widgets {
		if w.ID() == id {
			a.activeTab = i
			return
		}
	}
}

// Active returns the widget currently receiving keys.
func (a *App) Active() Widget {
	if len(a.widgets) == 0 {
		return nil
	}
	return a.widgets[a.activeTab]
}

func (a *App) ActiveScope() string {
	if w := a.Active(); w != nil {
		return w.Scope()
	}
	return "app"
}

func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for _, w := range a.widgets {
		if cmd := w.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resize()
		return a, nil
	case statusMsg:
		a.status = m.Text
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(m)
	}
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for _, w := range a.widgets {
		if cmd := w.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := a.ActiveScope()
	switch {
	case a.keys.IsAction(msg, actionQuit, scope):
		a.quit()
		return tea.Quit
	case a.keys.IsAction(msg, actionNextTab, scope):
		if len(a.widgets) > 0 {
			a.activeTab = (a.activeTab + 1) % len(a.widgets)
		}
		return nil
	case a.keys.IsAction(msg, actionSwitchTab1, scope):
		a.switchTab(0)
		return nil
	case a.keys.IsAction(msg, actionSwitchTab2, scope):
		a.switchTab(1)
		return nil
	}
	if w := a.Active(); w != nil {
		_, cmd := w.HandleKey(a.keys, msg)
		return cmd
	}
	return nil
}

func (a *App) switchTab(index int) {
	if index < 0 || index >= len(a.widgets) {
		return
	}
	a.activeTab = index
}

// quit unmounts every widget so in-flight results are dropped.
func (a *App) quit() {
	a.quitting = true
	for _, w := range a.widgets {
		w.Unmount()
	}
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	width := max(1, a.width)
	innerW, innerH := a.bodySize()
	bodyHeight := max(0, a.height-chromeLines)

	var body string
	if w := a.Active(); w != nil && innerH > 0 {
		body = paneStyle.Width(max(1, width-2)).Height(innerH).Render(w.View(innerW, innerH))
	}
	view := strings.Join([]string{
		a.renderHeader(width),
		bar(statusBarStyle, width, a.statusLine()),
		fitHeight(body, bodyHeight),
		bar(footerStyle, width, a.footerLine()),
	}, "\n")
	view = fitHeight(view, max(1, a.height))
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func (a *App) statusLine() string {
	if msg := strings.TrimSpace(a.status); msg != "" {
		return msg
	}
	return "Ready"
}

// footerLine lists the help of every binding live in the active scope.
func (a *App) footerLine() string {
	bindings := a.keys.BindingsForScope(a.ActiveScope())
	parts := make([]string, 0, len(bindings))
	sep := footerStyle.Render("  ")
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" ")+footerDescStyle.Render(h.Desc))
	}
	if len(parts) == 0 {
		return footerDescStyle.Render("No shortcuts")
	}
	return strings.Join(parts, sep)
}

func (a *App) renderHeader(width int) string {
	tabs := make([]string, 0, len(a.widgets))
	for i, w := range a.widgets {
		label := fmt.Sprintf("%d:%s", i+1, w.Title())
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("JaskWidgets")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, width, "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < width {
		gap = width - leftW - rightW
	}
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, width, "")
	return headerBarStyle.Width(width).MaxWidth(width).Render(line)
}
