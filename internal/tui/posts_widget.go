package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskwidgets/internal/content"
	"github.com/jask/jaskwidgets/internal/diag"
	"github.com/jask/jaskwidgets/internal/lifecycle"
)

const (
	postsHeading   = "Posts from API"
	loadingMessage = "Loading..."
)

// ListItem is one rendered entry, keyed by record ID.
type ListItem struct {
	Key     int
	Heading string
	Text    string
}

// PostsWidget fetches the post list once per mount and renders it.
type PostsWidget struct {
	ctx      context.Context
	provider content.Provider
	sink     diag.Sink
	instance *lifecycle.Instance
	state    content.State
	offset   int
	height   int
}

func NewPostsWidget(ctx context.Context, provider content.Provider, sink diag.Sink) *PostsWidget {
	if sink == nil {
		sink = diag.NewSlogSink(nil)
	}
	return &PostsWidget{
		ctx:      ctx,
		provider: provider,
		sink:     sink,
		instance: lifecycle.Mount(),
		state:    content.Empty(),
	}
}

func (w *PostsWidget) ID() string    { return "posts" }
func (w *PostsWidget) Title() string { return "Posts" }
func (w *PostsWidget) Scope() string { return scopePosts }

// Init starts the fetch on the first call of a live mount only.
func (w *PostsWidget) Init() tea.Cmd {
	if !w.instance.Once() {
		return nil
	}
	ctx, provider, id := w.ctx, w.provider, w.instance.ID()
	return func() tea.Msg {
		records, err := provider.Fetch(ctx)
		return postsLoadedMsg{Instance: id, Records: records, Err: err}
	}
}

// State returns the current list state.
func (w *PostsWidget) State() content.State { return w.state }

// Items returns the entries View renders, in order.
func (w *PostsWidget) Items() []ListItem {
	records := w.state.Records()
	out := make([]ListItem, 0, len(records))
	for _, r := range records {
		out = append(out, ListItem{Key: r.ID, Heading: r.Title, Text: r.Body})
	}
	return out
}

func (w *PostsWidget) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(postsLoadedMsg)
	if !ok || !w.instance.Accepts(m.Instance) {
		return nil
	}
	if m.Err != nil {
		w.sink.Report(w.ctx, w.ID(), m.Err)
		return nil
	}
	w.state = content.Loaded(w.state, m.Records)
	w.offset = 0
	return statusCmd(fmt.Sprintf("Loaded %d posts", w.state.Len()))
}

func (w *PostsWidget) HandleKey(keys *KeyRegistry, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case keys.IsAction(msg, actionScrollDown, w.Scope()):
		w.offset = min(w.offset+1, w.maxOffset(w.height))
		return true, nil
	case keys.IsAction(msg, actionScrollUp, w.Scope()):
		if w.offset > 0 {
			w.offset--
		}
		return true, nil
	}
	return false, nil
}

func (w *PostsWidget) SetSize(_, height int) {
	w.height = height
	w.offset = min(w.offset, w.maxOffset(height))
}

func (w *PostsWidget) View(width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	header := []string{headingStyle.Render(postsHeading), ""}
	if w.state.Loading() {
		return clipLines(append(header, bodyStyle.Render(loadingMessage)), width, height)
	}
	lines := w.listLines()
	offset := min(w.offset, w.maxOffset(height))
	return clipLines(append(header, lines[offset:]...), width, height)
}

func (w *PostsWidget) listLines() []string {
	var lines []string
	for _, item := range w.Items() {
		lines = append(lines, titleStyle.Render(item.Heading))
		for _, l := range strings.Split(item.Text, "\n") {
			lines = append(lines, bodyStyle.Render("  "+l))
		}
		lines = append(lines, "")
	}
	return lines
}

// maxOffset is the furthest scroll that still fills a body of height lines.
func (w *PostsWidget) maxOffset(height int) int {
	if w.state.Loading() {
		return 0
	}
	room := max(0, height-2)
	return max(0, len(w.listLines())-room)
}

func (w *PostsWidget) Unmount() {
	w.instance.Unmount()
}
