package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskwidgets/internal/content"
	"github.com/jask/jaskwidgets/internal/diag"
)

func staticProvider(records ...content.Record) content.Provider {
	return content.ProviderFunc(func(context.Context) ([]content.Record, error) {
		return records, nil
	})
}

// mount runs Init and feeds the fetch result back, as the program loop would.
func mount(t *testing.T, w *PostsWidget) tea.Cmd {
	t.Helper()
	cmd := w.Init()
	require.NotNil(t, cmd, "first Init should start the fetch")
	return w.Update(cmd())
}

func TestPostsLoadingBeforeFetchCompletes(t *testing.T) {
	w := NewPostsWidget(context.Background(), staticProvider(), nil)
	view := plainView(w)
	require.Contains(t, view, postsHeading)
	require.Contains(t, view, loadingMessage)
	require.Empty(t, w.Items())
}

func TestPostsRendersFetchedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"userId":1,"id":1,"title":"A","body":"B"}]`))
	}))
	t.Cleanup(srv.Close)

	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), content.NewHTTPProvider(srv.URL, srv.Client(), 0), rec)
	status := mount(t, w)

	require.Equal(t, []ListItem{{Key: 1, Heading: "A", Text: "B"}}, w.Items())
	view := plainView(w)
	require.NotContains(t, view, loadingMessage)
	require.Contains(t, view, "\nA\n")
	require.Contains(t, view, "  B")
	require.Empty(t, rec.Reports())
	require.Equal(t, statusMsg{Text: "Loaded 1 posts"}, status())
}

func TestPostsNon2xxStaysLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), content.NewHTTPProvider(srv.URL, srv.Client(), 0), rec)
	require.Nil(t, mount(t, w), "failures are not surfaced to the user")

	require.Empty(t, w.Items())
	require.Contains(t, plainView(w), loadingMessage)

	reports := rec.Reports()
	require.Len(t, reports, 1)
	require.Equal(t, "posts", reports[0].Component)
	require.ErrorIs(t, reports[0].Err, content.ErrFetch)
}

func TestPostsDecodeFailureStaysLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)

	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), content.NewHTTPProvider(srv.URL, srv.Client(), 0), rec)
	mount(t, w)

	require.True(t, w.State().Loading())
	require.Len(t, rec.Reports(), 1)
	require.ErrorIs(t, rec.Reports()[0].Err, content.ErrDecode)
}

func TestPostsFetchesOncePerMount(t *testing.T) {
	calls := 0
	provider := content.ProviderFunc(func(context.Context) ([]content.Record, error) {
		calls++
		return []content.Record{{ID: 1, Title: "A", Body: "B"}}, nil
	})
	w := NewPostsWidget(context.Background(), provider, nil)
	mount(t, w)
	require.Nil(t, w.Init())
	require.Nil(t, w.Init())
	require.Equal(t, 1, calls)
}

func TestPostsDropsResultAfterUnmount(t *testing.T) {
	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), staticProvider(content.Record{ID: 1, Title: "A"}), rec)
	cmd := w.Init()
	require.NotNil(t, cmd)

	w.Unmount()
	require.Nil(t, w.Update(cmd()))
	require.True(t, w.State().Loading())
	require.Empty(t, rec.Reports())
}

func TestPostsIgnoresForeignMountResults(t *testing.T) {
	a := NewPostsWidget(context.Background(), staticProvider(content.Record{ID: 1, Title: "A"}), nil)
	b := NewPostsWidget(context.Background(), staticProvider(content.Record{ID: 2, Title: "B"}), nil)
	msg := a.Init()()

	require.Nil(t, b.Update(msg))
	require.True(t, b.State().Loading())
	a.Update(msg)
	require.Equal(t, []int{1}, a.State().Keys())
}

func TestPostsRenderIsIdempotent(t *testing.T) {
	records := []content.Record{
		{OwnerID: 1, ID: 5, Title: "five", Body: "b5"},
		{OwnerID: 1, ID: 2, Title: "two", Body: "b2"},
		{OwnerID: 2, ID: 9, Title: "nine", Body: "line one\nline two"},
	}
	w := NewPostsWidget(context.Background(), staticProvider(records...), nil)
	mount(t, w)

	first, firstItems := w.View(80, 40), w.Items()
	second, secondItems := w.View(80, 40), w.Items()
	require.Equal(t, first, second)
	require.Equal(t, firstItems, secondItems)
	require.Equal(t, []int{5, 2, 9}, w.State().Keys())

	view := ansi.Strip(first)
	require.Less(t, strings.Index(view, "five"), strings.Index(view, "two"))
	require.Less(t, strings.Index(view, "two"), strings.Index(view, "nine"))
	require.Contains(t, view, "  line two")
}

func TestPostsScrollClampsToContent(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	records := make([]content.Record, 0, 10)
	for i := 1; i <= 10; i++ {
		records = append(records, content.Record{ID: i, Title: "title", Body: "body"})
	}
	w := NewPostsWidget(context.Background(), staticProvider(records...), nil)
	mount(t, w)
	w.SetSize(40, 8)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 100; i++ {
		handled, _ := w.HandleKey(keys, down)
		require.True(t, handled)
	}
	require.Equal(t, 30-6, w.offset)
	view := ansi.Strip(w.View(40, 8))
	require.Contains(t, view, postsHeading)
	require.Len(t, strings.Split(view, "\n"), 8)

	handled, _ := w.HandleKey(keys, tea.KeyMsg{Type: tea.KeyUp})
	require.True(t, handled)
	require.Equal(t, 30-7, w.offset)
	require.Equal(t, 10, w.State().Len(), "scrolling never changes state")

	w.SetSize(40, 40)
	require.Zero(t, w.offset, "growing the body pulls the scroll back")
}

func TestPostsViewDoesNotMoveScroll(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	records := make([]content.Record, 0, 10)
	for i := 1; i <= 10; i++ {
		records = append(records, content.Record{ID: i, Title: "title", Body: "body"})
	}
	w := NewPostsWidget(context.Background(), staticProvider(records...), nil)
	mount(t, w)
	w.SetSize(40, 8)
	for i := 0; i < 5; i++ {
		w.HandleKey(keys, tea.KeyMsg{Type: tea.KeyDown})
	}

	first := w.View(40, 40)
	require.Equal(t, 5, w.offset)
	require.Equal(t, first, w.View(40, 40))
	require.Equal(t, 5, w.offset)
}

func TestPostsTrailingDataStaysLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"userId":1,"id":1,"title":"A","body":"B"}] <html>oops`))
	}))
	t.Cleanup(srv.Close)

	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), content.NewHTTPProvider(srv.URL, srv.Client(), 0), rec)
	require.Nil(t, mount(t, w))

	require.Empty(t, w.Items())
	require.True(t, w.State().Loading())
	require.Contains(t, plainView(w), loadingMessage)
	require.Len(t, rec.Reports(), 1)
	require.ErrorIs(t, rec.Reports()[0].Err, content.ErrDecode)
}

func TestPostsEmptyArrayStaysLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	rec := &diag.Recorder{}
	w := NewPostsWidget(context.Background(), content.NewHTTPProvider(srv.URL, srv.Client(), 0), rec)
	mount(t, w)

	require.Empty(t, w.Items())
	require.Contains(t, plainView(w), loadingMessage)
	require.Empty(t, rec.Reports(), "an empty list is not a failure")
}
