package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskwidgets/internal/session"
)

const (
	signInPrompt = "Please sign in to continue."
	loginButton  = "[ Login ]"
	logoutButton = "[ Logout ]"
)

// AuthWidget is the mock sign-in toggle.
type AuthWidget struct {
	user  string
	state session.State
}

// NewAuthWidget mounts a signed-out widget that logs in as user.
func NewAuthWidget(user string) *AuthWidget {
	if strings.TrimSpace(user) == "" {
		user = session.PlaceholderUser
	}
	return &AuthWidget{user: user, state: session.Initial()}
}

func (w *AuthWidget) ID() string    { return "auth" }
func (w *AuthWidget) Title() string { return "Auth" }
func (w *AuthWidget) Scope() string { return scopeAuth }

func (w *AuthWidget) Init() tea.Cmd { return nil }

// State returns the current session.
func (w *AuthWidget) State() session.State { return w.state }

func (w *AuthWidget) Login() tea.Cmd {
	w.state = session.LoginAs(w.user)
	return statusCmd("Signed in as " + w.state.DisplayName())
}

func (w *AuthWidget) Logout() tea.Cmd {
	w.state = session.Logout(w.state)
	return statusCmd("Signed out")
}

func (w *AuthWidget) HandleKey(keys *KeyRegistry, msg tea.KeyMsg) (bool, tea.Cmd) {
	scope := w.Scope()
	switch {
	case keys.IsAction(msg, actionActivate, scope):
		if w.state.IsAuthenticated {
			return true, w.Logout()
		}
		return true, w.Login()
	case keys.IsAction(msg, actionLogin, scope):
		return true, w.Login()
	case keys.IsAction(msg, actionLogout, scope):
		return true, w.Logout()
	}
	return false, nil
}

func (w *AuthWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *AuthWidget) SetSize(int, int) {}

func (w *AuthWidget) View(width, height int) string {
	var lines []string
	if w.state.IsAuthenticated {
		lines = []string{
			welcomeStyle.Render("Welcome, " + w.state.DisplayName() + "!"),
			"",
			buttonStyle.Render(logoutButton),
		}
	} else {
		lines = []string{
			promptStyle.Render(signInPrompt),
			"",
			buttonStyle.Render(loginButton),
		}
	}
	return clipLines(lines, width, height)
}

func (w *AuthWidget) Unmount() {
	w.state = session.Initial()
}
