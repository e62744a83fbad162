package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionQuit       = "quit"
	actionNextTab    = "next-tab"
	actionSwitchTab1 = "switch-tab-1"
	actionSwitchTab2 = "switch-tab-2"
	actionActivate   = "activate"
	actionLogin      = "login"
	actionLogout     = "logout"
	actionScrollDown = "scroll-down"
	actionScrollUp   = "scroll-up"
)

const (
	scopeAuth  = "widget:auth"
	scopePosts = "widget:posts"
)

// KeyBinding is a bubbles key binding tagged with the action it triggers
// and the scopes it is live in. An empty scope list matches everywhere.
type KeyBinding struct {
	key.Binding
	Action string
	Scopes []string
}

func bind(action, desc string, scopes []string, keys ...string) KeyBinding {
	keys = normalizeKeys(keys)
	label := ""
	if len(keys) > 0 {
		label = keyLabel(keys[0])
	}
	return KeyBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc)),
		Action:  action,
		Scopes:  scopes,
	}
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Enabled() && scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && slices.Contains(b.Keys(), pressed) {
			return true
		}
	}
	return false
}

// normalizeKey maps a key name to the form msg.String() reports. The space
// key reports " ", so it is resolved before trimming.
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.ToLower(strings.TrimSpace(k))
	if k == "space" {
		return " "
	}
	return k
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func scopeMatch(scope string, scopes []string) bool {
	return len(scopes) == 0 || slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}

func DefaultKeyBindings() []KeyBinding {
	all := []string{"*"}
	return []KeyBinding{
		bind(actionQuit, "quit", all, "q", "ctrl+c"),
		bind(actionNextTab, "next tab", all, "tab"),
		bind(actionSwitchTab1, "auth", all, "1"),
		bind(actionSwitchTab2, "posts", all, "2"),
		bind(actionActivate, "press button", []string{scopeAuth}, "enter", "space"),
		bind(actionLogin, "login", []string{scopeAuth}, "l"),
		bind(actionLogout, "logout", []string{scopeAuth}, "o"),
		bind(actionScrollDown, "scroll down", []string{scopePosts}, "j", "down"),
		bind(actionScrollUp, "scroll up", []string{scopePosts}, "k", "up"),
	}
}

// ApplyActionKeybindings rebinds every action named in actionKeys, keeping
// its help text and scopes. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		if keys := normalizeKeys(actionKeys[b.Action]); len(keys) > 0 {
			b = bind(b.Action, b.Help().Desc, slices.Clone(b.Scopes), keys...)
		}
		out = append(out, b)
	}
	return out
}
