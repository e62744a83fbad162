// Package session holds the mock sign-in state and its transitions.
//
// There is no credential check: Login always succeeds with a placeholder
// identity and Logout always clears it. Both replace the whole State.
package session

// PlaceholderUser is the display name every login receives.
const PlaceholderUser = "user"

// State is the in-memory session. Username is set iff IsAuthenticated.
type State struct {
	IsAuthenticated bool
	Username        *string
}

// Initial is the signed-out state a widget mounts with.
func Initial() State {
	return State{}
}

// Login returns the signed-in state for the placeholder identity.
func Login(State) State {
	return LoginAs(PlaceholderUser)
}

// LoginAs returns the signed-in state for name. An empty name falls back to
// PlaceholderUser so the username invariant holds.
func LoginAs(name string) State {
	if name == "" {
		name = PlaceholderUser
	}
	return State{IsAuthenticated: true, Username: &name}
}

// Logout returns the signed-out state.
func Logout(State) State {
	return Initial()
}

// DisplayName returns the username, or "" when signed out.
func (s State) DisplayName() string {
	if s.Username == nil {
		return ""
	}
	return *s.Username
}

// Valid reports whether the username invariant holds.
func (s State) Valid() bool {
	return s.IsAuthenticated == (s.Username != nil)
}
