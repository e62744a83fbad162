// Package content fetches and holds the post list shown by the content widget.
package content

import (
	"context"
	"slices"
)

// Record is a post as served by the content provider.
type Record struct {
	OwnerID int    `json:"userId"`
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Provider supplies the full record list. Implementations must honour ctx.
type Provider interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]Record, error)

func (f ProviderFunc) Fetch(ctx context.Context) ([]Record, error) { return f(ctx) }

// State is the ordered record list. The zero value is empty.
type State struct {
	records []Record
}

// Empty returns the state a widget mounts with.
func Empty() State {
	return State{}
}

// Loaded replaces the list wholesale with records, in provider order.
func Loaded(_ State, records []Record) State {
	return State{records: slices.Clone(records)}
}

// Records returns a copy of the held records.
func (s State) Records() []Record {
	return slices.Clone(s.records)
}

// Len reports how many records are held.
func (s State) Len() int { return len(s.records) }

// Loading reports whether the list is still empty.
func (s State) Loading() bool { return len(s.records) == 0 }

// Keys returns record IDs in render order.
func (s State) Keys() []int {
	out := make([]int, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.ID)
	}
	return out
}
