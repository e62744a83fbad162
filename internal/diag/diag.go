// Package diag is the diagnostic sink: failures that are logged for
// developers and never shown to the user.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sink receives recovered failures.
type Sink interface {
	Report(ctx context.Context, component string, err error)
}

// SlogSink writes reports as structured log records.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Report(ctx context.Context, component string, err error) {
	if err == nil {
		return
	}
	s.logger.ErrorContext(ctx, "recovered failure", "component", component, "err", err)
}

// Open points the process log at path through tea.LogToFile, since the
// alt-screen owns stdout and stderr while the program runs.
func Open(path string) (*SlogSink, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "jaskwidgets")
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSlogSink(logger), f, nil
}

// Report is one recorded failure.
type Report struct {
	Component string
	Err       error
}

// Recorder keeps reports in memory.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func (r *Recorder) Report(_ context.Context, component string, err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Component: component, Err: err})
}

// Reports returns a copy of everything recorded so far.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}
