// Package clip provides a unified text clipboard across platforms. New picks
// the first usable backend:
//
//	native.go    — golang.design/x/clipboard (Cocoa, Win32, X11)
//	command.go   — github.com/atotto/clipboard (xclip, xsel, wl-copy, pbcopy, clip.exe)
//	headless.go  — no display, writes fail with ErrUnavailable
//
// Memory is an in-process backend for tests and dry runs.
package clip

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Backend is the interface that all clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text, or "" if the clipboard is
	// empty or holds no text.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text. It is a single
	// transaction: the clipboard is acquired, cleared, set and released before
	// WriteText returns, and released even if setting fails.
	WriteText(text string) error

	// Close releases any resources held by the backend.
	Close()
}

// New returns the best available backend. It never returns nil.
func New() Backend {
	b, err := newNative()
	if err == nil {
		return b
	}
	slog.Debug("native clipboard unavailable", "err", err)

	b, err = newCommand()
	if err == nil {
		return b
	}
	slog.Debug("clipboard helper unavailable", "err", err)

	slog.Warn("no clipboard available, running headless")
	return headlessBackend{}
}

// Write copies text to b and logs the outcome.
func Write(b Backend, text string) error {
	if err := b.WriteText(text); err != nil {
		return fmt.Errorf("%s: %w", b.Name(), err)
	}
	slog.Debug("clipboard updated", "backend", b.Name(), "bytes", len(text))
	return nil
}

// Read returns the text held by b.
func Read(b Backend) (string, error) {
	text, err := b.ReadText()
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	slog.Debug("clipboard read", "backend", b.Name(), "bytes", len(text))
	return text, nil
}
