package clip

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// commandBackend shells out to the platform clipboard helper. It covers
// Wayland sessions and CGO_ENABLED=0 builds where the native backend cannot
// initialise.
type commandBackend struct{}

func newCommand() (Backend, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("no clipboard helper found on %s: %w", runtime.GOOS, ErrUnavailable)
	}
	return commandBackend{}, nil
}

func (commandBackend) Name() string                { return "clipboard helper" }
func (commandBackend) ReadText() (string, error)   { return clipboard.ReadAll() }
func (commandBackend) WriteText(text string) error { return clipboard.WriteAll(text) }
func (commandBackend) Close()                      {}
