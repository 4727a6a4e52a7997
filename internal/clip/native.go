//go:build darwin || windows || linux

package clip

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// nativeBackend is stateless; golang.design/x/clipboard serialises access to
// the OS clipboard and opens, empties, sets and closes it inside each call.
type nativeBackend struct{}

// newNative initialises golang.design/x/clipboard. Init is deferred to here
// rather than init() so that commands which never touch the clipboard don't
// fail or warn on headless systems.
func newNative() (Backend, error) {
	initOnce.Do(func() { initErr = clipboard.Init() })
	if initErr != nil {
		return nil, initErr
	}
	return &nativeBackend{}, nil
}

func (b *nativeBackend) Name() string { return "native clipboard" }

func (b *nativeBackend) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (b *nativeBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *nativeBackend) Close() {}
