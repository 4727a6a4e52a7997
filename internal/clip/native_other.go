//go:build !darwin && !windows && !linux

package clip

import "fmt"

func newNative() (Backend, error) {
	return nil, fmt.Errorf("no native clipboard on this platform: %w", ErrUnavailable)
}
