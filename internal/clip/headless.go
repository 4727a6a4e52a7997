package clip

// headlessBackend is used when neither the native clipboard nor a helper
// command is available (containers, CI, SSH sessions without forwarding).
type headlessBackend struct{}

func (headlessBackend) Name() string              { return "headless (no-op)" }
func (headlessBackend) ReadText() (string, error) { return "", ErrUnavailable }
func (headlessBackend) WriteText(_ string) error  { return ErrUnavailable }
func (headlessBackend) Close()                    {}
