package clip

import "sync"

// Memory is a Backend that keeps the clipboard in process memory.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	fail   error
}

// NewMemory returns a Memory backend holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// FailWith makes every subsequent WriteText return err. Pass nil to reset.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	m.fail = err
	m.mu.Unlock()
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) ReadText() (string, error) { return m.Text(), nil }

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.text = text
	m.writes++
	return nil
}

func (m *Memory) Close() {}

var _ Backend = (*Memory)(nil)
