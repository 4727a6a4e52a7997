package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"go.klb.dev/hidewords/internal/logging"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for one line of text.
type Prompter interface {
	Prompt(label string) (string, error)
}

// NewPrompter returns a promptui prompter when in and out are both
// terminals, and a LinePrompter otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	fin, inOK := in.(*os.File)
	fout, outOK := out.(*os.File)
	if inOK && outOK && logging.IsTTYFile(fin) && logging.IsTTYFile(fout) {
		return &TTYPrompter{in: fin, out: fout}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads newline terminated answers from any reader.
type LinePrompter struct {
	br  *bufio.Reader
	out io.Writer
}

// NewLinePrompter wraps in. The label is written to out before each read.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{br: bufio.NewReader(in), out: out}
}

// Prompt returns the next line without its terminator. A final line without
// a newline is returned as is; io.EOF is returned only when nothing was read.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.out, label)
	}
	line, err := p.br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TTYPrompter prompts through promptui.
type TTYPrompter struct {
	in  *os.File
	out *os.File
}

func (p *TTYPrompter) Prompt(label string) (string, error) {
	pr := promptui.Prompt{
		Label:  strings.TrimRight(label, ": "),
		Stdin:  p.in,
		Stdout: p.out,
	}
	s, err := pr.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt):
		return "", ErrAborted
	case errors.Is(err, promptui.ErrEOF):
		return "", io.EOF
	case err != nil:
		return "", fmt.Errorf("prompt: %w", err)
	}
	return s, nil
}
