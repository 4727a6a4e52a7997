package console

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.klb.dev/hidewords/internal/clip"
	"go.klb.dev/hidewords/internal/codec"
)

func TestLinePrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first\r\nsecond\nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := p.Prompt("> ")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := p.Prompt("> ")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "> > > > ", out.String())
}

func TestNewPrompterNonTTY(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	require.IsType(t, &LinePrompter{}, p)
}

func TestNewPrompterPipeFiles(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	// *os.File on both ends, but neither is a terminal.
	p := NewPrompter(r, w)
	require.IsType(t, &LinePrompter{}, p)

	go func() {
		_, _ = io.WriteString(w, "typed\n")
	}()
	lp := NewPrompter(r, io.Discard)
	got, err := lp.Prompt("")
	require.NoError(t, err)
	require.Equal(t, "typed", got)
}

func TestParseColorMode(t *testing.T) {
	require.Equal(t, ColorAlways, ParseColorMode("always"))
	require.Equal(t, ColorNever, ParseColorMode("off"))
	require.Equal(t, ColorAuto, ParseColorMode(""))
}

func TestPrinterPlain(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, ColorAuto)
	p.Revealed("a\tb")
	require.Equal(t, "Revealed: \"a\tb\"\n\n", out.String())
}

func TestPrinterColor(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, ColorAlways)
	p.Revealed("line one\nline two")
	s := out.String()
	require.Contains(t, s, "\x1b[")
	require.Contains(t, s, "line one")
	require.Contains(t, s, "line two")
	require.NotContains(t, s, "line two ", "short lines must not be padded")
}

func TestSession(t *testing.T) {
	secret := "AB" + codec.Encode("x") + "CD"
	in := strings.NewReader("hello ((secret)) world\n" + secret + "\n")
	var out bytes.Buffer
	board := clip.NewMemory("")

	s := &Session{
		Prompter:  NewLinePrompter(in, &out),
		Printer:   NewPrinter(&out, ColorNever),
		Clipboard: board,
	}
	require.NoError(t, s.Run())

	hidden := "hello " + codec.Encode("secret") + " world"
	require.Equal(t, hidden, board.Text())
	require.Contains(t, out.String(), "copied to your clipboard")
	require.Contains(t, out.String(), "Hidden result: \""+hidden+"\"")
	require.Contains(t, out.String(), "Revealed: \"ABxCD\"")
}

func TestSessionClipboardFailure(t *testing.T) {
	in := strings.NewReader("((x))\n")
	var out bytes.Buffer
	board := clip.NewMemory("before")
	board.FailWith(errors.New("busy"))

	s := &Session{
		Prompter:  NewLinePrompter(in, &out),
		Printer:   NewPrinter(&out, ColorNever),
		Clipboard: board,
	}
	// EOF at the reveal prompt ends the session cleanly.
	require.NoError(t, s.Run())
	require.Equal(t, "before", board.Text())
	require.Contains(t, out.String(), "could not copy to clipboard")
	require.NotContains(t, out.String(), "copied to your clipboard")
	require.Contains(t, out.String(), "Hidden result: \""+codec.Encode("x")+"\"")
}

func TestSessionNoInput(t *testing.T) {
	s := &Session{
		Prompter: NewLinePrompter(strings.NewReader(""), io.Discard),
		Printer:  NewPrinter(io.Discard, ColorNever),
	}
	require.ErrorIs(t, s.Run(), io.EOF)
}
