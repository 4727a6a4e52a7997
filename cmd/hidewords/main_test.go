package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.klb.dev/hidewords/internal/clip"
	"go.klb.dev/hidewords/internal/codec"
)

// useClipboard swaps the system clipboard for m for the duration of the test.
func useClipboard(t *testing.T, m *clip.Memory) {
	t.Helper()
	prev := newClipboard
	newClipboard = func() clip.Backend { return m }
	t.Cleanup(func() { newClipboard = prev })
}

func runCmd(t *testing.T, in io.Reader, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))

	enc, _, err := runCmd(t, nil, "encode", "hello", "world")
	require.NoError(t, err)
	require.Equal(t, codec.Encode("hello world")+"\n", enc)

	dec, _, err := runCmd(t, strings.NewReader(enc), "decode")
	require.NoError(t, err)
	require.Equal(t, "hello world\n", dec)
}

func TestDecodeKeepOrigin(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))
	in := "AB" + codec.Encode("x") + "CD"

	out, _, err := runCmd(t, strings.NewReader(in), "decode", "--keep-origin")
	require.NoError(t, err)
	require.Equal(t, "ABxCD\n", out)

	out, _, err = runCmd(t, strings.NewReader(in), "decode")
	require.NoError(t, err)
	require.Equal(t, "x\n", out)
}

func TestDecodeFromClipboard(t *testing.T) {
	board := clip.NewMemory("note: " + codec.Encode("psst"))
	useClipboard(t, board)

	out, _, err := runCmd(t, nil, "decode", "--from-clipboard", "--keep-origin")
	require.NoError(t, err)
	require.Equal(t, "note: psst\n", out)
}

func TestHideCopiesToClipboard(t *testing.T) {
	board := clip.NewMemory("")
	useClipboard(t, board)

	out, _, err := runCmd(t, strings.NewReader("hello ((secret)) world\n"), "hide")
	require.NoError(t, err)

	want := "hello " + codec.Encode("secret") + " world"
	require.Equal(t, want+"\n", out)
	require.Equal(t, want, board.Text())
}

func TestHideClipboardFailureStillPrints(t *testing.T) {
	board := clip.NewMemory("")
	board.FailWith(errors.New("locked"))
	useClipboard(t, board)

	out, _, err := runCmd(t, nil, "hide", "((x))")
	require.NoError(t, err)
	require.Equal(t, codec.Encode("x")+"\n", out)
	require.Equal(t, 0, board.Writes())
}

func TestAuto(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))

	enc, _, err := runCmd(t, nil, "auto", "abc")
	require.NoError(t, err)
	require.Equal(t, codec.Encode("abc")+"\n", enc)

	dec, _, err := runCmd(t, strings.NewReader(enc), "auto")
	require.NoError(t, err)
	require.Equal(t, "abc\n", dec)

	out, _, err := runCmd(t, nil, "auto", "--mode", "dec_keep_origin", "a"+codec.Encode("b")+"c")
	require.NoError(t, err)
	require.Equal(t, "abc\n", out)
}

func TestAutoInvalidMode(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))

	out, errOut, err := runCmd(t, nil, "auto", "--mode", "rot13", "abc")
	require.ErrorIs(t, err, codec.ErrInvalidMode)
	require.Empty(t, out)
	require.Contains(t, errOut, "invalid mode")
}

func TestStats(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))

	_, errOut, err := runCmd(t, nil, "hide", "--clipboard=false", "--stats", "a ((b))")
	require.NoError(t, err)
	require.Contains(t, errOut, "visible=2 symbols=8 runs=1 truncated=0 hidden_bytes=1")
}

func TestSession(t *testing.T) {
	board := clip.NewMemory("")
	useClipboard(t, board)
	in := strings.NewReader("say ((hi))\n" + "x" + codec.Encode("yz") + "\n")

	out, _, err := runCmd(t, in)
	require.NoError(t, err)
	require.Equal(t, "say "+codec.Encode("hi"), board.Text())
	require.Contains(t, out, "Revealed: \"xyz\"")
}

func TestConfigFile(t *testing.T) {
	useClipboard(t, clip.NewMemory(""))
	cfg := filepath.Join(t.TempDir(), "hidewords.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("keep-origin = true\n"), 0o600))

	out, _, err := runCmd(t, strings.NewReader("A"+codec.Encode("b")), "decode", "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "Ab\n", out)
}

func TestEnvOverride(t *testing.T) {
	board := clip.NewMemory("")
	useClipboard(t, board)
	t.Setenv("HIDEWORDS_CLIPBOARD", "false")

	_, _, err := runCmd(t, nil, "hide", "((x))")
	require.NoError(t, err)
	require.Equal(t, 0, board.Writes())
}

func TestVersion(t *testing.T) {
	out, _, err := runCmd(t, nil, "version")
	require.NoError(t, err)
	require.Equal(t, "hidewords dev\n", out)
}
