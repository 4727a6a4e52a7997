package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.klb.dev/hidewords/internal/clip"
	"go.klb.dev/hidewords/internal/codec"
	"go.klb.dev/hidewords/internal/scanner"
)

// Session is one interactive round: hide some text, then reveal some text.
type Session struct {
	Prompter Prompter
	Printer  *Printer
	// Clipboard receives the hidden result. Nil disables copying.
	Clipboard clip.Backend
}

// Run prompts for text containing ((...)) segments, hides them, copies the
// result, then prompts for text to reveal and prints it with the visible
// characters kept in place.
func (s *Session) Run() error {
	s.Printer.Hint()
	text, err := s.Prompter.Prompt(": ")
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}

	res := scanner.Scan(text)
	slog.Debug("text scanned", "segments", len(res.Segments), "stats", codec.Stats(res.Output))
	if len(res.Segments) == 0 {
		s.Printer.Warn("no (( )) segment found, nothing was hidden")
	}

	copied := false
	if s.Clipboard != nil {
		if err := clip.Write(s.Clipboard, res.Output); err != nil {
			slog.Warn("clipboard write failed", "err", err)
			s.Printer.Warn("could not copy to clipboard: %v", err)
		} else {
			copied = true
		}
	}
	s.Printer.Hidden(res.Output, copied)

	hidden, err := s.Prompter.Prompt("Text to reveal: ")
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read hidden text: %w", err)
	}
	s.Printer.Revealed(codec.Decode(hidden, true))
	return nil
}
