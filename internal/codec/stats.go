package codec

import "log/slog"

// RunStats describes the invisible content of a string.
type RunStats struct {
	Visible   int // runes that are not symbols
	Symbols   int
	Runs      int // maximal contiguous symbol sequences
	Truncated int // runs whose length is not a multiple of 8
}

// Stats scans text once and counts visible runes, symbols and encoded runs.
func Stats(text string) RunStats {
	var (
		s      RunStats
		runLen int
	)
	endRun := func() {
		if runLen == 0 {
			return
		}
		s.Runs++
		if runLen%8 != 0 {
			s.Truncated++
		}
		runLen = 0
	}
	for _, r := range text {
		if r == SymbolZero || r == SymbolOne {
			s.Symbols++
			runLen++
			continue
		}
		endRun()
		s.Visible++
	}
	endRun()
	return s
}

// HiddenBytes is the number of whole payload bytes carried by the symbols.
func (s RunStats) HiddenBytes() int { return s.Symbols / 8 }

// LogValue implements slog.LogValuer.
func (s RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("visible", s.Visible),
		slog.Int("symbols", s.Symbols),
		slog.Int("runs", s.Runs),
		slog.Int("truncated", s.Truncated),
	)
}
