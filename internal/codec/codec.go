// Package codec hides text as runs of zero-width characters and recovers it.
//
// Each payload byte becomes eight symbols, most significant bit first:
//
//	U+200B (zero width space)     → 0
//	U+200C (zero width non-joiner) → 1
//
// There is exactly one representation; nothing else is negotiated.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	SymbolZero = '\u200B'
	SymbolOne  = '\u200C'
)

// ErrInvalidMode is returned by Process and ParseMode for an unknown mode.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects the direction of Process.
type Mode string

const (
	ModeAuto           Mode = "auto"
	ModeEncode         Mode = "enc"
	ModeDecode         Mode = "dec"
	ModeDecodeKeepOrig Mode = "dec_keep_origin"
)

// ParseMode converts a user supplied string to a Mode. Both the short names
// and the long spellings (encode, decode, decode-keep-origin) are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ModeAuto, nil
	case "enc", "encode":
		return ModeEncode, nil
	case "dec", "decode":
		return ModeDecode, nil
	case "dec_keep_origin", "decode-keep-origin", "decode_keep_origin":
		return ModeDecodeKeepOrig, nil
	default:
		return "", fmt.Errorf("%w %q: choose auto, enc, dec or dec_keep_origin", ErrInvalidMode, s)
	}
}

// Valid reports whether m is one of the recognised modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeEncode, ModeDecode, ModeDecodeKeepOrig:
		return true
	}
	return false
}

// Process runs text through the codec in the given mode. An unknown mode
// fails before any work is done.
func Process(text string, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w %q", ErrInvalidMode, string(mode))
	}
	switch mode {
	case ModeEncode:
		return Encode(text), nil
	case ModeDecode:
		return Decode(text, false), nil
	case ModeDecodeKeepOrig:
		return Decode(text, true), nil
	}
	return Auto(text), nil
}

// Encode returns payload as a run of invisible symbols, eight per UTF-8 byte.
func Encode(payload string) string {
	var b strings.Builder
	// Both symbols are three bytes in UTF-8.
	b.Grow(len(payload) * 8 * 3)
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		for bit := 7; bit >= 0; bit-- {
			if c&(1<<bit) != 0 {
				b.WriteRune(SymbolOne)
			} else {
				b.WriteRune(SymbolZero)
			}
		}
	}
	return b.String()
}

// Decode recovers hidden payloads from text.
//
// With keepOrigin false every visible rune is discarded and the result is
// the concatenated payload of all invisible symbols. With keepOrigin true each
// run is decoded in place and visible runes are kept where they were.
//
// Decoding never fails: a trailing group shorter than eight bits is dropped
// and invalid UTF-8 is elided.
func Decode(text string, keepOrigin bool) string {
	var (
		out  strings.Builder
		bits bitBuffer
	)
	for _, r := range text {
		switch r {
		case SymbolZero:
			bits.push(0)
		case SymbolOne:
			bits.push(1)
		default:
			if !keepOrigin {
				continue
			}
			out.WriteString(bits.flush())
			out.WriteRune(r)
		}
	}
	out.WriteString(bits.flush())
	return out.String()
}

// Auto decodes text if it contains any invisible symbol and encodes it
// otherwise. Text that already carries symbols can never be re-encoded here;
// callers that need a fixed direction use Encode or Decode.
func Auto(text string) string {
	if HasHidden(text) {
		return Decode(text, false)
	}
	return Encode(text)
}

// HasHidden reports whether text contains either invisible symbol.
func HasHidden(text string) bool {
	return strings.ContainsRune(text, SymbolZero) || strings.ContainsRune(text, SymbolOne)
}

// bitBuffer accumulates bits into bytes, MSB first.
type bitBuffer struct {
	bytes []byte
	cur   byte
	n     int // bits in cur
}

func (b *bitBuffer) push(bit byte) {
	b.cur = b.cur<<1 | bit
	b.n++
	if b.n == 8 {
		b.bytes = append(b.bytes, b.cur)
		b.cur, b.n = 0, 0
	}
}

// flush returns the buffered whole bytes as text and resets the buffer.
// Leftover bits are discarded.
func (b *bitBuffer) flush() string {
	if len(b.bytes) == 0 && b.n == 0 {
		return ""
	}
	s := strings.ToValidUTF8(string(b.bytes), "")
	b.bytes = b.bytes[:0]
	b.cur, b.n = 0, 0
	return s
}
