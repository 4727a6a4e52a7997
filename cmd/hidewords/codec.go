package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/hidewords/internal/clip"
	"go.klb.dev/hidewords/internal/codec"
	"go.klb.dev/hidewords/internal/console"
	"go.klb.dev/hidewords/internal/scanner"
)

// codecCmd builds the shared skeleton of hide/encode/decode/auto: input from
// args or stdin, result on stdout, optional clipboard copy and stats.
func codecCmd(use, short, long string, copyDefault bool, run func(*cobra.Command, *viper.Viper, []string) error) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     use + " [text...]",
		Short:   short,
		Long:    long,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, args []string) error { return run(cmd, v, args) },
	}
	f := cmd.Flags()
	f.Bool("clipboard", copyDefault, "copy the result to the clipboard")
	f.Bool("stats", false, "print a summary of the hidden content to stderr")
	addCommonFlags(cmd)
	return cmd
}

func newHideCmd() *cobra.Command {
	cmd := codecCmd("hide",
		"Hide every ((...)) segment of the input",
		`Replaces each ((segment)) in the input with its invisible encoding and
removes the markers. The rest of the text is left as it is.

  hidewords hide 'meet at ((the old bridge)) tomorrow'`,
		true,
		func(cmd *cobra.Command, v *viper.Viper, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res := scanner.Scan(text)
			slog.Debug("text scanned", "segments", len(res.Segments))
			return emit(cmd, v, res.Output)
		})
	return cmd
}

func newEncodeCmd() *cobra.Command {
	cmd := codecCmd("encode",
		"Encode the whole input as invisible characters",
		`Encodes the input as one run of invisible characters, eight per UTF-8 byte.`,
		false,
		func(cmd *cobra.Command, v *viper.Viper, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return emit(cmd, v, codec.Encode(text))
		})
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := codecCmd("decode",
		"Reveal text hidden in the input",
		`Decodes every invisible run in the input.

By default visible characters are dropped and only the hidden payload is
printed. With --keep-origin each run is decoded in place and the visible text
around it is kept.

With --from-clipboard the input is read from the clipboard instead of args or
stdin.`,
		false,
		runDecode)
	cmd.Flags().Bool("keep-origin", false, "keep visible characters and decode runs in place")
	cmd.Flags().Bool("from-clipboard", false, "read the input from the clipboard")
	return cmd
}

func runDecode(cmd *cobra.Command, v *viper.Viper, args []string) error {
	var (
		text string
		err  error
	)
	if v.GetBool("from-clipboard") {
		b := newClipboard()
		defer b.Close()
		text, err = clip.Read(b)
	} else {
		text, err = readInput(cmd, args)
	}
	if err != nil {
		return err
	}
	return emit(cmd, v, codec.Decode(text, v.GetBool("keep-origin")))
}

func newAutoCmd() *cobra.Command {
	cmd := codecCmd("auto",
		"Encode or decode depending on the input",
		`Decodes the input if it contains any invisible character, and encodes it
otherwise. Text that is meant to be decoded but carries no invisible
characters is encoded, and text that already carries them can never be
encoded here; use encode or decode when the direction matters.

--mode selects the direction explicitly: auto, enc, dec or dec_keep_origin.`,
		false,
		func(cmd *cobra.Command, v *viper.Viper, args []string) error {
			mode, err := codec.ParseMode(v.GetString("mode"))
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := codec.Process(text, mode)
			if err != nil {
				return err
			}
			return emit(cmd, v, out)
		})
	cmd.Flags().String("mode", string(codec.ModeAuto), "auto|enc|dec|dec_keep_origin")
	return cmd
}

// emit writes out to stdout, optionally copies it and prints stats.
func emit(cmd *cobra.Command, v *viper.Viper, out string) error {
	st := codec.Stats(out)
	slog.Debug("result", "stats", st)

	if v.GetBool("stats") {
		console.NewPrinter(cmd.ErrOrStderr(), console.ParseColorMode(v.GetString("color"))).Stats(st)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if v.GetBool("clipboard") {
		b := newClipboard()
		defer b.Close()
		if err := clip.Write(b, out); err != nil {
			slog.Warn("clipboard write failed, result printed only", "err", err)
		}
	}
	return nil
}
