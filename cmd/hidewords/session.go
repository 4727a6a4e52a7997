package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/hidewords/internal/console"
)

func newSessionCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactively hide text, then reveal text (the default)",
		Long: `Prompts for text in which the words to hide are wrapped in (( )).
Each segment is replaced by its invisible encoding, the markers are removed
and the result is copied to the clipboard.

It then prompts for text to reveal and prints it with every hidden run
decoded in place.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runSession(cmd, v) },
	}
	addSessionFlags(cmd)
	return cmd
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("clipboard", true, "copy the hidden result to the clipboard")
	addCommonFlags(cmd)
}

func runSession(cmd *cobra.Command, v *viper.Viper) error {
	s := &console.Session{
		Prompter: console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Printer:  console.NewPrinter(cmd.OutOrStdout(), console.ParseColorMode(v.GetString("color"))),
	}
	if v.GetBool("clipboard") {
		b := newClipboard()
		defer b.Close()
		s.Clipboard = b
	}
	return s.Run()
}
