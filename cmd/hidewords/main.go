// hidewords: hide text inside text with zero-width characters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/hidewords/internal/clip"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

// newClipboard opens the system clipboard. Tests replace it.
var newClipboard = clip.New

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "hidewords",
		Short: "Hide text inside text with invisible characters",
		Long: `hidewords encodes text as a run of zero-width characters (U+200B for 0,
U+200C for 1, eight per UTF-8 byte) that can be pasted anywhere plain text
goes, and recovers it again.

Run without a sub-command for an interactive session: wrap the words to hide
in (( )), the result is copied to the clipboard, then paste something back to
reveal it.

Config file search order (first found wins):
  /etc/hidewords/hidewords.toml
  $HOME/.config/hidewords/hidewords.toml
  path supplied via --config

All flags can be set via HIDEWORDS_<FLAG> env vars or config-file keys.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runSession(cmd, v) },
	}
	addSessionFlags(root)

	root.AddCommand(
		newSessionCmd(),
		newHideCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newAutoCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hidewords %s\n", Version)
		},
	}
}
