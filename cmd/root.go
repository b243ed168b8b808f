package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/add"
	"github.com/hchk/hchk/cmd/del"
	"github.com/hchk/hchk/cmd/ls"
	"github.com/hchk/hchk/cmd/pause"
	"github.com/hchk/hchk/cmd/ping"
	"github.com/hchk/hchk/cmd/setkey"
	"github.com/hchk/hchk/cmd/version"
	"github.com/hchk/hchk/pkg/logger"
)

// NewRootCmd assembles the hchk command tree.
func NewRootCmd() *cobra.Command {
	log := logger.NewDefault()

	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "hchk",
		Short: "A healthchecks.io command line client",
		Long:  `hchk manages healthchecks.io checks: list, add, pause, ping and delete them from the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel("debug")
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "be verbose")

	rootCmd.AddCommand(ls.NewLsCmd(log))
	rootCmd.AddCommand(add.NewAddCmd(log))
	rootCmd.AddCommand(pause.NewPauseCmd(log))
	rootCmd.AddCommand(ping.NewPingCmd(log))
	rootCmd.AddCommand(del.NewDelCmd(log))
	rootCmd.AddCommand(setkey.NewSetkeyCmd(log))
	rootCmd.AddCommand(version.NewVersionCmd())
	return rootCmd
}
