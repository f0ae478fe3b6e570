// Package openmodules assembles the openmodules command-line
// interface.
package openmodules

import (
	"fmt"

	"github.com/Alb-O/openmodules/internal/version"
	"github.com/Alb-O/openmodules/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "openmodules",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&root, "root", "", MsgFlagRoot)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newListCmd(&root))
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newMatchCmd(&root))
	rootCmd.AddCommand(newDocsCmd(&root))
	rootCmd.AddCommand(newIndexCmd(&root))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
