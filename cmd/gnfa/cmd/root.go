package cmd

import (
	"os"

	"github.com/geange/gnfa/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile string
	verbose   bool

	environment *env.Environment
	logger      = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gnfa",
	Short: "gnfa converts generalized NFAs to regular expressions",
	Long: `gnfa converts a generalized nondeterministic finite automaton, whose transitions
are labeled with regular expression fragments, into one equivalent regular
expression by state elimination.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		environment, err = env.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			environment.Verbose = verbose
		}
		logger, err = environment.Logger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log elimination steps")
}
