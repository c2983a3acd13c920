package cmd

import (
	"fmt"
	"os"

	"github.com/geange/gnfa"
	"github.com/geange/gnfa/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	prune bool
	order []string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a GNFA to a regular expression",
	Long: `Convert a GNFA to a regular expression. Without --input the automaton is read
interactively from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []gnfa.Option{
			gnfa.WithLogger(logger),
			gnfa.WithEliminationOrder(order...),
			gnfa.WithPruning(environment.Prune),
		}
		if cmd.Flags().Changed("prune") {
			opts = append(opts, gnfa.WithPruning(prune))
		}

		if inputFile == "" {
			_, err := shell.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), logger, opts...).Run()
			return err
		}

		g, err := loadGNFA(inputFile, opts...)
		if err != nil {
			return err
		}
		label, err := g.ConvertToRegex()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Regular Expression: "+label.String())
		return err
	},
}

func loadGNFA(path string, opts ...gnfa.Option) (*gnfa.GNFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	def, err := gnfa.LoadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded definition", zap.String("file", path),
		zap.Int("states", len(def.States)), zap.Int("transitions", len(def.Transitions)))
	return def.Build(opts...)
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "GNFA definition file (yaml)")
	convertCmd.Flags().BoolVar(&prune, "prune", false, "drop useless states before elimination")
	convertCmd.Flags().StringSliceVar(&order, "order", nil, "states to eliminate first, in order")
}
