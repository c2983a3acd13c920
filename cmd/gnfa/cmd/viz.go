package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geange/gnfa"
	"github.com/geange/gnfa/graphviz"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	reduced   bool
)

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Create a graphviz figure from a GNFA",
	Long: `Create a graphviz figure from a GNFA definition file. With --reduced the figure
shows the automaton after every intermediate state has been eliminated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("format") {
			environment.Format = format
		}
		if cmd.Flags().Changed("output") {
			environment.OutputDir = outputDir
		}

		g, err := loadGNFA(inputFile, gnfa.WithLogger(logger))
		if err != nil {
			return err
		}
		if reduced {
			if _, err := g.ConvertToRegex(); err != nil {
				return err
			}
		}

		name := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
		cfg := &graphviz.Config{
			Name:    name,
			Font:    graphviz.Helvetica,
			RankDir: graphviz.LeftToRight,
			Format:  graphviz.Format(environment.Format),
		}
		if err := os.MkdirAll(environment.OutputDir, os.ModePerm); err != nil {
			return err
		}
		outPath := filepath.Join(environment.OutputDir, name+"."+environment.Format)
		df, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = df.Close()
		}()
		if err := graphviz.New(cfg).Flush(df, g); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
		return err
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&inputFile, "input", "i", "", "GNFA definition file (yaml)")
	vizCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	vizCmd.Flags().StringVarP(&format, "format", "f", "svg", "output format (dot, svg, png, jpg)")
	vizCmd.Flags().BoolVar(&reduced, "reduced", false, "render after elimination")
	_ = vizCmd.MarkFlagRequired("input")
}
