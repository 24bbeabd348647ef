// Package main provides the CLI entrypoint for biglittle.
//
// biglittle reads two CSV preference files, one per side of the population,
// runs the requested matching algorithm, and prints the resulting
// assignment together with whoever was left unmatched.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"biglittle/internal/config"
	"biglittle/internal/input"
	"biglittle/internal/match"
	"biglittle/internal/report"
)

var flags struct {
	configPath string
	algorithm  string
	nameColumn string
	format     string
	noColor    bool
	verbose    bool
	debug      bool
}

var rootCmd = &cobra.Command{
	Use:   "biglittle <bigs.csv> <littles.csv>",
	Short: "Match Bigs with Littles from ranked preference lists",
	Long: `biglittle computes an assignment between two populations from the ranked
preference lists each side submitted over the other.

The default algorithm ("even") first matches greedily along each Little's
own preferences, then moves Littles away from overloaded Bigs until the
load is spread as evenly as the preference structure allows. The "maximal"
algorithm stops after the greedy pass.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML options file")
	rootCmd.Flags().StringVar(&flags.algorithm, "algorithm", config.AlgorithmEven, "matching algorithm: even or maximal")
	rootCmd.Flags().StringVar(&flags.nameColumn, "name-column", config.DefaultNameColumn, "header cell that marks the name column")
	rootCmd.Flags().StringVar(&flags.format, "format", config.FormatTable, "output format: table or plain")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable styled output")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "dump the raw matching set to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	bigs, err := input.ReadFile(args[0], opts.NameColumn)
	if err != nil {
		return err
	}

	littles, err := input.ReadFile(args[1], opts.NameColumn)
	if err != nil {
		return err
	}

	names, table, diags := input.Load(bigs, littles)
	for _, w := range diags.Warnings {
		slog.Warn(w.String())
	}
	if err := diags.Error(); err != nil {
		return err
	}

	slog.Debug("input loaded",
		"bigs", names.Bigs().Len(),
		"littles", names.Littles().Len(),
		"algorithm", opts.Algorithm)

	var set *match.MatchingSet
	switch opts.Algorithm {
	case config.AlgorithmMaximal:
		set = table.MaximalMatching()
	default:
		set = table.EvenMatching()
	}

	if flags.debug {
		spew.Fdump(os.Stderr, set)
	}

	renderer := report.Renderer{Names: names, Color: !opts.NoColor}
	switch opts.Format {
	case config.FormatPlain:
		fmt.Fprint(cmd.OutOrStdout(), renderer.Plain(set))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Table(set))
	}

	return nil
}

// loadOptions merges the optional YAML options file with flags set
// explicitly on the command line; flags win.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()

	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return opts, err
		}
		opts = *loaded
	}

	if cmd.Flags().Changed("algorithm") {
		opts.Algorithm = flags.algorithm
	}
	if cmd.Flags().Changed("name-column") {
		opts.NameColumn = flags.nameColumn
	}
	if cmd.Flags().Changed("format") {
		opts.Format = flags.format
	}
	if cmd.Flags().Changed("no-color") {
		opts.NoColor = flags.noColor
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

func setupLogging() {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
