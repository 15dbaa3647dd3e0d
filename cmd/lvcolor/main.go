// Command lvcolor builds a well-known graph topology and reports the greedy
// coloring computed by the graph package.
//
//	lvcolor cycle 5                  # odd cycle → 3 colors
//	lvcolor grid 4 6 --format table
//	lvcolor random 30 0.2 --seed 7 --max-colors 8
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("lvcolor version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("lvcolor version %s-dev", version)
}

// options carries resolved settings shared by every subcommand.
type options struct {
	maxColors   int
	maxVertices int
	format      string
	configPath  string
	verbose     bool

	out io.Writer
	log *logrus.Logger
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree writing reports to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.WarnLevel)

	opts := &options{out: out, log: log}

	root := &cobra.Command{
		Use:     "lvcolor",
		Short:   "lvcolor — greedy graph coloring over fixture topologies",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return resolveConfig(cmd, opts)
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().IntVar(&opts.maxColors, "max-colors", defaultMaxColors, "Color palette size (env: LVCOLOR_MAX_COLORS)")
	root.PersistentFlags().IntVar(&opts.maxVertices, "max-vertices", 0, "Vertex capacity; 0 sizes the graph to the fixture")
	root.PersistentFlags().StringVar(&opts.format, "format", defaultFormat, "Output format: json|table|quiet (env: LVCOLOR_FORMAT)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default ~/.lvcolor/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Debug logging to stderr")

	for _, cmd := range newFixtureCmds(opts) {
		root.AddCommand(cmd)
	}

	return root
}
