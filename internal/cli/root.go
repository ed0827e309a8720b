//Package cli wires the vasptools command-line interface: one binary, three
//independent operations over VASP input files.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//Version is set at build time.
var Version = "0.2.0"

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

//NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vasptools",
		Short: "vasptools - VASP input file toolkit",
		Long: `vasptools manipulates VASP structural and pseudopotential input files:
it generates monomer clusters for many-body expansion calculations, assembles
POTCAR files from a local PAW potential library, and places adsorbates onto
single-atom-alloy slabs.

Each subcommand is an independent read-transform-write pipeline; nothing is
shared between runs beyond the files themselves.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			logger, err = newLogger(verbose)
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./vasptools.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")

	rootCmd.AddCommand(newClustersCommand())
	rootCmd.AddCommand(newPotcarCommand())
	rootCmd.AddCommand(newAdsorbCommand())

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
