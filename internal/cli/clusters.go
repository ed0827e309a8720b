package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saa-lab/vasptools/internal/cluster"
	"github.com/saa-lab/vasptools/internal/vasp"
)

//clustersOptions holds the flags of the clusters command.
type clustersOptions struct {
	Structure string
	Monomers  string
	Order     int
	OutputDir string
}

func newClustersCommand() *cobra.Command {
	opts := &clustersOptions{}

	cmd := &cobra.Command{
		Use:   "clusters [structure-file [monomers-file]]",
		Short: "Generate many-body expansion cluster files",
		Long: `Generate one POSCAR per monomer combination of a many-body expansion.

The monomers file lists one monomer per line as comma-separated 1-based atom
indices into the parent structure. Atoms claimed by no monomer become one
implicit final monomer. With --order 0 (the default) every monomer and every
pair is written, the classic two-body input set; with --order k exactly the
C(n,k) size-k combinations are written.`,
		Example: `  # all monomers and pairs from ./CONTCAR and ./monomers
  vasptools clusters

  # all three-body clusters
  vasptools clusters --order 3 CONTCAR monomers`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Structure = args[0]
			}
			if len(args) > 1 {
				opts.Monomers = args[1]
			}
			return runClusters(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Structure, "structure", "CONTCAR", "parent structure file")
	cmd.Flags().StringVar(&opts.Monomers, "monomers", "monomers", "monomer definition file")
	cmd.Flags().IntVarP(&opts.Order, "order", "k", 0, "body order; 0 writes all monomers and all pairs")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", ".", "directory for the generated files")

	return cmd
}

func runClusters(opts *clustersOptions) error {
	parent, err := vasp.Read(opts.Structure)
	if err != nil {
		return err
	}
	monomers, err := cluster.ReadMonomers(opts.Monomers, parent.NAtoms())
	if err != nil {
		return err
	}
	logger.Info("generating clusters",
		zap.String("structure", opts.Structure),
		zap.Int("monomers", len(monomers)),
		zap.Int("order", opts.Order))
	names, err := cluster.Generate(parent, monomers, opts.Order, opts.OutputDir)
	if err != nil {
		return err
	}
	for _, name := range names {
		logger.Info("wrote cluster file", zap.String("file", name))
	}
	logger.Info("done", zap.Int("files", len(names)))
	return nil
}
