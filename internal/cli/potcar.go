package cli

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/saa-lab/vasptools/internal/cli/config"
	"github.com/saa-lab/vasptools/internal/potcar"
)

//potcarOptions holds the flags of the potcar command.
type potcarOptions struct {
	Structure    string
	Output       string
	Append       bool
	ListSettings bool
}

func newPotcarCommand() *cobra.Command {
	opts := &potcarOptions{}

	cmd := &cobra.Command{
		Use:   "potcar",
		Short: "Assemble a POTCAR from a PAW potential library",
		Long: `Assemble a POTCAR by concatenating one PAW pseudopotential block per
element of the structure file's header, in header order (VASP requires the
POTCAR block order to match the POSCAR element order).

The potential flavor is chosen by --setting:
  1  VASP recommendation
  2  hard potentials (VASP recommendation where not available)
  3  VASP recommendation for GW/RPA
  4  hard GW/RPA potentials
  5  Materials Project recommendation
  6  minimum-electron potentials
  7  max(VASP recommendation, Materials Project recommendation)

An existing POTCAR is backed up with a timestamp suffix unless --append is
given, in which case the new blocks are concatenated onto it.`,
		Example: `  # VASP-recommended potentials for ./POSCAR (or ./CONTCAR)
  vasptools potcar --library /opt/vasp/potpaw_PBE

  # hard potentials, appended to the existing POTCAR
  vasptools potcar --setting 2 --append`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ListSettings {
				return listSettings(cmd)
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runPotcar(opts, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.Structure, "structure", "", "structure file (default: ./POSCAR, then ./CONTCAR)")
	cmd.Flags().IntP("setting", "s", config.DefaultPawSetting, "PAW setting (1-7)")
	cmd.Flags().StringP("library", "l", config.DefaultPawLibrary, "PAW potential library directory")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "POTCAR", "output file")
	cmd.Flags().BoolVar(&opts.Append, "append", false, "append to the existing output instead of backing it up")
	cmd.Flags().BoolVar(&opts.ListSettings, "list-settings", false, "print the PAW setting catalog and exit")

	return cmd
}

func runPotcar(opts *potcarOptions, cfg *config.Config) error {
	names, err := potcar.Assemble(potcar.Options{
		Structure: opts.Structure,
		Library:   cfg.PawLibrary,
		Setting:   cfg.PawSetting,
		Output:    opts.Output,
		Append:    opts.Append,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d potential blocks\n", opts.Output, len(names))
	return nil
}

//listSettings renders the PAW catalog: the seven selection policies and
//the potential each element resolves to under each of them.
func listSettings(cmd *cobra.Command) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Setting", "Policy"})
	for i, desc := range potcar.SettingDescriptions {
		t.AppendRow(table.Row{i + 1, desc})
	}
	t.Render()

	t = table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	header := table.Row{"Element"}
	for i := 1; i <= potcar.NSettings; i++ {
		header = append(header, i)
	}
	t.AppendHeader(header)
	elements := potcar.Elements()
	sort.Strings(elements)
	for _, el := range elements {
		row, _ := potcar.Row(el)
		r := table.Row{el}
		for _, name := range row {
			if name == "" {
				name = "-"
			}
			r = append(r, name)
		}
		t.AppendRow(r)
	}
	t.Render()
	return nil
}
