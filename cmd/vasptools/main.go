//Command vasptools manipulates VASP structural and pseudopotential input
//files: cluster generation for many-body expansions, POTCAR assembly and
//adsorbate placement.
package main

import (
	"fmt"
	"os"

	"github.com/saa-lab/vasptools/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
