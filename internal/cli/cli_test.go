package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saa-lab/vasptools/internal/vasp"
)

const testSlab = `Cu slab with Pd dopant
1.0
   5.0  0.0  0.0
   0.0  5.0  0.0
   0.0  0.0 20.0
  Cu  Pd
   4   1
Cartesian
  0.0 0.0 5.0
  2.5 0.0 5.0
  0.0 2.5 5.0
  2.5 2.5 5.0
  0.0 0.0 5.0
`

const testParent = `water dimer
1.0
  10.0  0.0  0.0
   0.0 10.0  0.0
   0.0  0.0 10.0
  O  H
   2  4
Direct
  0.10 0.10 0.10
  0.50 0.50 0.50
  0.15 0.10 0.10
  0.10 0.15 0.10
  0.55 0.50 0.50
  0.50 0.55 0.50
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClustersEndToEnd(t *testing.T) {
	dir := t.TempDir()
	contcar := filepath.Join(dir, "CONTCAR")
	monomers := filepath.Join(dir, "monomers")
	require.NoError(t, os.WriteFile(contcar, []byte(testParent), 0644))
	require.NoError(t, os.WriteFile(monomers, []byte("1,3,4\n2,5,6\n"), 0644))

	_, err := execute(t, "clusters", "--structure", contcar, "--monomers", monomers, "--output-dir", dir)
	require.NoError(t, err)

	//2 monomers, full cover: 2 singles + 1 pair
	for _, base := range []string{"POSCAR_1", "POSCAR_2", "POSCAR_1_2"} {
		s, err := vasp.Read(filepath.Join(dir, base))
		require.NoError(t, err, base)
		require.NoError(t, s.Check(), base)
	}
	pair, err := vasp.Read(filepath.Join(dir, "POSCAR_1_2"))
	require.NoError(t, err)
	assert.Equal(t, 6, pair.NAtoms())
}

func TestClustersPositionalArgs(t *testing.T) {
	dir := t.TempDir()
	contcar := filepath.Join(dir, "CONTCAR")
	monomers := filepath.Join(dir, "mono")
	require.NoError(t, os.WriteFile(contcar, []byte(testParent), 0644))
	require.NoError(t, os.WriteFile(monomers, []byte("1,3,4\n"), 0644))

	_, err := execute(t, "clusters", contcar, monomers, "--output-dir", dir)
	require.NoError(t, err)
	//explicit monomer plus the implicit leftover monomer
	_, err = os.Stat(filepath.Join(dir, "POSCAR_1_2"))
	assert.NoError(t, err)
}

func TestClustersMissingStructure(t *testing.T) {
	_, err := execute(t, "clusters", "--structure", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestAdsorbEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "POSCAR")
	require.NoError(t, os.WriteFile(input, []byte(testSlab), 0644))

	_, err := execute(t, "adsorb", "--input", input, "--adsorbate", "H", "--distance", "2.0")
	require.NoError(t, err)

	out, err := vasp.Read(filepath.Join(dir, "POSCAR_H"))
	require.NoError(t, err)
	require.Equal(t, 6, out.NAtoms())
	h := out.Coords.RawRowView(5)
	assert.InDelta(t, 7.0, h[2], 1e-10)
}

func TestAdsorbBacksUpExistingTarget(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "POSCAR")
	target := filepath.Join(dir, "POSCAR_CO")
	require.NoError(t, os.WriteFile(input, []byte(testSlab), 0644))
	require.NoError(t, os.WriteFile(target, []byte("previous run\n"), 0644))

	_, err := execute(t, "adsorb", "--input", input, "--adsorbate", "co")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	backups := 0
	for _, e := range entries {
		if len(e.Name()) > len("POSCAR_CO.") && e.Name()[:len("POSCAR_CO.")] == "POSCAR_CO." {
			backups++
			old, err := os.ReadFile(filepath.Join(dir, e.Name()))
			require.NoError(t, err)
			assert.Equal(t, "previous run\n", string(old))
		}
	}
	assert.Equal(t, 1, backups)
	//the new target is a valid structure, not the old content
	s, err := vasp.Read(target)
	require.NoError(t, err)
	assert.Equal(t, 7, s.NAtoms())
}

func TestAdsorbRejectsUnknownTypeBeforeIO(t *testing.T) {
	//the input file does not exist: the adsorbate type must be rejected first
	_, err := execute(t, "adsorb", "--input", filepath.Join(t.TempDir(), "nope"), "--adsorbate", "NO2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO2")
}

func TestAdsorbRejectsUnknownDirection(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "POSCAR")
	require.NoError(t, os.WriteFile(input, []byte(testSlab), 0644))
	_, err := execute(t, "adsorb", "--input", input, "--adsorbate", "H", "--direction", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestPotcarEndToEnd(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "potpaw")
	for el, content := range map[string]string{"Cu": "PAW_PBE Cu\n", "Pd": "PAW_PBE Pd\n"} {
		require.NoError(t, os.MkdirAll(filepath.Join(lib, el), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(lib, el, "POTCAR"), []byte(content), 0644))
	}
	structure := filepath.Join(dir, "POSCAR")
	require.NoError(t, os.WriteFile(structure, []byte(testSlab), 0644))
	output := filepath.Join(dir, "POTCAR")

	_, err := execute(t, "potcar", "--structure", structure, "--library", lib, "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "PAW_PBE Cu\nPAW_PBE Pd\n", string(content))
}

func TestPotcarListSettings(t *testing.T) {
	out, err := execute(t, "potcar", "--list-settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Materials Project")
	assert.Contains(t, out, "GW/RPA")
	assert.Contains(t, out, "Pt")
}

func TestPotcarRejectsBadSetting(t *testing.T) {
	dir := t.TempDir()
	structure := filepath.Join(dir, "POSCAR")
	require.NoError(t, os.WriteFile(structure, []byte(testSlab), 0644))
	_, err := execute(t, "potcar", "--structure", structure, "--library", dir, "--setting", "9")
	require.Error(t, err)
}
