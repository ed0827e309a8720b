package potcar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	name, err := Resolve("Pt", 1)
	require.NoError(t, err)
	assert.Equal(t, "Pt", name)

	name, err = Resolve("Li", 1)
	require.NoError(t, err)
	assert.Equal(t, "Li_sv", name)

	name, err = Resolve("Li", 6)
	require.NoError(t, err)
	assert.Equal(t, "Li", name)

	name, err = Resolve("H", 4)
	require.NoError(t, err)
	assert.Equal(t, "H_h_GW", name)

	//"host" flavors for the majority species of a single-atom alloy
	name, err = Resolve("Cuhost", 7)
	require.NoError(t, err)
	assert.Equal(t, "Cu", name)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("Xx", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Xx")

	_, err = Resolve("Pt", 0)
	require.Error(t, err)
	_, err = Resolve("Pt", 8)
	require.Error(t, err)

	//catalog gap: no GW flavor ships for Pr
	_, err = Resolve("Pr", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pr")
	assert.Contains(t, err.Error(), "setting 3")
}

func TestCatalogRowsComplete(t *testing.T) {
	//setting 1 and 6 must resolve for every cataloged element
	for _, el := range Elements() {
		_, err := Resolve(el, 1)
		assert.NoError(t, err, el)
		_, err = Resolve(el, 6)
		assert.NoError(t, err, el)
	}
}

//writeLibrary lays out a fake PAW library: one directory per potential
//name, each holding a POTCAR block (gzipped for the names in gz).
func writeLibrary(t *testing.T, blocks map[string]string, gz map[string]bool) string {
	t.Helper()
	lib := t.TempDir()
	for name, content := range blocks {
		dir := filepath.Join(lib, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		if gz[name] {
			f, err := os.Create(filepath.Join(dir, "POTCAR.gz"))
			require.NoError(t, err)
			w := gzip.NewWriter(f)
			_, err = w.Write([]byte(content))
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.NoError(t, f.Close())
		} else {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "POTCAR"), []byte(content), 0644))
		}
	}
	return lib
}

func writeStructure(t *testing.T, dir, symbols, counts string) string {
	t.Helper()
	text := "alloy\n1.0\n5 0 0\n0 5 0\n0 0 5\n " + symbols + "\n " + counts + "\nDirect\n"
	for i := 0; i < len(strings.Fields(counts)); i++ {
		text += " 0 0 0\n"
	}
	name := filepath.Join(dir, "POSCAR")
	require.NoError(t, os.WriteFile(name, []byte(text), 0644))
	return name
}

func TestAssembleOrder(t *testing.T) {
	lib := writeLibrary(t, map[string]string{
		"Pt": "PAW_PBE Pt\nblock\n",
		"Cu": "PAW_PBE Cu\nblock\n",
	}, nil)
	dir := t.TempDir()
	structure := writeStructure(t, dir, "Pt Cu", "12 1")
	out := filepath.Join(dir, "POTCAR")

	names, err := Assemble(Options{Structure: structure, Library: lib, Setting: 1, Output: out})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pt", "Cu"}, names)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	//Pt block first, Cu block immediately after: output order matches header order
	assert.Equal(t, "PAW_PBE Pt\nblock\nPAW_PBE Cu\nblock\n", string(content))
}

func TestAssembleGzipFallback(t *testing.T) {
	lib := writeLibrary(t, map[string]string{
		"Pt": "PAW_PBE Pt\nblock\n",
		"Cu": "PAW_PBE Cu\nblock\n",
	}, map[string]bool{"Cu": true})
	dir := t.TempDir()
	structure := writeStructure(t, dir, "Pt Cu", "12 1")
	out := filepath.Join(dir, "POTCAR")

	_, err := Assemble(Options{Structure: structure, Library: lib, Setting: 1, Output: out})
	require.NoError(t, err)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	//gz blocks decompress to the same assembled bytes
	assert.Equal(t, "PAW_PBE Pt\nblock\nPAW_PBE Cu\nblock\n", string(content))
}

func TestAssembleAppendExtends(t *testing.T) {
	lib := writeLibrary(t, map[string]string{"H": "PAW_PBE H\n"}, nil)
	dir := t.TempDir()
	structure := writeStructure(t, dir, "H", "1")
	out := filepath.Join(dir, "POTCAR")
	require.NoError(t, os.WriteFile(out, []byte("existing blocks\n"), 0644))

	_, err := Assemble(Options{Structure: structure, Library: lib, Setting: 1, Output: out, Append: true})
	require.NoError(t, err)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	//prior content byte-for-byte unchanged, new content after it
	assert.Equal(t, "existing blocks\nPAW_PBE H\n", string(content))
}

func TestAssembleBacksUpExisting(t *testing.T) {
	lib := writeLibrary(t, map[string]string{"H": "PAW_PBE H\n"}, nil)
	dir := t.TempDir()
	structure := writeStructure(t, dir, "H", "1")
	out := filepath.Join(dir, "POTCAR")
	require.NoError(t, os.WriteFile(out, []byte("old blocks\n"), 0644))

	_, err := Assemble(Options{Structure: structure, Library: lib, Setting: 1, Output: out})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "PAW_PBE H\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backup string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "POTCAR_old_") {
			backup = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, backup, "expected a timestamped backup")
	old, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "old blocks\n", string(old))
}

func TestAssembleMissingPotential(t *testing.T) {
	lib := writeLibrary(t, map[string]string{"Pt": "PAW_PBE Pt\n"}, nil)
	dir := t.TempDir()
	structure := writeStructure(t, dir, "Pt Cu", "12 1")
	out := filepath.Join(dir, "POTCAR")

	_, err := Assemble(Options{Structure: structure, Library: lib, Setting: 1, Output: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cu")
	//validation precedes writing: no partial POTCAR
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAssembleRejectsBadInputsBeforeIO(t *testing.T) {
	_, err := Assemble(Options{Structure: "POSCAR", Library: t.TempDir(), Setting: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting")

	_, err = Assemble(Options{Structure: "POSCAR", Library: "/no/such/dir", Setting: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "library")
}

func TestFindStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := FindStructure(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CONTCAR"), []byte("x\n"), 0644))
	name, err := FindStructure(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CONTCAR"), name)

	//POSCAR wins over CONTCAR
	require.NoError(t, os.WriteFile(filepath.Join(dir, "POSCAR"), []byte("x\n"), 0644))
	name, err = FindStructure(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "POSCAR"), name)
}
