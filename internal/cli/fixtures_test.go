// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstoeckel/ball/internal/molio"
	"github.com/dstoeckel/ball/molgraph"
)

// chain returns a linear molecule of single-bonded atoms with the given elements.
func chain(name string, elems ...molgraph.Element) *molgraph.Molecule {
	m := &molgraph.Molecule{Name: name}
	for i, e := range elems {
		m.Atoms = append(m.Atoms, molgraph.Atom{Name: fmt.Sprintf("%s%d", e, i+1), Element: e})
		if i > 0 {
			m.Bonds = append(m.Bonds, molgraph.Bond{A: m.Atoms[i-1].Name, B: m.Atoms[i].Name, Order: molgraph.Single})
		}
	}

	return m
}

// lattice returns an r×c grid of carbons.
func lattice(r, c int) *molgraph.Molecule {
	m := &molgraph.Molecule{Name: fmt.Sprintf("grid%dx%d", r, c)}
	name := func(i, j int) string { return fmt.Sprintf("C%d_%d", i, j) }
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Atoms = append(m.Atoms, molgraph.Atom{Name: name(i, j), Element: "C"})
			if j > 0 {
				m.Bonds = append(m.Bonds, molgraph.Bond{A: name(i, j-1), B: name(i, j), Order: molgraph.Single})
			}
			if i > 0 {
				m.Bonds = append(m.Bonds, molgraph.Bond{A: name(i-1, j), B: name(i, j), Order: molgraph.Single})
			}
		}
	}

	return m
}

// save writes m under dir and returns its path.
func save(t *testing.T, dir, file string, m *molgraph.Molecule) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, molio.Save(path, m))

	return path
}

// isolateConfig points the default config location at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}
