// SPDX-License-Identifier: MIT

// Package molio reads and writes molecule files.
//
// The format is chosen from the file extension: .toml, .yaml or .yml. A
// trailing .gz or .zst (.zstd) compresses the file, e.g. "benzene.toml.zst".
package molio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/dstoeckel/ball/molgraph"
)

// Format is a molecule serialisation.
type Format uint8

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

// String returns the canonical extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Compression wraps a file body.
type Compression uint8

const (
	None Compression = iota
	Gzip
	Zstd
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an extension that names no supported format.
	ErrUnknownFormat = errors.New("molio: unknown molecule format")

	// ErrEmptyMolecule indicates a file that decodes to no atoms.
	ErrEmptyMolecule = errors.New("molio: molecule has no atoms")
)

// Detect returns the format and compression implied by path.
func Detect(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := None
	switch ext := filepath.Ext(name); ext {
	case ".gz":
		comp = Gzip
		name = strings.TrimSuffix(name, ext)
	case ".zst", ".zstd":
		comp = Zstd
		name = strings.TrimSuffix(name, ext)
	}
	switch filepath.Ext(name) {
	case ".toml":
		return FormatTOML, comp, nil
	case ".yaml", ".yml":
		return FormatYAML, comp, nil
	}

	return 0, comp, fmt.Errorf("Detect(%q): %w", path, ErrUnknownFormat)
}

// Load reads one molecule from path. A molecule without a name is named
// after the file.
func Load(path string) (*molgraph.Molecule, error) {
	f, c, err := Detect(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer file.Close()

	r, closeFn, err := decompress(bufio.NewReader(file), c)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	defer closeFn()

	m, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.SplitN(filepath.Base(path), ".", 2)[0]
	}

	return m, nil
}

// Save writes m to path in the format and compression implied by the name.
func Save(path string, m *molgraph.Molecule) (err error) {
	f, c, err := Detect(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save(%q): %w", path, cerr)
		}
	}()

	w, closeFn, err := compress(file, c)
	if err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	if err := Encode(w, m, f); err != nil {
		_ = closeFn()
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}

	return nil
}

// Decode parses one molecule and validates its structure.
func Decode(r io.Reader, f Format) (*molgraph.Molecule, error) {
	var m molgraph.Molecule
	switch f {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("Decode(toml): %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode(yaml): %w", err)
		}
	default:
		return nil, fmt.Errorf("Decode(%s): %w", f, ErrUnknownFormat)
	}
	if len(m.Atoms) == 0 {
		return nil, fmt.Errorf("Decode(%s): %w", f, ErrEmptyMolecule)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}

	return &m, nil
}

// Encode writes m in format f.
func Encode(w io.Writer, m *molgraph.Molecule, f Format) error {
	switch f {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return fmt.Errorf("Encode(toml): %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("Encode(yaml): %w", err)
		}
		return enc.Close()
	}

	return fmt.Errorf("Encode(%s): %w", f, ErrUnknownFormat)
}

func decompress(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	}

	return r, func() {}, nil
}

func compress(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case Gzip:
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	}

	return w, func() error { return nil }, nil
}
