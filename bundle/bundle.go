// Package bundle persists the simulation→analysis handoff: the operator
// time series, the averaged Wilson-loop matrix, and the run metadata
// (lattice size and coupling), gob-encoded as one opaque file.
//
// The analysis stage must never trust a bundle blindly: Load re-checks
// every declared array shape against the metadata and rejects any
// inconsistency with ErrShapeMismatch, so a truncated or mismatched
// file cannot silently corrupt the spectroscopy.
package bundle

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for bundle I/O.
var (
	// ErrShapeMismatch indicates declared array shapes inconsistent with
	// the bundle metadata.
	ErrShapeMismatch = errors.New("bundle: array shapes inconsistent with metadata")
)

// Bundle is the named-array handoff between the two run phases.
type Bundle struct {
	// L is the lattice extent; the operator axis length must equal it.
	L int
	// Beta is the inverse coupling the data was generated at.
	Beta float64
	// Measurements and Operators declare the leading dimensions of Ops.
	Measurements, Operators int
	// Ops[m][k][z]: operator history, Measurements × Operators × L.
	Ops [][][]float64
	// Wilson[r][t]: averaged Wilson loops, rectangular and non-empty.
	Wilson [][]float64
}

// Validate checks the declared shapes against the stored arrays.
func (b *Bundle) Validate() error {
	if b.L < 2 || b.Measurements <= 0 || b.Operators <= 0 {
		return fmt.Errorf("%w: L=%d measurements=%d operators=%d",
			ErrShapeMismatch, b.L, b.Measurements, b.Operators)
	}
	if len(b.Ops) != b.Measurements {
		return fmt.Errorf("%w: %d measurement rows, declared %d",
			ErrShapeMismatch, len(b.Ops), b.Measurements)
	}
	for m, row := range b.Ops {
		if len(row) != b.Operators {
			return fmt.Errorf("%w: measurement %d has %d operators, declared %d",
				ErrShapeMismatch, m, len(row), b.Operators)
		}
		for k, series := range row {
			if len(series) != b.L {
				return fmt.Errorf("%w: operator (%d,%d) axis length %d, expected L=%d",
					ErrShapeMismatch, m, k, len(series), b.L)
			}
		}
	}
	if len(b.Wilson) == 0 || len(b.Wilson[0]) == 0 {
		return fmt.Errorf("%w: empty wilson accumulator", ErrShapeMismatch)
	}
	tmax := len(b.Wilson[0])
	for r, row := range b.Wilson {
		if len(row) != tmax {
			return fmt.Errorf("%w: wilson row %d length %d, expected %d",
				ErrShapeMismatch, r, len(row), tmax)
		}
	}
	return nil
}

// Save validates b and writes it to path, replacing any existing file.
func Save(path string, b *Bundle) error {
	if err := b.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bundle: create %s: %w", path, err)
	}
	if err := gob.NewEncoder(f).Encode(b); err != nil {
		f.Close()
		return fmt.Errorf("bundle: encode %s: %w", path, err)
	}
	return f.Close()
}

// Load reads and validates a bundle from path.
func Load(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bundle: open %s: %w", path, err)
	}
	defer f.Close()

	var b Bundle
	if err := gob.NewDecoder(f).Decode(&b); err != nil {
		return nil, fmt.Errorf("bundle: decode %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
