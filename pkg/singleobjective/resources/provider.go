// Package resources supplies the numeric tables (origin shifts, rotation
// matrices and shuffle permutations) that parameterise every CEC problem.
package resources

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

var (
	// ErrResourceNotFound is returned when no table exists for a (suite, id, dim) combination.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceCorrupt is returned when a table does not have the expected shape.
	ErrResourceCorrupt = errors.New("resource corrupt")
)

// compositionBlocks is the number of shift, rotation and shuffle blocks the
// reference data stores for composition problems.
const compositionBlocks = 10

// Provider loads the tables of one problem instance. Returned tables are
// shared and must be treated as read-only.
type Provider interface {
	Load(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error)

func (f ProviderFunc) Load(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error) {
	return f(ctx, suite, id, dim)
}

// Tables holds the data of one problem instance. Every table is a
// concatenation of blocks, one per composition component.
type Tables struct {
	Dimension int
	// Shift holds ShiftBlocks vectors of length Dimension.
	Shift []float64
	// Rotation holds row-major Dimension×Dimension matrices.
	Rotation []float64
	// Shuffle holds zero-based permutations of [0, Dimension).
	Shuffle []int
}

// ShiftBlock returns the i-th origin shift, or nil when absent.
func (t *Tables) ShiftBlock(i int) []float64 {
	return block(t.Shift, t.Dimension, i)
}

// RotationBlock returns the i-th rotation matrix, or nil when absent.
func (t *Tables) RotationBlock(i int) []float64 {
	return block(t.Rotation, t.Dimension*t.Dimension, i)
}

// ShuffleBlock returns the i-th permutation, or nil when absent.
func (t *Tables) ShuffleBlock(i int) []int {
	return block(t.Shuffle, t.Dimension, i)
}

func block[T any](data []T, size, i int) []T {
	if size == 0 || i < 0 || (i+1)*size > len(data) {
		return nil
	}
	return data[i*size : (i+1)*size : (i+1)*size]
}

// Requirement describes how many blocks of each table a problem consumes.
type Requirement struct {
	ShiftBlocks    int
	RotationBlocks int
	ShuffleBlocks  int
}

// Requirements returns the table layout of the reference data for a problem.
// CEC2013 stores a single set of ten blocks per dimension shared by all
// problems. CEC2014 stores one set per problem.
func Requirements(suite framework.Suite, id int) Requirement {
	if suite == framework.CEC2013 {
		return Requirement{ShiftBlocks: compositionBlocks, RotationBlocks: compositionBlocks}
	}
	req := Requirement{ShiftBlocks: 1, RotationBlocks: 1}
	if id >= 23 {
		req = Requirement{ShiftBlocks: compositionBlocks, RotationBlocks: compositionBlocks}
	}
	switch {
	case id >= 17 && id <= 22:
		req.ShuffleBlocks = 1
	case id == 29 || id == 30:
		req.ShuffleBlocks = compositionBlocks
	}
	return req
}

// TableKey identifies the tables of a problem. CEC2013 problems of the same
// dimension share one key.
func TableKey(suite framework.Suite, id, dim int) string {
	if suite == framework.CEC2013 {
		id = 0
	}
	return fmt.Sprintf("%d/%d/%d", int(suite), id, dim)
}

// Validate checks the tables against the requirement of a problem.
func (t *Tables) Validate(dim int, req Requirement) error {
	if t == nil {
		return fmt.Errorf("%w: no tables", ErrResourceCorrupt)
	}
	if t.Dimension != dim {
		return fmt.Errorf("%w: tables are for dimension %d, want %d", ErrResourceCorrupt, t.Dimension, dim)
	}
	if want := req.ShiftBlocks * dim; len(t.Shift) < want {
		return fmt.Errorf("%w: shift has %d values, want %d", ErrResourceCorrupt, len(t.Shift), want)
	}
	if want := req.RotationBlocks * dim * dim; len(t.Rotation) < want {
		return fmt.Errorf("%w: rotation has %d values, want %d", ErrResourceCorrupt, len(t.Rotation), want)
	}
	if want := req.ShuffleBlocks * dim; len(t.Shuffle) < want {
		return fmt.Errorf("%w: shuffle has %d values, want %d", ErrResourceCorrupt, len(t.Shuffle), want)
	}
	for b := 0; b < req.ShuffleBlocks; b++ {
		if err := checkPermutation(t.ShuffleBlock(b)); err != nil {
			return fmt.Errorf("%w: shuffle block %d: %v", ErrResourceCorrupt, b, err)
		}
	}
	return nil
}

func checkPermutation(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("index %d out of range at position %d", v, i)
		}
		if seen[v] {
			return fmt.Errorf("index %d repeated at position %d", v, i)
		}
		seen[v] = true
	}
	return nil
}

// CheckOrthogonal verifies that the leading rotation matrices satisfy
// M·Mᵀ = I within tol.
func (t *Tables) CheckOrthogonal(blocks int, tol float64) error {
	n := t.Dimension
	identity := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		identity.SetDiag(i, 1)
	}
	var prod mat.Dense
	for b := 0; b < blocks; b++ {
		data := t.RotationBlock(b)
		if data == nil {
			return fmt.Errorf("%w: rotation block %d missing", ErrResourceCorrupt, b)
		}
		m := mat.NewDense(n, n, data)
		prod.Mul(m, m.T())
		if !mat.EqualApprox(&prod, identity, tol) {
			return fmt.Errorf("%w: rotation block %d is not orthogonal", ErrResourceCorrupt, b)
		}
		prod.Reset()
	}
	return nil
}
