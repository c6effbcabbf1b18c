package resources

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// shiftRange bounds the generated optima, matching the [-80, 80] box the
// published shift vectors are drawn from.
const shiftRange = 80.0

// SyntheticProvider generates tables with the layout of the reference data.
// The same seed always produces the same tables, so results are reproducible
// without the competition files, but they are not comparable with published
// numbers.
type SyntheticProvider struct {
	seed uint64
}

var _ Provider = &SyntheticProvider{}

func NewSyntheticProvider(seed uint64) *SyntheticProvider {
	return &SyntheticProvider{seed: seed}
}

func (p *SyntheticProvider) Load(ctx context.Context, suite framework.Suite, id, dim int) (*Tables, error) {
	logger := klog.FromContext(ctx)
	if err := suite.Validate(id, dim); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	}
	req := Requirements(suite, id)

	key := uint64(id)
	if suite == framework.CEC2013 {
		key = 0
	}
	rng := rand.New(rand.NewPCG(p.seed^uint64(suite), key<<32|uint64(dim)))

	t := &Tables{
		Dimension: dim,
		Shift:     make([]float64, req.ShiftBlocks*dim),
		Rotation:  make([]float64, 0, req.RotationBlocks*dim*dim),
		Shuffle:   make([]int, 0, req.ShuffleBlocks*dim),
	}
	for i := range t.Shift {
		t.Shift[i] = -shiftRange + 2*shiftRange*rng.Float64()
	}
	for b := 0; b < req.RotationBlocks; b++ {
		t.Rotation = append(t.Rotation, randomRotation(rng, dim)...)
	}
	for b := 0; b < req.ShuffleBlocks; b++ {
		t.Shuffle = append(t.Shuffle, rng.Perm(dim)...)
	}

	logger.V(5).Info("Generated synthetic benchmark tables", "suite", suite, "problem", id, "dimension", dim)
	return t, nil
}

// randomRotation returns the orthogonal factor of the QR decomposition of a
// matrix with standard normal entries, flattened row-major.
func randomRotation(rng *rand.Rand, n int) []float64 {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	var qr mat.QR
	qr.Factorize(mat.NewDense(n, n, data))
	var q mat.Dense
	qr.QTo(&q)

	out := make([]float64, 0, n*n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		out = append(out, mat.Row(row, i, &q)...)
	}
	return out
}
