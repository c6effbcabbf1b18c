package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/functions"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/resources"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/transform"
)

func randomPoint(rng *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = LowerBound + (UpperBound-LowerBound)*rng.Float64()
	}
	return x
}

// identityProvider serves the synthetic shift of problem 1 with identity
// rotations, so problems of one suite share their optimum.
func identityProvider() resources.Provider {
	synthetic := resources.NewSyntheticProvider(1)
	return resources.ProviderFunc(func(ctx context.Context, suite framework.Suite, id, dim int) (*resources.Tables, error) {
		base, err := synthetic.Load(ctx, suite, 1, dim)
		if err != nil {
			return nil, err
		}
		req := resources.Requirements(suite, id)
		rot := make([]float64, req.RotationBlocks*dim*dim)
		for b := 0; b < req.RotationBlocks; b++ {
			for i := 0; i < dim; i++ {
				rot[b*dim*dim+i*dim+i] = 1
			}
		}
		return &resources.Tables{Dimension: dim, Shift: base.Shift, Rotation: rot}, nil
	})
}

func TestNewRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		suite   framework.Suite
		id, dim int
	}{
		{framework.CEC2013, 0, 10},
		{framework.CEC2013, 29, 10},
		{framework.CEC2013, 1, 7},
		{framework.CEC2014, 0, 10},
		{framework.CEC2014, 31, 10},
		{framework.CEC2014, 1, 5},
		{framework.CEC2014, 1, 7},
		{framework.Suite(2017), 1, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v F%d D%d", tt.suite, tt.id, tt.dim), func(t *testing.T) {
			_, err := New(context.Background(), tt.suite, tt.id, tt.dim)
			assert.ErrorIs(t, err, framework.ErrInvalidArgument)
		})
	}
}

func TestNewAcceptsEveryValidProblem(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(3, 4))
	for _, suite := range framework.Suites() {
		for id := 1; id <= suite.Problems(); id++ {
			for _, dim := range suite.Dimensions() {
				p, err := New(ctx, suite, id, dim)
				require.NoError(t, err, "%v F%d D%d", suite, id, dim)
				f, err := p.Evaluate(randomPoint(rng, dim))
				require.NoError(t, err)
				assert.False(t, math.IsNaN(f), "%v F%d D%d returned NaN", suite, id, dim)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	count := func(suite framework.Suite) map[Kind]int {
		kinds := map[Kind]int{}
		for id := 1; id <= suite.Problems(); id++ {
			r, err := Lookup(suite, id)
			require.NoError(t, err)
			assert.Equal(t, id, r.ID)
			assert.Equal(t, suite, r.Suite)
			assert.NotEmpty(t, r.Name())
			kinds[r.Kind]++
		}
		return kinds
	}
	if diff := cmp.Diff(map[Kind]int{KindElement: 20, KindComposition: 8}, count(framework.CEC2013)); diff != "" {
		t.Errorf("CEC2013 kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[Kind]int{KindElement: 16, KindHybrid: 6, KindComposition: 8}, count(framework.CEC2014)); diff != "" {
		t.Errorf("CEC2014 kinds mismatch (-want +got):\n%s", diff)
	}

	_, err := Lookup(framework.CEC2013, 29)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
	_, err = Lookup(framework.Suite(1999), 1)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestPublishedBiases(t *testing.T) {
	for id := 1; id <= 28; id++ {
		r, err := Lookup(framework.CEC2013, id)
		require.NoError(t, err)
		want := -1400 + 100*float64(id-1)
		if id > 14 {
			want = 100 * float64(id-14)
		}
		assert.Equal(t, want, r.Bias, "CEC2013 F%d", id)
	}
	for id := 1; id <= 30; id++ {
		r, err := Lookup(framework.CEC2014, id)
		require.NoError(t, err)
		assert.Equal(t, 100*float64(id), r.Bias, "CEC2014 F%d", id)
	}
}

func TestBiasAtOriginShift(t *testing.T) {
	ctx := context.Background()
	for _, suite := range framework.Suites() {
		for id := 1; id <= suite.Problems(); id++ {
			p, err := New(ctx, suite, id, 10)
			require.NoError(t, err)
			f, err := p.Evaluate(p.OriginShift())
			require.NoError(t, err)
			assert.InDelta(t, p.Recipe().Bias, f, 1e-8, p.Name())
		}
	}
}

func TestSphereRotationInvariance(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, framework.CEC2013, 1, 10)
	require.NoError(t, err)
	tables, err := resources.NewSyntheticProvider(DefaultSeed).Load(ctx, framework.CEC2013, 1, 10)
	require.NoError(t, err)

	os := p.OriginShift()
	rng := rand.New(rand.NewPCG(5, 6))
	for trial := 0; trial < 10; trial++ {
		y := randomPoint(rng, 10)
		floats.Scale(0.1, y)
		my := make([]float64, 10)
		transform.Rotate(y, tables.RotationBlock(0), my)

		plain, err := p.Evaluate(floats.AddTo(make([]float64, 10), y, os))
		require.NoError(t, err)
		rotated, err := p.Evaluate(floats.AddTo(make([]float64, 10), my, os))
		require.NoError(t, err)
		assert.InEpsilon(t, plain+1400, rotated+1400, 1e-9)
	}
}

func TestIdentityRotationMatchesUnrotated(t *testing.T) {
	ctx := context.Background()
	pairs := []struct {
		suite             framework.Suite
		unrotated, rotated int
	}{
		{framework.CEC2013, 11, 12},
		{framework.CEC2013, 14, 15},
		{framework.CEC2013, 17, 18},
		{framework.CEC2014, 8, 9},
		{framework.CEC2014, 10, 11},
	}
	rng := rand.New(rand.NewPCG(7, 8))
	for _, pair := range pairs {
		t.Run(fmt.Sprintf("%v F%d F%d", pair.suite, pair.unrotated, pair.rotated), func(t *testing.T) {
			a, err := New(ctx, pair.suite, pair.unrotated, 10, WithProvider(identityProvider()))
			require.NoError(t, err)
			b, err := New(ctx, pair.suite, pair.rotated, 10, WithProvider(identityProvider()))
			require.NoError(t, err)
			for trial := 0; trial < 10; trial++ {
				x := randomPoint(rng, 10)
				fa, err := a.Evaluate(x)
				require.NoError(t, err)
				fb, err := b.Evaluate(x)
				require.NoError(t, err)
				assert.InDelta(t, fa-a.Recipe().Bias, fb-b.Recipe().Bias, 1e-6)
			}
		})
	}
}

func TestHybridMatchesManualSum(t *testing.T) {
	ctx := context.Background()
	const n = 10
	tables, err := resources.NewSyntheticProvider(DefaultSeed).Load(ctx, framework.CEC2014, 17, n)
	require.NoError(t, err)
	p, err := New(ctx, framework.CEC2014, 17, n)
	require.NoError(t, err)

	x := randomPoint(rand.New(rand.NewPCG(9, 10)), n)
	shifted := make([]float64, n)
	transform.Shift(x, tables.ShiftBlock(0), shifted)
	z := make([]float64, n)
	transform.Rotate(shifted, tables.RotationBlock(0), z)
	y := make([]float64, n)
	for i, j := range tables.ShuffleBlock(0) {
		y[i] = z[j]
	}

	scaled := func(v []float64, rate float64) []float64 {
		out := make([]float64, len(v))
		transform.Scale(v, rate, out)
		return out
	}
	// Blocks of 3, 3 and 4 coordinates.
	want := functions.Schwefel(scaled(y[0:3], 10)) +
		functions.Rastrigin(scaled(y[3:6], 0.0512)) +
		functions.Ellipsoidal(y[6:10]) + 1700

	got, err := p.Evaluate(x)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-9)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		percents []float64
		n        int
		want     []int
	}{
		{[]float64{0.3, 0.3, 0.4}, 10, []int{3, 3, 4}},
		{[]float64{0.3, 0.3, 0.4}, 2, []int{0, 0, 2}},
		{[]float64{0.2, 0.2, 0.3, 0.3}, 10, []int{2, 2, 3, 3}},
		{[]float64{0.1, 0.2, 0.2, 0.2, 0.3}, 10, []int{1, 2, 2, 2, 3}},
		{[]float64{0.1, 0.2, 0.2, 0.2, 0.3}, 0, []int{0, 0, 0, 0, 0}},
		{[]float64{1}, 7, []int{7}},
		{nil, 7, []int{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Partition(tt.percents, tt.n)); diff != "" {
			t.Errorf("Partition(%v, %d) mismatch (-want +got):\n%s", tt.percents, tt.n, diff)
		}
	}

	rng := rand.New(rand.NewPCG(11, 12))
	for trial := 0; trial < 200; trial++ {
		parts := 1 + rng.IntN(6)
		percents := make([]float64, parts)
		for i := range percents {
			percents[i] = rng.Float64()
		}
		n := rng.IntN(101)
		sizes := Partition(percents, n)
		total := 0
		for i, s := range sizes {
			assert.GreaterOrEqual(t, s, 0)
			if i < len(sizes)-1 && total+int(math.Floor(percents[i]*float64(n))) <= n {
				assert.Equal(t, int(math.Floor(percents[i]*float64(n))), s)
			}
			total += s
		}
		assert.Equal(t, n, total, "percents %v n %d", percents, n)
	}
}

func TestWeights(t *testing.T) {
	optima := [][]float64{{0, 0}, {3, 3}, {-1, 4}}
	sigmas := []float64{10, 20, 30}

	w, flat := Weights([]float64{1, 2}, optima, sigmas)
	assert.False(t, flat)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)

	w, flat = Weights([]float64{0, 0}, optima, sigmas)
	assert.False(t, flat)
	assert.InDelta(t, 1.0, w[0], 1e-12)

	w, flat = Weights([]float64{1e5, 1e5}, optima, sigmas)
	assert.True(t, flat)
	assert.True(t, floats.EqualApprox(w, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 1e-15))

	w, flat = Weights([]float64{1e160, -1e160}, optima, sigmas)
	assert.True(t, flat)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)

	// The squared distance is subnormal, so 1/d2 overflows.
	w, flat = Weights([]float64{1e-160, 0}, [][]float64{{0, 0}, {3, 3}}, []float64{10, 20})
	assert.False(t, flat)
	assert.False(t, floats.HasNaN(w), "weights %v", w)
	assert.InDelta(t, 1.0, w[0], 1e-12)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)
}

func TestCompositionNextToAnOptimum(t *testing.T) {
	synthetic := resources.NewSyntheticProvider(3)
	centred := resources.ProviderFunc(func(ctx context.Context, suite framework.Suite, id, dim int) (*resources.Tables, error) {
		tables, err := synthetic.Load(ctx, suite, id, dim)
		if err != nil {
			return nil, err
		}
		clear(tables.ShiftBlock(0))
		return tables, nil
	})
	p, err := New(context.Background(), framework.CEC2014, 23, 10, WithProvider(centred))
	require.NoError(t, err)

	x := make([]float64, 10)
	x[0] = 1e-160
	f, err := p.Evaluate(x)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(f))
	assert.InDelta(t, p.Recipe().Bias, f, 1e-6)
}

func TestCompositionFarFromEveryOptimum(t *testing.T) {
	p, err := New(context.Background(), framework.CEC2014, 23, 2)
	require.NoError(t, err)
	f, err := p.Evaluate([]float64{1e160, 1e160})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(f))
}

func TestConcurrentEvaluation(t *testing.T) {
	ctx := context.Background()
	for _, id := range []int{1, 17, 29} {
		p, err := New(ctx, framework.CEC2014, id, 30)
		require.NoError(t, err)

		rng := rand.New(rand.NewPCG(13, uint64(id)))
		points := make([][]float64, 64)
		serial := make([]float64, len(points))
		for i := range points {
			points[i] = randomPoint(rng, 30)
			serial[i], err = p.Evaluate(points[i])
			require.NoError(t, err)
		}

		parallel := make([]float64, len(points))
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(8)
		for i := range points {
			i := i
			g.Go(func() error {
				f, err := p.Evaluate(points[i])
				parallel[i] = f
				return err
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, serial, parallel, p.Name())
	}
}

func TestEvaluateIsPureAndDeterministic(t *testing.T) {
	p, err := New(context.Background(), framework.CEC2013, 13, 20)
	require.NoError(t, err)
	x := randomPoint(rand.New(rand.NewPCG(15, 16)), 20)
	in := append([]float64(nil), x...)

	first, err := p.Fitness(x)
	require.NoError(t, err)
	second, err := p.Fitness(x)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, in, x)
	require.Len(t, p.ObjectiveFuncs(), 1)
	assert.Equal(t, first[0], p.ObjectiveFuncs()[0](x))
}

func TestDimensionMismatch(t *testing.T) {
	p, err := New(context.Background(), framework.CEC2014, 3, 10)
	require.NoError(t, err)

	_, err = p.Evaluate(make([]float64, 9))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = p.Fitness(nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.True(t, math.IsNaN(p.ObjectiveFuncs()[0](make([]float64, 11))))
}

func TestBoundsAndName(t *testing.T) {
	for _, suite := range framework.Suites() {
		p, err := New(context.Background(), suite, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%v F3", suite), p.Name())
		assert.Equal(t, 10, p.Dimension())

		lower, upper := p.LowerBounds(), p.UpperBounds()
		require.Len(t, lower, 10)
		require.Len(t, upper, 10)
		for i := range lower {
			assert.Equal(t, -100.0, lower[i])
			assert.Equal(t, 100.0, upper[i])
		}
	}

	p, err := New(context.Background(), framework.CEC2014, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, "CEC2014 F3", p.Name())
}

func TestOriginShiftIsACopy(t *testing.T) {
	p, err := New(context.Background(), framework.CEC2014, 1, 10)
	require.NoError(t, err)
	os := p.OriginShift()
	os[0] = 1e9
	assert.NotEqual(t, 1e9, p.OriginShift()[0])
}

func TestProviderErrors(t *testing.T) {
	ctx := context.Background()

	missing := resources.ProviderFunc(func(context.Context, framework.Suite, int, int) (*resources.Tables, error) {
		return nil, fmt.Errorf("%w: M_1_D10.txt", resources.ErrResourceNotFound)
	})
	_, err := New(ctx, framework.CEC2014, 1, 10, WithProvider(missing))
	assert.ErrorIs(t, err, resources.ErrResourceNotFound)

	short := resources.ProviderFunc(func(context.Context, framework.Suite, int, int) (*resources.Tables, error) {
		return &resources.Tables{Dimension: 10, Shift: make([]float64, 10)}, nil
	})
	_, err = New(ctx, framework.CEC2014, 1, 10, WithProvider(short))
	assert.ErrorIs(t, err, resources.ErrResourceCorrupt)
	assert.False(t, errors.Is(err, framework.ErrInvalidArgument))

	called := false
	never := resources.ProviderFunc(func(context.Context, framework.Suite, int, int) (*resources.Tables, error) {
		called = true
		return nil, nil
	})
	_, err = New(ctx, framework.CEC2014, 0, 10, WithProvider(never))
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
	assert.False(t, called)
}

func TestWithLogger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 4})

	_, err := New(context.Background(), framework.CEC2014, 29, 10, WithLogger(logger))
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], `"problem"="CEC2014 F29"`)
	assert.Contains(t, lines[len(lines)-1], `"landscape"="composition 7"`)
}
