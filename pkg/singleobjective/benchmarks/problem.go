// Package benchmarks implements the CEC2013 and CEC2014 single-objective
// problems on top of the elementary landscapes and coordinate transforms.
package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/resources"
)

const (
	// LowerBound and UpperBound delimit the search box of every problem.
	LowerBound = -100.0
	UpperBound = 100.0

	// DefaultSeed seeds the synthetic tables used when no provider is given.
	DefaultSeed = 2014

	maxComponents = 5
)

// ErrDimensionMismatch is returned when a point does not match the dimension
// of the problem.
var ErrDimensionMismatch = errors.New("dimension mismatch")

var defaultProvider resources.Provider = resources.NewCachedProvider(resources.NewSyntheticProvider(DefaultSeed))

type options struct {
	provider resources.Provider
	logger   *logr.Logger
}

// Option configures New.
type Option func(*options)

// WithProvider sets the source of the shift, rotation and shuffle tables.
func WithProvider(p resources.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithLogger overrides the logger taken from the context of New.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// workspace holds the scratch buffers of one evaluation.
type workspace struct {
	a, b, c, hy []float64
	fit, w      []float64
	sigma       []float64
	sizes       []int
}

func newWorkspace(n int) *workspace {
	return &workspace{
		a:     make([]float64, n),
		b:     make([]float64, n),
		c:     make([]float64, n),
		hy:    make([]float64, n),
		fit:   make([]float64, maxComponents),
		w:     make([]float64, maxComponents),
		sigma: make([]float64, maxComponents),
		sizes: make([]int, maxComponents),
	}
}

// Problem is one instance of a suite problem at a fixed dimension. Fitness
// is safe for concurrent use.
type Problem struct {
	recipe Recipe
	dim    int
	tables *resources.Tables
	pool   sync.Pool
}

var _ framework.Problem = &Problem{}

// New builds problem id of suite at dimension dim.
func New(ctx context.Context, suite framework.Suite, id, dim int, opts ...Option) (*Problem, error) {
	o := options{provider: defaultProvider}
	for _, opt := range opts {
		opt(&o)
	}
	logger := klog.FromContext(ctx)
	if o.logger != nil {
		logger = *o.logger
		ctx = klog.NewContext(ctx, logger)
	}

	if err := suite.Validate(id, dim); err != nil {
		return nil, err
	}
	recipe, err := Lookup(suite, id)
	if err != nil {
		return nil, err
	}
	tables, err := o.provider.Load(ctx, suite, id, dim)
	if err != nil {
		return nil, fmt.Errorf("loading tables of %v F%d D%d: %w", suite, id, dim, err)
	}
	if err := tables.Validate(dim, resources.Requirements(suite, id)); err != nil {
		return nil, fmt.Errorf("tables of %v F%d D%d: %w", suite, id, dim, err)
	}

	p := &Problem{recipe: recipe, dim: dim, tables: tables}
	p.pool.New = func() any {
		return newWorkspace(dim)
	}
	logger.V(4).Info("Created benchmark problem", "problem", p.Name(), "dimension", dim, "kind", recipe.Kind, "landscape", recipe.Name())
	return p, nil
}

func (p *Problem) Name() string {
	return fmt.Sprintf("%v F%d", p.recipe.Suite, p.recipe.ID)
}

func (p *Problem) Dimension() int {
	return p.dim
}

func (p *Problem) Recipe() Recipe {
	return p.recipe
}

func (p *Problem) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.dim)
	for i := range b {
		b[i] = framework.Bounds{L: LowerBound, H: UpperBound}
	}
	return b
}

func (p *Problem) LowerBounds() []float64 {
	lower, _ := framework.BoxBounds(p.Bounds())
	return lower
}

func (p *Problem) UpperBounds() []float64 {
	_, upper := framework.BoxBounds(p.Bounds())
	return upper
}

// OriginShift returns a copy of the global optimum of the problem.
func (p *Problem) OriginShift() []float64 {
	return append([]float64(nil), p.tables.ShiftBlock(0)...)
}

// Fitness returns the single objective value of x.
func (p *Problem) Fitness(x []float64) ([]float64, error) {
	f, err := p.Evaluate(x)
	if err != nil {
		return nil, err
	}
	return []float64{f}, nil
}

func (p *Problem) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(x []float64) float64 {
			f, err := p.Evaluate(x)
			if err != nil {
				return math.NaN()
			}
			return f
		},
	}
}

// Evaluate returns the fitness of x. x is not modified.
func (p *Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != p.dim {
		return 0, fmt.Errorf("%w: got %d coordinates, %s has %d", ErrDimensionMismatch, len(x), p.Name(), p.dim)
	}
	ws := p.pool.Get().(*workspace)
	defer p.pool.Put(ws)

	r := &p.recipe
	var f float64
	switch r.Kind {
	case KindElement:
		f = r.Element.evaluate(p.frame(0, r.Rotate), x, ws)
	case KindHybrid:
		f = r.Hybrid.evaluate(p.frame(0, r.Rotate), p.tables.ShuffleBlock(0), x, ws)
	case KindComposition:
		f = r.Composition.evaluate(x, r.Rotate, p.tables, ws)
	}
	return f + r.Bias, nil
}

func (p *Problem) frame(block int, rotated bool) frame {
	fr := frame{shift: p.tables.ShiftBlock(block)}
	if rotated {
		fr.rot = [2][]float64{p.tables.RotationBlock(block), p.tables.RotationBlock(block + 1)}
	}
	return fr
}
