// Package sampling draws uniform random points from the box of a problem and
// evaluates them concurrently.
package sampling

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

const (
	Name = "uniform-sampling"
)

// Sampler represents a batch of uniform samples of one problem
type Sampler struct {
	Samples int
	Workers int
	VarMin  []float64
	VarMax  []float64
	Problem framework.Problem

	rng *rand.Rand
}

// NewSampler creates a sampler drawing samples points of problem with the
// given seed. A non-positive workers uses one worker per CPU.
func NewSampler(problem framework.Problem, samples, workers int, seed uint64) *Sampler {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Sampler{
		Samples: samples,
		Workers: workers,
		VarMin:  problem.LowerBounds(),
		VarMax:  problem.UpperBounds(),
		Problem: problem,
		rng:     rand.New(rand.NewPCG(seed, uint64(samples))),
	}
}

func (s *Sampler) Name() string {
	return Name
}

// Initialize draws the points of the batch without evaluating them
func (s *Sampler) Initialize() []framework.Individual {
	population := make([]framework.Individual, s.Samples)
	for i := range population {
		vars := make([]float64, len(s.VarMin))
		for j := range vars {
			vars[j] = s.VarMin[j] + s.rng.Float64()*(s.VarMax[j]-s.VarMin[j])
		}
		population[i] = framework.Individual{Variables: vars}
	}
	return population
}

// Evaluate computes the fitness of every individual with at most Workers
// evaluations in flight.
func (s *Sampler) Evaluate(ctx context.Context, population []framework.Individual) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i := range population {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := s.Problem.Fitness(population[i].Variables)
			if err != nil {
				return fmt.Errorf("evaluating sample %d of %s: %w", i, s.Problem.Name(), err)
			}
			population[i].Fitness = f[0]
			return nil
		})
	}
	return g.Wait()
}

// Run samples and evaluates the batch and returns it sorted by fitness
func (s *Sampler) Run(ctx context.Context) ([]framework.Individual, error) {
	logger := klog.FromContext(ctx)
	population := s.Initialize()
	if err := s.Evaluate(ctx, population); err != nil {
		return nil, err
	}
	framework.SortByFitness(population)
	logger.V(4).Info("Sampled problem", "sampler", s.Name(), "problem", s.Problem.Name(), "samples", len(population), "workers", s.Workers)
	return population, nil
}

// Summary describes the fitness distribution of an evaluated batch.
type Summary struct {
	Count  int
	Best   float64
	Worst  float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes the statistics of an evaluated population. NaN fitness
// values are ignored.
func Summarize(population []framework.Individual) Summary {
	values := make([]float64, 0, len(population))
	for _, ind := range population {
		if !math.IsNaN(ind.Fitness) {
			values = append(values, ind.Fitness)
		}
	}
	if len(values) == 0 {
		return Summary{}
	}
	sort.Float64s(values)
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Summary{
		Count:  len(values),
		Best:   values[0],
		Worst:  values[len(values)-1],
		Mean:   mean,
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		StdDev: std,
	}
}
