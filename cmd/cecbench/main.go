// cecbench builds CEC2013 and CEC2014 benchmark problems, evaluates explicit
// points, samples their search box and renders 2-D landscapes.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/cecbench/apis/config/v1alpha1"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/benchmarks"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/resources"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/sampling"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/util"
)

// orthogonalityTolerance is the M·Mᵀ = I tolerance used with --check-orthogonal.
const orthogonalityTolerance = 1e-8

var (
	configFile      = flag.StringP("config", "c", "", "BenchmarkConfig file; replaces the problem flags")
	suiteName       = flag.StringP("suite", "s", "CEC2014", "Suite of the problems: CEC2013 or CEC2014")
	problemIDs      = flag.IntSliceP("problem", "p", nil, "Problem numbers; all problems of the suite when empty")
	dimensions      = flag.IntSliceP("dim", "d", []int{10}, "Dimensions of the problems")
	dataDir         = flag.String("data-dir", "", "Directory with the official tables; synthetic tables are used when empty")
	checkOrthogonal = flag.Bool("check-orthogonal", false, "Verify that every loaded rotation matrix is orthogonal")
	samples         = flag.Int32("samples", v1alpha1.DefaultSamples, "Uniform samples evaluated per problem")
	workers         = flag.Int32("workers", v1alpha1.DefaultWorkers, "Concurrent evaluations; 0 uses one per CPU")
	seed            = flag.Uint64("seed", v1alpha1.DefaultSeed, "Seed of the synthetic tables and the samples")
	plotDir         = flag.String("plot-dir", "", "Directory receiving heat maps of 2-D problems")
	plotResolution  = flag.Int32("plot-resolution", v1alpha1.DefaultPlotResolution, "Grid points per axis of a heat map")
	point           = flag.Float64Slice("point", nil, "Point evaluated exactly on every problem of matching dimension")
)

func main() {
	klog.InitFlags(nil)
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	ctx := klog.NewContext(context.Background(), klog.Background())
	if err := run(ctx, os.Stdout); err != nil {
		klog.ErrorS(err, "Benchmark run failed")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	klog.Flush()
}

// configFromFlags builds the configuration of a run from the command line.
func configFromFlags() (*v1alpha1.BenchmarkConfig, error) {
	if *configFile != "" {
		return v1alpha1.Load(*configFile)
	}
	cfg := &v1alpha1.BenchmarkConfig{
		DataDir:            *dataDir,
		CheckOrthogonality: *checkOrthogonal,
		Seed:               seed,
		Samples:            samples,
		Workers:            workers,
		PlotDir:            *plotDir,
		PlotResolution:     plotResolution,
		Problems: []v1alpha1.ProblemSpec{{
			Suite:      *suiteName,
			IDs:        *problemIDs,
			Dimensions: *dimensions,
		}},
	}
	if len(*point) > 0 {
		cfg.Problems[0].Points = [][]float64{*point}
	}
	v1alpha1.SetDefaults_BenchmarkConfig(cfg)
	if err := v1alpha1.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newProvider(cfg *v1alpha1.BenchmarkConfig) resources.Provider {
	if cfg.DataDir == "" {
		return resources.NewCachedProvider(resources.NewSyntheticProvider(*cfg.Seed))
	}
	files := resources.NewFileProvider(os.DirFS(cfg.DataDir))
	if cfg.CheckOrthogonality {
		files.OrthogonalityTolerance = orthogonalityTolerance
	}
	return resources.NewCachedProvider(files)
}

func run(ctx context.Context, out io.Writer) error {
	logger := klog.FromContext(ctx)
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}
	instances, err := cfg.Instances()
	if err != nil {
		return err
	}
	provider := newProvider(cfg)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROBLEM\tDIM\tLANDSCAPE\tBIAS\tSAMPLES\tBEST\tMEDIAN\tMEAN\tWORST\tRATE")

	var evaluations int64
	start := time.Now()
	for _, inst := range instances {
		problem, err := benchmarks.New(ctx, inst.Suite, inst.ID, inst.Dimension, benchmarks.WithProvider(provider))
		if err != nil {
			return err
		}

		for _, x := range inst.Points {
			f, err := problem.Evaluate(x)
			if err != nil {
				return err
			}
			evaluations++
			fmt.Fprintf(out, "%s D%d f(%v) = %s\n", problem.Name(), inst.Dimension, x, strconv.FormatFloat(f, 'g', 17, 64))
		}

		summary, rate, err := sample(ctx, problem, cfg)
		if err != nil {
			return err
		}
		evaluations += int64(summary.Count)
		fmt.Fprintf(w, "%s\t%d\t%s\t%g\t%s\t%s\t%s\t%s\t%s\t%s\n",
			problem.Name(), inst.Dimension, problem.Recipe().Name(), problem.Recipe().Bias,
			humanize.Comma(int64(summary.Count)),
			humanize.FormatFloat("#,###.####", summary.Best),
			humanize.FormatFloat("#,###.####", summary.Median),
			humanize.FormatFloat("#,###.####", summary.Mean),
			humanize.FormatFloat("#,###.####", summary.Worst),
			humanize.SIWithDigits(rate, 1, "eval/s"))

		if cfg.PlotDir != "" && inst.Dimension == 2 {
			path, err := util.PlotLandscapeFile(problem, int(*cfg.PlotResolution), cfg.PlotDir)
			if err != nil {
				return err
			}
			logger.Info("Rendered landscape", "problem", problem.Name(), "path", path)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Fprintf(out, "%s evaluations of %s problem instances in %s\n",
		humanize.Comma(evaluations), humanize.Comma(int64(len(instances))), elapsed.Round(time.Millisecond))
	return nil
}

// sample evaluates the configured number of uniform points of problem and
// returns their summary and the evaluation throughput.
func sample(ctx context.Context, problem *benchmarks.Problem, cfg *v1alpha1.BenchmarkConfig) (sampling.Summary, float64, error) {
	if *cfg.Samples == 0 {
		return sampling.Summary{}, 0, nil
	}
	sampler := sampling.NewSampler(problem, int(*cfg.Samples), int(*cfg.Workers), *cfg.Seed)
	start := time.Now()
	population, err := sampler.Run(ctx)
	if err != nil {
		return sampling.Summary{}, 0, err
	}
	rate := float64(len(population)) / time.Since(start).Seconds()
	klog.FromContext(ctx).V(2).Info("Finished sampling", "sampler", sampler.Name(), "problem", problem.Name(), "rate", rate)
	return sampling.Summarize(population), rate, nil
}
