package util

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// PlotLandscape renders a heat map of a 2-D problem over its box, sampled on
// a resolution×resolution grid. Cells hold log10(1 + f - min f) so that the
// basins stay visible next to the steep walls.
func PlotLandscape(problem framework.Problem, resolution int, w io.Writer) error {
	if problem.Dimension() != 2 {
		return fmt.Errorf("can only plot 2D landscapes, %s has %d dimensions", problem.Name(), problem.Dimension())
	}
	if resolution < 2 {
		return fmt.Errorf("resolution must be at least 2, got %d", resolution)
	}

	lower, upper := problem.LowerBounds(), problem.UpperBounds()
	xs := axis(lower[0], upper[0], resolution)
	ys := axis(lower[1], upper[1], resolution)

	values := make([]float64, 0, resolution*resolution)
	fmin := math.Inf(1)
	for _, y := range ys {
		for _, x := range xs {
			f, err := problem.Fitness([]float64{x, y})
			if err != nil {
				return err
			}
			values = append(values, f[0])
			if f[0] < fmin {
				fmin = f[0]
			}
		}
	}

	data := make([]opts.HeatMapData, len(values))
	vmax := 0.0
	for k, f := range values {
		v := math.Log10(1 + f - fmin)
		if v > vmax {
			vmax = v
		}
		data[k] = opts.HeatMapData{Value: [3]interface{}{k % resolution, k / resolution, v}}
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s landscape", problem.Name()),
			Subtitle: fmt.Sprintf("log10(1 + f - %.6g)", fmin),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x1",
			Type: "category",
			Data: labels(xs),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "x2",
			Type: "category",
			Data: labels(ys),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(vmax),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#74add1", "#ffffbf", "#f46d43", "#a50026"},
			},
		}),
	)
	heatmap.SetXAxis(labels(xs)).AddSeries(problem.Name(), data)
	return heatmap.Render(w)
}

// PlotLandscapeFile writes the heat map of problem into dir and returns the
// path of the created HTML file.
func PlotLandscapeFile(problem framework.Problem, resolution int, dir string) (string, error) {
	name := strings.ReplaceAll(problem.Name(), " ", "_") + "_landscape.html"
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := PlotLandscape(problem, resolution, f); err != nil {
		return "", err
	}
	return path, nil
}

func axis(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func labels(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%.1f", v)
	}
	return out
}
