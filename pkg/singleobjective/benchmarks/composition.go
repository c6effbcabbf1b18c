package benchmarks

import (
	"math"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/resources"
)

// flatWeight replaces the weight of a component whose optimum is hit exactly.
const flatWeight = 1.0e99

// Lambda rescales a component value as Mul·f/Div. The zero value leaves the
// value unchanged.
type Lambda struct {
	Mul, Div float64
}

func (l Lambda) apply(f float64) float64 {
	if l.Div == 0 {
		return f
	}
	return l.Mul * f / l.Div
}

// Component is one landscape of a composition. Exactly one of Element and
// Hybrid is set. Component i uses shift block i, rotation blocks i and i+1
// and, for hybrids, shuffle block i.
type Component struct {
	Element *Element
	Hybrid  *Hybrid

	Sigma  float64
	Bias   float64
	Lambda Lambda
	// NoRotate evaluates the component without rotation even when the
	// problem is rotated.
	NoRotate bool
}

// Composition blends its components with weights that decay with the
// distance of the point from each component optimum.
type Composition struct {
	Name       string
	Components []Component
}

// Weights returns the normalised blending weights of x against the given
// component optima, and whether every raw weight underflowed so that the
// flat 1/m fallback was used.
func Weights(x []float64, optima [][]float64, sigmas []float64) ([]float64, bool) {
	w := make([]float64, len(optima))
	sum, flat := rawWeights(x, func(i int) []float64 { return optima[i] }, sigmas, w)
	for i := range w {
		w[i] /= sum
	}
	return w, flat
}

// rawWeights fills w with the unnormalised weights and returns their sum.
func rawWeights(x []float64, optimum func(int) []float64, sigmas, w []float64) (float64, bool) {
	n := float64(len(x))
	maxW := 0.0
	for i := range w {
		os := optimum(i)
		d2 := 0.0
		for j, v := range x {
			d := v - os[j]
			d2 += float64(d * d)
		}
		w[i] = math.Sqrt(1.0/d2) * math.Exp(-d2/2.0/n/(sigmas[i]*sigmas[i]))
		// 1/d2 overflows for d2 == 0 and for subnormal d2.
		if math.IsInf(w[i], 1) {
			w[i] = flatWeight
		}
		if w[i] > maxW {
			maxW = w[i]
		}
	}
	if maxW == 0 {
		for i := range w {
			w[i] = 1
		}
		return float64(len(w)), true
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum, false
}

// evaluate blends the component values at x. tables supplies the shift,
// rotation and shuffle block of every component.
func (c *Composition) evaluate(x []float64, rotated bool, tables *resources.Tables, ws *workspace) float64 {
	m := len(c.Components)
	fit := ws.fit[:m]
	w := ws.w[:m]
	for i, comp := range c.Components {
		fr := frame{shift: tables.ShiftBlock(i)}
		if rotated && !comp.NoRotate {
			fr.rot = [2][]float64{tables.RotationBlock(i), tables.RotationBlock(i + 1)}
		}
		var f float64
		if comp.Hybrid != nil {
			f = comp.Hybrid.evaluate(fr, tables.ShuffleBlock(i), x, ws)
		} else {
			f = comp.Element.evaluate(fr, x, ws)
		}
		fit[i] = comp.Lambda.apply(f) + comp.Bias
		ws.sigma[i] = comp.Sigma
	}

	sum, _ := rawWeights(x, tables.ShiftBlock, ws.sigma[:m], w)
	f := 0.0
	for i := range fit {
		f += w[i] / sum * fit[i]
	}
	return f
}
