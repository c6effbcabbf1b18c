package benchmarks

import (
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/functions"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/transform"
)

type stageKind int

const (
	shiftStage stageKind = iota
	quantizeStage
	scaleStage
	scaleDivStage
	rateStage
	rotateStage
	asymmetricStage
	oscillateStage
	conditionStage
)

// Stage is one step of the coordinate pipeline of an element.
type Stage struct {
	kind   stageKind
	a, b   float64
	matrix int
}

func shift() Stage { return Stage{kind: shiftStage} }
func quantize() Stage { return Stage{kind: quantizeStage} }
func scale(f float64) Stage { return Stage{kind: scaleStage, a: f} }
func scaleDiv(mul, div float64) Stage { return Stage{kind: scaleDivStage, a: mul, b: div} }
func rotate(matrix int) Stage { return Stage{kind: rotateStage, matrix: matrix} }
func asymmetric(beta float64) Stage { return Stage{kind: asymmetricStage, a: beta} }
func oscillate() Stage { return Stage{kind: oscillateStage} }
func condition(alpha float64) Stage { return Stage{kind: conditionStage, a: alpha} }

// rate multiplies by mul/div. The quotient is computed in float64 when the
// stage runs, never folded as an exact constant.
func rate(mul, div float64) Stage { return Stage{kind: rateStage, a: mul, b: div} }

// frame holds the tables an element is evaluated against. A nil shift or
// rotation disables the matching stages.
type frame struct {
	shift []float64
	rot   [2][]float64
}

// Element is an elementary landscape preceded by its coordinate pipeline.
type Element struct {
	Name      string
	Landscape functions.Func

	stages []Stage
	// eval replaces the pipeline for elements that need more than one
	// transformed copy of the point.
	eval func(fr frame, x []float64, ws *workspace) float64
}

func (e *Element) evaluate(fr frame, x []float64, ws *workspace) float64 {
	if e.eval != nil {
		return e.eval(fr, x, ws)
	}
	n := len(x)
	return e.Landscape(e.transform(fr, x, ws.a[:n], ws.b[:n]))
}

// transform runs the pipeline on x using a and b as scratch and returns the
// slice holding the result.
func (e *Element) transform(fr frame, x, a, b []float64) []float64 {
	cur, other := a, b
	copy(cur, x)
	for _, s := range e.stages {
		switch s.kind {
		case shiftStage:
			if fr.shift != nil {
				transform.Shift(cur, fr.shift, cur)
			}
		case quantizeStage:
			if fr.shift != nil {
				transform.Quantize(cur, fr.shift, cur)
			}
		case scaleStage:
			transform.Scale(cur, s.a, cur)
		case scaleDivStage:
			transform.ScaleDiv(cur, s.a, s.b, cur)
		case rateStage:
			transform.Scale(cur, s.a/s.b, cur)
		case rotateStage:
			if m := fr.rot[s.matrix]; m != nil {
				transform.Rotate(cur, m, other)
				cur, other = other, cur
			}
		case asymmetricStage:
			transform.Asymmetric(cur, s.a, cur)
		case oscillateStage:
			transform.Oscillate(cur, cur)
		case conditionStage:
			transform.Condition(cur, s.a, cur)
		}
	}
	return cur
}

// shiftRateRotate is the single pipeline every CEC2014 element uses: shift,
// scale to the native search range, rotate.
func shiftRateRotate(mul, div float64) []Stage {
	return []Stage{shift(), rate(mul, div), rotate(0)}
}

// biRastrigin2013 evaluates the Lunacek landscape, which needs both the
// sign-adjusted point and its conditioned rotation.
func biRastrigin2013(fr frame, x []float64, ws *workspace) float64 {
	n := len(x)
	y, z, tmp := ws.a[:n], ws.b[:n], ws.c[:n]
	if fr.shift != nil {
		transform.Shift(x, fr.shift, y)
	} else {
		copy(y, x)
	}
	transform.Scale(y, 0.1, y)
	for i, v := range y {
		tmp[i] = 2 * v
		if fr.shift != nil && fr.shift[i] < 0 {
			tmp[i] = -tmp[i]
		}
	}
	copy(z, tmp)
	if fr.rot[0] != nil {
		transform.Rotate(z, fr.rot[0], y)
	} else {
		copy(y, z)
	}
	transform.Condition(y, 100, y)
	if fr.rot[1] != nil {
		transform.Rotate(y, fr.rot[1], z)
	} else {
		copy(z, y)
	}
	return functions.LunacekBiRastrigin(tmp, z)
}
