// Package transform implements the coordinate transforms applied to a query
// point before a CEC landscape is evaluated.
//
// Every function writes into a caller supplied output slice of the same
// length as its input. Element-wise transforms may be applied in place;
// Rotate may not, since every output coordinate reads the whole input.
package transform

import "math"

// Shift writes x - os into out.
func Shift(x, os, out []float64) {
	for i := range x {
		out[i] = x[i] - os[i]
	}
}

// Rotate writes m·x into out, m being a row-major len(x)×len(x) matrix.
func Rotate(x, m, out []float64) {
	n := len(x)
	for i := 0; i < n; i++ {
		row := m[i*n : (i+1)*n]
		s := 0.0
		for j := 0; j < n; j++ {
			// The conversion rounds the product and rules out a fused multiply-add.
			s += float64(x[j] * row[j])
		}
		out[i] = s
	}
}

// Scale writes x*rate into out.
func Scale(x []float64, rate float64, out []float64) {
	for i := range x {
		out[i] = x[i] * rate
	}
}

// ScaleDiv writes x*mul/div into out, multiplying before dividing.
func ScaleDiv(x []float64, mul, div float64, out []float64) {
	for i := range x {
		out[i] = x[i] * mul / div
	}
}

// ShiftRotate shifts x by os when shift is set, multiplies by rate and then
// rotates by m when rotate is set. tmp is only used when rotating.
func ShiftRotate(x, os, m []float64, rate float64, shift, rotate bool, tmp, out []float64) {
	if !rotate {
		tmp = out
	}
	if shift {
		Shift(x, os, tmp)
		Scale(tmp, rate, tmp)
	} else {
		Scale(x, rate, tmp)
	}
	if rotate {
		Rotate(tmp, m, out)
	}
}

// Asymmetric applies x_i^(1 + beta·i/(n-1)·sqrt(x_i)) to the positive
// coordinates and copies the others.
func Asymmetric(x []float64, beta float64, out []float64) {
	n := len(x)
	for i, v := range x {
		if v <= 0 {
			out[i] = v
			continue
		}
		e := 1.0
		if n > 1 {
			e = 1.0 + beta*float64(i)/float64(n-1)*math.Sqrt(v)
		}
		out[i] = math.Pow(v, e)
	}
}

// Oscillate applies the CEC oscillation transform to the first and the last
// coordinate and copies the inner ones.
func Oscillate(x, out []float64) {
	last := len(x) - 1
	for i, v := range x {
		if i != 0 && i != last {
			out[i] = v
			continue
		}
		out[i] = oscillate(v)
	}
}

func oscillate(v float64) float64 {
	if v == 0 {
		return 0
	}
	xx := math.Log(math.Abs(v))
	c1, c2, sx := 5.5, 3.1, -1.0
	if v > 0 {
		c1, c2, sx = 10, 7.9, 1.0
	}
	return sx * math.Exp(xx+0.049*(math.Sin(c1*xx)+math.Sin(c2*xx)))
}

// Condition multiplies coordinate i by alpha^(i/(n-1)/2).
func Condition(x []float64, alpha float64, out []float64) {
	n := len(x)
	for i, v := range x {
		if n < 2 {
			out[i] = v
			continue
		}
		out[i] = v * math.Pow(alpha, float64(i)/float64(n-1)/2.0)
	}
}

// Quantize rounds every coordinate farther than 0.5 from os to the half-integer
// grid centred on os.
func Quantize(x, os, out []float64) {
	for i, v := range x {
		if math.Abs(v-os[i]) > 0.5 {
			v = os[i] + math.Floor(2*(v-os[i])+0.5)/2
		}
		out[i] = v
	}
}
