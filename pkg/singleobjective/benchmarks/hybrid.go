package benchmarks

import (
	"math"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/transform"
)

// Hybrid splits a shuffled point into consecutive blocks and sums the value
// of one element per block.
type Hybrid struct {
	Name     string
	Percents []float64
	Parts    []*Element
}

// Partition returns the block sizes of a hybrid over n coordinates. Every
// block but the last gets floor(p·n) coordinates and the last one takes the
// remainder, so the blocks cover [0, n) exactly once.
func Partition(percents []float64, n int) []int {
	sizes := make([]int, len(percents))
	partition(percents, n, sizes)
	return sizes
}

func partition(percents []float64, n int, sizes []int) {
	if len(percents) == 0 {
		return
	}
	used := 0
	last := len(percents) - 1
	for i := 0; i < last; i++ {
		k := int(math.Floor(percents[i] * float64(n)))
		if k > n-used {
			k = n - used
		}
		if k < 0 {
			k = 0
		}
		sizes[i] = k
		used += k
	}
	sizes[last] = n - used
}

// evaluate shifts and rotates x, permutes it with perm and sums the parts
// over their blocks. Parts only apply their own scaling.
func (h *Hybrid) evaluate(fr frame, perm []int, x []float64, ws *workspace) float64 {
	n := len(x)
	z := ws.b[:n]
	transform.ShiftRotate(x, fr.shift, fr.rot[0], 1.0, fr.shift != nil, fr.rot[0] != nil, ws.a[:n], z)

	y := ws.hy[:n]
	for i, j := range perm {
		y[i] = z[j]
	}

	sizes := ws.sizes[:len(h.Parts)]
	partition(h.Percents, n, sizes)
	f, lo := 0.0, 0
	for i, part := range h.Parts {
		hi := lo + sizes[i]
		f += part.evaluate(frame{}, y[lo:hi], ws)
		lo = hi
	}
	return f
}
