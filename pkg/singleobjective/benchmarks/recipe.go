package benchmarks

import (
	"fmt"

	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
)

// Kind tells which evaluator a recipe dispatches to.
type Kind int

const (
	KindElement Kind = iota
	KindHybrid
	KindComposition
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindHybrid:
		return "hybrid"
	case KindComposition:
		return "composition"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Recipe is the static description of one suite problem.
type Recipe struct {
	Suite framework.Suite
	ID    int
	Kind  Kind
	// Bias is the fitness at the global optimum.
	Bias float64
	// Rotate enables the rotation stages of the problem.
	Rotate bool

	Element     *Element
	Hybrid      *Hybrid
	Composition *Composition
}

// Name returns the description of the landscape the recipe evaluates.
func (r Recipe) Name() string {
	switch r.Kind {
	case KindHybrid:
		return r.Hybrid.Name
	case KindComposition:
		return r.Composition.Name
	}
	return r.Element.Name
}

// Lookup returns the recipe of a suite problem.
func Lookup(suite framework.Suite, id int) (Recipe, error) {
	var table []Recipe
	switch suite {
	case framework.CEC2013:
		table = cec2013
	case framework.CEC2014:
		table = cec2014
	default:
		return Recipe{}, fmt.Errorf("%w: unknown suite %d", framework.ErrInvalidArgument, int(suite))
	}
	if id < 1 || id > len(table) {
		return Recipe{}, fmt.Errorf("%w: %v has no problem %d", framework.ErrInvalidArgument, suite, id)
	}
	return table[id-1], nil
}

func element(suite framework.Suite, id int, bias float64, rotated bool, e *Element) Recipe {
	return Recipe{Suite: suite, ID: id, Kind: KindElement, Bias: bias, Rotate: rotated, Element: e}
}

func hybrid(suite framework.Suite, id int, bias float64, h *Hybrid) Recipe {
	return Recipe{Suite: suite, ID: id, Kind: KindHybrid, Bias: bias, Rotate: true, Hybrid: h}
}

func composition(suite framework.Suite, id int, bias float64, c *Composition) Recipe {
	return Recipe{Suite: suite, ID: id, Kind: KindComposition, Bias: bias, Rotate: true, Composition: c}
}

// blend builds composition components from parallel sigma and lambda lists,
// with component biases 0, 100, 200 and so on.
func blend(sigmas []float64, lambdas []Lambda, parts ...Component) []Component {
	for i := range parts {
		parts[i].Sigma = sigmas[i]
		parts[i].Bias = 100 * float64(i)
		if lambdas != nil {
			parts[i].Lambda = lambdas[i]
		}
	}
	return parts
}

func of(e *Element) Component { return Component{Element: e} }
func unrotated(e *Element) Component { return Component{Element: e, NoRotate: true} }
func ofHybrid(h *Hybrid) Component { return Component{Hybrid: h} }
