package benchmarks

import (
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/functions"
)

// CEC2013 elements. Rotation 0 is the component's own matrix and rotation 1
// the matrix of the next block; both are skipped on unrotated problems.
var (
	sphere2013 = &Element{Name: "sphere", Landscape: functions.Sphere,
		stages: []Stage{shift(), rotate(0)}}
	ellipsoidal2013 = &Element{Name: "ellipsoidal", Landscape: functions.Ellipsoidal,
		stages: []Stage{shift(), rotate(0), oscillate()}}
	bentCigar2013 = &Element{Name: "bent cigar", Landscape: functions.BentCigar,
		stages: []Stage{shift(), rotate(0), asymmetric(0.5), rotate(1)}}
	discus2013 = &Element{Name: "discus", Landscape: functions.Discus,
		stages: []Stage{shift(), rotate(0), oscillate()}}
	differentPowers2013 = &Element{Name: "different powers", Landscape: functions.DifferentPowers,
		stages: []Stage{shift(), rotate(0)}}
	rosenbrock2013 = &Element{Name: "rosenbrock", Landscape: functions.Rosenbrock,
		stages: []Stage{shift(), scaleDiv(2.048, 100), rotate(0)}}
	schafferF72013 = &Element{Name: "schaffer F7", Landscape: functions.SchafferF7,
		stages: []Stage{shift(), rotate(0), asymmetric(0.5), condition(10), rotate(1)}}
	ackley2013 = &Element{Name: "ackley", Landscape: functions.Ackley,
		stages: []Stage{shift(), rotate(0), asymmetric(0.5), condition(10), rotate(1)}}
	weierstrass2013 = &Element{Name: "weierstrass", Landscape: functions.Weierstrass,
		stages: []Stage{shift(), scaleDiv(0.5, 100), rotate(0), asymmetric(0.5), condition(10), rotate(1)}}
	griewank2013 = &Element{Name: "griewank", Landscape: functions.Griewank,
		stages: []Stage{shift(), scaleDiv(600, 100), rotate(0), condition(100)}}
	rastrigin2013 = &Element{Name: "rastrigin", Landscape: functions.Rastrigin,
		stages: rastriginStages2013()}
	stepRastrigin2013 = &Element{Name: "non-continuous rastrigin", Landscape: functions.Rastrigin,
		stages: append([]Stage{quantize()}, rastriginStages2013()...)}
	schwefel2013 = &Element{Name: "schwefel", Landscape: functions.Schwefel,
		stages: []Stage{shift(), scale(10), rotate(0), condition(10)}}
	katsuura2013 = &Element{Name: "katsuura", Landscape: functions.Katsuura,
		stages: []Stage{shift(), scale(0.05), rotate(0), condition(100), rotate(1)}}
	biRastrigin2013Element = &Element{Name: "lunacek bi-rastrigin", eval: biRastrigin2013}
	// The rotated copy is overwritten before use, so this element is never
	// rotated.
	griewankRosenbrock2013 = &Element{Name: "griewank-rosenbrock", Landscape: functions.GriewankRosenbrock,
		stages: []Stage{shift(), scaleDiv(5, 100)}}
	expandedSchafferF62013 = &Element{Name: "expanded schaffer F6", Landscape: functions.ExpandedSchafferF6,
		stages: []Stage{shift(), rotate(0), asymmetric(0.5), rotate(1)}}
)

func rastriginStages2013() []Stage {
	return []Stage{shift(), scaleDiv(5.12, 100), rotate(0), oscillate(), asymmetric(0.2), rotate(1), condition(10), rotate(0)}
}

var cec2013 = []Recipe{
	element(framework.CEC2013, 1, -1400, false, sphere2013),
	element(framework.CEC2013, 2, -1300, true, ellipsoidal2013),
	element(framework.CEC2013, 3, -1200, true, bentCigar2013),
	element(framework.CEC2013, 4, -1100, true, discus2013),
	element(framework.CEC2013, 5, -1000, false, differentPowers2013),
	element(framework.CEC2013, 6, -900, true, rosenbrock2013),
	element(framework.CEC2013, 7, -800, true, schafferF72013),
	element(framework.CEC2013, 8, -700, true, ackley2013),
	element(framework.CEC2013, 9, -600, true, weierstrass2013),
	element(framework.CEC2013, 10, -500, true, griewank2013),
	element(framework.CEC2013, 11, -400, false, rastrigin2013),
	element(framework.CEC2013, 12, -300, true, rastrigin2013),
	element(framework.CEC2013, 13, -200, true, stepRastrigin2013),
	element(framework.CEC2013, 14, -100, false, schwefel2013),
	element(framework.CEC2013, 15, 100, true, schwefel2013),
	element(framework.CEC2013, 16, 200, true, katsuura2013),
	element(framework.CEC2013, 17, 300, false, biRastrigin2013Element),
	element(framework.CEC2013, 18, 400, true, biRastrigin2013Element),
	element(framework.CEC2013, 19, 500, true, griewankRosenbrock2013),
	element(framework.CEC2013, 20, 600, true, expandedSchafferF62013),
	composition(framework.CEC2013, 21, 700, &Composition{Name: "composition 1",
		Components: blend([]float64{10, 20, 30, 40, 50},
			[]Lambda{{10000, 1e4}, {10000, 1e10}, {10000, 1e30}, {10000, 1e10}, {10000, 1e5}},
			of(rosenbrock2013), of(differentPowers2013), of(bentCigar2013), of(discus2013), unrotated(sphere2013))}),
	composition(framework.CEC2013, 22, 800, &Composition{Name: "composition 2",
		Components: blend([]float64{20, 20, 20}, nil,
			unrotated(schwefel2013), unrotated(schwefel2013), unrotated(schwefel2013))}),
	composition(framework.CEC2013, 23, 900, &Composition{Name: "composition 3",
		Components: blend([]float64{20, 20, 20}, nil,
			of(schwefel2013), of(schwefel2013), of(schwefel2013))}),
	composition(framework.CEC2013, 24, 1000, &Composition{Name: "composition 4",
		Components: blend([]float64{20, 20, 20},
			[]Lambda{{1000, 4e3}, {1000, 1e3}, {1000, 400}},
			of(schwefel2013), of(rastrigin2013), of(weierstrass2013))}),
	composition(framework.CEC2013, 25, 1100, &Composition{Name: "composition 5",
		Components: blend([]float64{10, 30, 50},
			[]Lambda{{1000, 4e3}, {1000, 1e3}, {1000, 400}},
			of(schwefel2013), of(rastrigin2013), of(weierstrass2013))}),
	composition(framework.CEC2013, 26, 1200, &Composition{Name: "composition 6",
		Components: blend([]float64{10, 10, 10, 10, 10},
			[]Lambda{{1000, 4e3}, {1000, 1e3}, {1000, 1e10}, {1000, 400}, {1000, 100}},
			of(schwefel2013), of(rastrigin2013), of(ellipsoidal2013), of(weierstrass2013), of(griewank2013))}),
	composition(framework.CEC2013, 27, 1300, &Composition{Name: "composition 7",
		Components: blend([]float64{10, 10, 10, 20, 20},
			[]Lambda{{10000, 100}, {10000, 1e3}, {10000, 4e3}, {10000, 400}, {10000, 1e5}},
			of(griewank2013), of(rastrigin2013), of(schwefel2013), of(weierstrass2013), unrotated(sphere2013))}),
	composition(framework.CEC2013, 28, 1400, &Composition{Name: "composition 8",
		Components: blend([]float64{10, 20, 30, 40, 50},
			[]Lambda{{10000, 4e3}, {10000, 4e6}, {10000, 4e3}, {10000, 2e7}, {10000, 1e5}},
			of(griewankRosenbrock2013), of(schafferF72013), of(schwefel2013), of(expandedSchafferF62013), unrotated(sphere2013))}),
}
