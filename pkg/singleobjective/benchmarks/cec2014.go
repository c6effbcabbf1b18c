package benchmarks

import (
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/framework"
	"github.com/mihai-snyk/cecbench/pkg/singleobjective/functions"
)

// CEC2014 elements. The rate maps [-100, 100] onto the native search range
// of each landscape.
var (
	ellipsoidal2014 = &Element{Name: "ellipsoidal", Landscape: functions.Ellipsoidal, stages: shiftRateRotate(1, 1)}
	bentCigar2014   = &Element{Name: "bent cigar", Landscape: functions.BentCigar, stages: shiftRateRotate(1, 1)}
	discus2014      = &Element{Name: "discus", Landscape: functions.Discus, stages: shiftRateRotate(1, 1)}
	rosenbrock2014  = &Element{Name: "rosenbrock", Landscape: functions.Rosenbrock, stages: shiftRateRotate(2.048, 100)}
	ackley2014      = &Element{Name: "ackley", Landscape: functions.Ackley, stages: shiftRateRotate(1, 1)}
	weierstrass2014 = &Element{Name: "weierstrass", Landscape: functions.Weierstrass, stages: shiftRateRotate(0.5, 100)}
	griewank2014    = &Element{Name: "griewank", Landscape: functions.Griewank, stages: shiftRateRotate(600, 100)}
	rastrigin2014   = &Element{Name: "rastrigin", Landscape: functions.Rastrigin, stages: shiftRateRotate(5.12, 100)}
	schwefel2014    = &Element{Name: "schwefel", Landscape: functions.Schwefel, stages: shiftRateRotate(1000, 100)}
	katsuura2014    = &Element{Name: "katsuura", Landscape: functions.Katsuura, stages: shiftRateRotate(5, 100)}
	happyCat2014    = &Element{Name: "happycat", Landscape: functions.HappyCat, stages: shiftRateRotate(5, 100)}
	hgbat2014       = &Element{Name: "hgbat", Landscape: functions.HGBat, stages: shiftRateRotate(5, 100)}

	griewankRosenbrock2014 = &Element{Name: "griewank-rosenbrock", Landscape: functions.GriewankRosenbrock, stages: shiftRateRotate(5, 100)}
	expandedSchafferF62014 = &Element{Name: "expanded schaffer F6", Landscape: functions.ExpandedSchafferF6, stages: shiftRateRotate(1, 1)}
)

var (
	hybrid1 = &Hybrid{Name: "hybrid 1", Percents: []float64{0.3, 0.3, 0.4},
		Parts: []*Element{schwefel2014, rastrigin2014, ellipsoidal2014}}
	hybrid2 = &Hybrid{Name: "hybrid 2", Percents: []float64{0.3, 0.3, 0.4},
		Parts: []*Element{bentCigar2014, hgbat2014, rastrigin2014}}
	hybrid3 = &Hybrid{Name: "hybrid 3", Percents: []float64{0.2, 0.2, 0.3, 0.3},
		Parts: []*Element{griewank2014, weierstrass2014, rosenbrock2014, expandedSchafferF62014}}
	hybrid4 = &Hybrid{Name: "hybrid 4", Percents: []float64{0.2, 0.2, 0.3, 0.3},
		Parts: []*Element{hgbat2014, discus2014, griewankRosenbrock2014, rastrigin2014}}
	hybrid5 = &Hybrid{Name: "hybrid 5", Percents: []float64{0.1, 0.2, 0.2, 0.2, 0.3},
		Parts: []*Element{expandedSchafferF62014, hgbat2014, rosenbrock2014, schwefel2014, ellipsoidal2014}}
	hybrid6 = &Hybrid{Name: "hybrid 6", Percents: []float64{0.1, 0.2, 0.2, 0.2, 0.3},
		Parts: []*Element{katsuura2014, happyCat2014, griewankRosenbrock2014, schwefel2014, ackley2014}}
)

var cec2014 = []Recipe{
	element(framework.CEC2014, 1, 100, true, ellipsoidal2014),
	element(framework.CEC2014, 2, 200, true, bentCigar2014),
	element(framework.CEC2014, 3, 300, true, discus2014),
	element(framework.CEC2014, 4, 400, true, rosenbrock2014),
	element(framework.CEC2014, 5, 500, true, ackley2014),
	element(framework.CEC2014, 6, 600, true, weierstrass2014),
	element(framework.CEC2014, 7, 700, true, griewank2014),
	element(framework.CEC2014, 8, 800, false, rastrigin2014),
	element(framework.CEC2014, 9, 900, true, rastrigin2014),
	element(framework.CEC2014, 10, 1000, false, schwefel2014),
	element(framework.CEC2014, 11, 1100, true, schwefel2014),
	element(framework.CEC2014, 12, 1200, true, katsuura2014),
	element(framework.CEC2014, 13, 1300, true, happyCat2014),
	element(framework.CEC2014, 14, 1400, true, hgbat2014),
	element(framework.CEC2014, 15, 1500, true, griewankRosenbrock2014),
	element(framework.CEC2014, 16, 1600, true, expandedSchafferF62014),
	hybrid(framework.CEC2014, 17, 1700, hybrid1),
	hybrid(framework.CEC2014, 18, 1800, hybrid2),
	hybrid(framework.CEC2014, 19, 1900, hybrid3),
	hybrid(framework.CEC2014, 20, 2000, hybrid4),
	hybrid(framework.CEC2014, 21, 2100, hybrid5),
	hybrid(framework.CEC2014, 22, 2200, hybrid6),
	composition(framework.CEC2014, 23, 2300, &Composition{Name: "composition 1",
		Components: blend([]float64{10, 20, 30, 40, 50},
			[]Lambda{{10000, 1e4}, {10000, 1e10}, {10000, 1e30}, {10000, 1e10}, {10000, 1e10}},
			of(rosenbrock2014), of(ellipsoidal2014), of(bentCigar2014), of(discus2014), unrotated(ellipsoidal2014))}),
	composition(framework.CEC2014, 24, 2400, &Composition{Name: "composition 2",
		Components: blend([]float64{20, 20, 20}, nil,
			unrotated(schwefel2014), of(rastrigin2014), of(hgbat2014))}),
	composition(framework.CEC2014, 25, 2500, &Composition{Name: "composition 3",
		Components: blend([]float64{10, 30, 50},
			[]Lambda{{1000, 4e3}, {1000, 1e3}, {1000, 1e10}},
			of(schwefel2014), of(rastrigin2014), of(ellipsoidal2014))}),
	composition(framework.CEC2014, 26, 2600, &Composition{Name: "composition 4",
		Components: blend([]float64{10, 10, 10, 10, 10},
			[]Lambda{{1000, 4e3}, {1000, 1e3}, {1000, 1e10}, {1000, 400}, {1000, 100}},
			of(schwefel2014), of(happyCat2014), of(ellipsoidal2014), of(weierstrass2014), of(griewank2014))}),
	composition(framework.CEC2014, 27, 2700, &Composition{Name: "composition 5",
		Components: blend([]float64{10, 10, 10, 20, 20},
			[]Lambda{{10000, 1000}, {10000, 1e3}, {10000, 4e3}, {10000, 400}, {10000, 1e10}},
			of(hgbat2014), of(rastrigin2014), of(schwefel2014), of(weierstrass2014), of(ellipsoidal2014))}),
	composition(framework.CEC2014, 28, 2800, &Composition{Name: "composition 6",
		Components: blend([]float64{10, 20, 30, 40, 50},
			[]Lambda{{10000, 4e3}, {10000, 1e3}, {10000, 4e3}, {10000, 2e7}, {10000, 1e10}},
			of(griewankRosenbrock2014), of(happyCat2014), of(schwefel2014), of(expandedSchafferF62014), of(ellipsoidal2014))}),
	composition(framework.CEC2014, 29, 2900, &Composition{Name: "composition 7",
		Components: blend([]float64{10, 30, 50}, nil,
			ofHybrid(hybrid1), ofHybrid(hybrid2), ofHybrid(hybrid3))}),
	composition(framework.CEC2014, 30, 3000, &Composition{Name: "composition 8",
		Components: blend([]float64{10, 30, 50}, nil,
			ofHybrid(hybrid4), ofHybrid(hybrid5), ofHybrid(hybrid6))}),
}
