package framework

// Individual represents a sampled point of the search space.
type Individual struct {
	Variables []float64
	Fitness   float64

	// Rank is the position of the individual after SortByFitness.
	Rank int
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// Problem describes the contract a single-objective benchmark problem needs to implement.
type Problem interface {
	Name() string
	Dimension() int

	LowerBounds() []float64
	UpperBounds() []float64

	// Fitness returns the single objective value of the point.
	// It fails only when the point does not match Dimension.
	Fitness([]float64) ([]float64, error)
	ObjectiveFuncs() []ObjectiveFunc
}
