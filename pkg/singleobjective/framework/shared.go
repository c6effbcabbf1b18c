package framework

import (
	"math"
	"sort"
)

// SortByFitness orders the population by ascending fitness and assigns ranks.
// NaN values are placed last.
func SortByFitness(population []Individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return Better(population[i], population[j])
	})
	for i := range population {
		population[i].Rank = i
	}
}

// Better checks if individual a has a strictly lower fitness than b
func Better(a, b Individual) bool {
	if math.IsNaN(b.Fitness) {
		return !math.IsNaN(a.Fitness)
	}
	return a.Fitness < b.Fitness
}

// Best returns the individual with the lowest fitness.
func Best(population []Individual) (Individual, bool) {
	if len(population) == 0 {
		return Individual{}, false
	}
	best := population[0]
	for _, ind := range population[1:] {
		if Better(ind, best) {
			best = ind
		}
	}
	return best, true
}
