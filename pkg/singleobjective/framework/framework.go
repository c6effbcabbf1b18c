package framework

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a problem id or a dimension is not
// part of the requested suite.
var ErrInvalidArgument = errors.New("invalid argument")

// Suite identifies a CEC single-objective benchmark collection.
type Suite int

const (
	CEC2013 Suite = 2013
	CEC2014 Suite = 2014
)

type suiteInfo struct {
	problems   int
	dimensions []int
}

var suites = map[Suite]suiteInfo{
	CEC2013: {
		problems:   28,
		dimensions: []int{2, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	CEC2014: {
		problems:   30,
		dimensions: []int{2, 10, 20, 30, 50, 100},
	},
}

// Suites returns the supported suites in ascending order.
func Suites() []Suite {
	return []Suite{CEC2013, CEC2014}
}

// ParseSuite accepts "2014", "cec2014" or "CEC2014".
func ParseSuite(s string) (Suite, error) {
	year, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "cec"))
	if err != nil {
		return 0, fmt.Errorf("%w: unknown suite %q", ErrInvalidArgument, s)
	}
	suite := Suite(year)
	if _, ok := suites[suite]; !ok {
		return 0, fmt.Errorf("%w: unknown suite %q", ErrInvalidArgument, s)
	}
	return suite, nil
}

func (s Suite) String() string {
	return fmt.Sprintf("CEC%d", int(s))
}

// Problems returns the highest valid problem id of the suite, 0 for unknown suites.
func (s Suite) Problems() int {
	return suites[s].problems
}

// Dimensions returns the dimensions the suite publishes data for.
func (s Suite) Dimensions() []int {
	return slices.Clone(suites[s].dimensions)
}

// Validate checks that (id, dim) names a problem of the suite.
func (s Suite) Validate(id, dim int) error {
	info, ok := suites[s]
	if !ok {
		return fmt.Errorf("%w: unknown suite %d", ErrInvalidArgument, int(s))
	}
	if id < 1 || id > info.problems {
		return fmt.Errorf("%w: %s problem id %d is not in [1,%d]", ErrInvalidArgument, s, id, info.problems)
	}
	if !slices.Contains(info.dimensions, dim) {
		return fmt.Errorf("%w: %s does not support dimension %d, want one of %v", ErrInvalidArgument, s, dim, info.dimensions)
	}
	return nil
}

type Bounds struct {
	L float64
	H float64
}

// BoxBounds expands per-coordinate bounds into lower and upper vectors.
func BoxBounds(b []Bounds) (lower, upper []float64) {
	lower = make([]float64, len(b))
	upper = make([]float64, len(b))
	for i := range b {
		lower[i] = b[i].L
		upper[i] = b[i].H
	}
	return lower, upper
}
