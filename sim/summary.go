package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the cost and length of a set of Results.
type Summary struct {
	Count      int
	MinCost    float64
	MaxCost    float64
	MeanCost   float64
	StdDevCost float64
	MeanHops   float64
}

// Summarize computes cost statistics over results. StdDevCost is the
// sample standard deviation and is 0 for fewer than two results. An empty
// input yields the zero Summary.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	costs := make([]float64, len(results))
	hops := make([]float64, len(results))
	for i, r := range results {
		costs[i] = float64(r.Cost)
		hops[i] = float64(r.Path.Hops())
	}

	sum := Summary{
		Count:    len(results),
		MinCost:  floats.Min(costs),
		MaxCost:  floats.Max(costs),
		MeanCost: stat.Mean(costs, nil),
		MeanHops: stat.Mean(hops, nil),
	}
	if len(costs) > 1 {
		sum.StdDevCost = stat.StdDev(costs, nil)
	}

	return sum
}

// Summary is a shorthand for Summarize(it.Results).
func (it *Iteration) Summary() Summary {
	return Summarize(it.Results)
}
