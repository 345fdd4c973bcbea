// Package builder defines shared constants used by graph builders.
package builder

// Method name tokens used to prefix errors with the constructor name.
const (
	methodBuildGraph    = "BuildGraph"
	MethodRandomNetwork = "RandomNetwork"
	MethodPath          = "Path"
	MethodCycle         = "Cycle"
	MethodStar          = "Star"
	MethodComplete      = "Complete"
	MethodFromEdges     = "FromEdges"
)

// Parameter minima.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
)

// Probability domain for RandomNetwork.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// StarCenterID is the hub vertex of Star(n); leaves are 1..n-1.
const StarCenterID = 0
