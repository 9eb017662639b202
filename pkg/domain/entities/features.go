package entities

// FeatureCounts holds coarse manufacturing-feature counts derived from
// geometric aggregates. Counts are heuristic proxies, never re-measured
// downstream; absence of a signal yields zero, not an error.
type FeatureCounts struct {
	Holes      int     `json:"holes"`
	Cavities   int     `json:"cavities"`
	SharpEdges int     `json:"sharp_edges"`
	Pockets    int     `json:"pockets"`
	Score      float64 `json:"feature_score"`
}
