package sample

// Sample describes the values we will return with each execution.
type Sample struct {
	Iterations uint64
	Elapsed    float64
	PerIter    float64
	Driver     string
	Metric     string
}
