package drivers

import (
	"math/rand"
	"slices"

	"github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/sample"
)

func randomInts(size uint64) []int {
	vals := make([]int, size)
	rng := rand.New(rand.NewSource(int64(size)))
	for i := range vals {
		vals[i] = rng.Int()
	}
	return vals
}

// work copies the pristine slice into scratch and sorts it, so every
// iteration sorts the same unsorted input.
func (s *sorter) work(pristine, scratch []int) func() {
	return func() {
		copy(scratch, pristine)
		slices.Sort(scratch)
		sink = byte(scratch[0])
	}
}

// Warmup runs the configured warmup iterations, discarding the timings.
func (s *sorter) Warmup(m measurement.Measurement) {
	pristine := randomInts(s.testConfig.Size)
	warmup(m, s.testConfig.Warmup, s.work(pristine, make([]int, len(pristine))))
}

// RunSample sorts the configured number of elements once per iteration.
func (s *sorter) RunSample(m measurement.Measurement) (sample.Sample, error) {
	logging.Debugf("sort driver sampling %d elements over %d iterations", s.testConfig.Size, s.testConfig.Iterations)
	pristine := randomInts(s.testConfig.Size)
	return runSample(m, s.driverName, s.testConfig.Iterations, s.work(pristine, make([]int, len(pristine))))
}
